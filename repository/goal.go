package repository

import (
	"context"

	"github.com/Snehagupta00/TrueGrit/models"

	"gorm.io/gorm"
)

// GoalRepository persists goals. Goals are the only mutable collection.
type GoalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates and returns a new GoalRepository.
func NewGoalRepository(db *gorm.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

// Create stores a new goal stamped with the caller's owner id.
func (r *GoalRepository) Create(ctx context.Context, goal *models.Goal) error {
	return r.db.WithContext(ctx).Create(goal).Error
}

// ListByOwner returns all goals for the owner, newest first.
func (r *GoalRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Goal, error) {
	var goals []models.Goal
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC, id DESC").
		Find(&goals).Error
	if err != nil {
		return nil, err
	}
	return goals, nil
}

// Update overwrites the given fields of the owner's goal and returns the
// updated record. A goal that does not exist, or belongs to someone else,
// yields ErrNotFound.
func (r *GoalRepository) Update(ctx context.Context, ownerID string, id uint, updates map[string]interface{}) (*models.Goal, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Goal{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var goal models.Goal
	if err := r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).First(&goal).Error; err != nil {
		return nil, translate(err)
	}
	return &goal, nil
}

// Delete removes the owner's goal. Missing or foreign goals yield ErrNotFound.
func (r *GoalRepository) Delete(ctx context.Context, ownerID string, id uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&models.Goal{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
