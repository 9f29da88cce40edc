package repository

import (
	"context"

	"github.com/Snehagupta00/TrueGrit/models"

	"gorm.io/gorm"
)

// ActivityRepository persists the append-only activity log.
type ActivityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates and returns a new ActivityRepository.
func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Create stores a new activity stamped with the caller's owner id.
func (r *ActivityRepository) Create(ctx context.Context, activity *models.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

// ListByOwner returns all activities for the owner, newest first.
func (r *ActivityRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Activity, error) {
	var activities []models.Activity
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC, id DESC").
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}
