package repository

import (
	"context"

	"github.com/Snehagupta00/TrueGrit/models"

	"gorm.io/gorm"
)

// NutritionRepository persists the append-only nutrition log.
type NutritionRepository struct {
	db *gorm.DB
}

// NewNutritionRepository creates and returns a new NutritionRepository.
func NewNutritionRepository(db *gorm.DB) *NutritionRepository {
	return &NutritionRepository{db: db}
}

// Create stores a new nutrition entry stamped with the caller's owner id.
func (r *NutritionRepository) Create(ctx context.Context, entry *models.NutritionEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// ListByOwner returns all nutrition entries for the owner, newest first.
func (r *NutritionRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.NutritionEntry, error) {
	var entries []models.NutritionEntry
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC, id DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
