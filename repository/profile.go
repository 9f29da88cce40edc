package repository

import (
	"context"

	"github.com/Snehagupta00/TrueGrit/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProfileRepository persists the per-owner profile singleton.
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates and returns a new ProfileRepository.
func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Get returns the owner's profile, or ErrNotFound if none exists yet.
func (r *ProfileRepository) Get(ctx context.Context, ownerID string) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&profile).Error; err != nil {
		return nil, translate(err)
	}
	return &profile, nil
}

// GetOrCreate returns the owner's profile, creating an empty one on first
// access. The insert ignores conflicts so concurrent first requests from a
// new user cannot race the check against the write.
func (r *ProfileRepository) GetOrCreate(ctx context.Context, ownerID string) (*models.Profile, error) {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "owner_id"}}, DoNothing: true}).
		Create(&models.Profile{OwnerID: ownerID}).Error
	if err != nil {
		return nil, err
	}
	return r.Get(ctx, ownerID)
}

// Upsert replaces the profile's measurements wholesale, creating the row if
// the owner has none. Keyed on owner id so the operation is atomic from the
// caller's view.
func (r *ProfileRepository) Upsert(ctx context.Context, ownerID string, weight, height *float64, fitnessLevel string) (*models.Profile, error) {
	profile := models.Profile{
		OwnerID:      ownerID,
		Weight:       weight,
		Height:       height,
		FitnessLevel: fitnessLevel,
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"weight", "height", "fitness_level", "updated_at"}),
		}).
		Create(&profile).Error
	if err != nil {
		return nil, err
	}
	// Reload: on conflict the in-memory struct does not carry the winning
	// row's id and timestamps.
	return r.Get(ctx, ownerID)
}
