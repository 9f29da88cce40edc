package repository

import (
	"context"

	"github.com/Snehagupta00/TrueGrit/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository persists the per-owner user singleton.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates and returns a new UserRepository.
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetOrCreate returns the owner's user record, creating it from the identity
// claims on first access. Repeated calls return the stored record unmodified;
// the conflict-ignoring insert keeps concurrent first requests safe.
func (r *UserRepository) GetOrCreate(ctx context.Context, ownerID, name, email string) (*models.User, error) {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "owner_id"}}, DoNothing: true}).
		Create(&models.User{OwnerID: ownerID, Name: name, Email: email}).Error
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}
