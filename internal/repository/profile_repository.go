package repository

import (
	"errors"

	"github.com/paikari-bazar/internal/models"

	"gorm.io/gorm"
)

// ProfileRepository is the wholesaler profile data access interface.
type ProfileRepository interface {
	GetByUserID(userID uint) (*models.WholesalerProfile, error)
	Upsert(profile *models.WholesalerProfile) error
	WithTx(tx *gorm.DB) *GormProfileRepository
}

// GormProfileRepository is the GORM implementation.
type GormProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a profile repository.
func NewProfileRepository(db *gorm.DB) *GormProfileRepository {
	return &GormProfileRepository{db: db}
}

// WithTx binds a transaction.
func (r *GormProfileRepository) WithTx(tx *gorm.DB) *GormProfileRepository {
	if tx == nil {
		return r
	}
	return &GormProfileRepository{db: tx}
}

// GetByUserID returns a profile, nil when absent.
func (r *GormProfileRepository) GetByUserID(userID uint) (*models.WholesalerProfile, error) {
	var profile models.WholesalerProfile
	err := r.db.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Upsert inserts or updates the profile for its user.
func (r *GormProfileRepository) Upsert(profile *models.WholesalerProfile) error {
	if profile == nil {
		return nil
	}
	var existing models.WholesalerProfile
	err := r.db.Where("user_id = ?", profile.UserID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(profile).Error
	}
	if err != nil {
		return err
	}
	profile.ID = existing.ID
	profile.CreatedAt = existing.CreatedAt
	return r.db.Save(profile).Error
}
