package repository

import (
	"errors"
	"time"

	"github.com/paikari-bazar/internal/models"

	"gorm.io/gorm"
)

// SuspensionRepository is the suspension data access interface.
type SuspensionRepository interface {
	GetByID(id uint) (*models.Suspension, error)
	GetActiveByUser(userID uint, now time.Time) (*models.Suspension, error)
	List(filter SuspensionListFilter) ([]models.Suspension, int64, error)
	Create(suspension *models.Suspension) error
	Delete(id uint) error
	WithTx(tx *gorm.DB) *GormSuspensionRepository
}

// GormSuspensionRepository is the GORM implementation.
type GormSuspensionRepository struct {
	db *gorm.DB
}

// NewSuspensionRepository creates a suspension repository.
func NewSuspensionRepository(db *gorm.DB) *GormSuspensionRepository {
	return &GormSuspensionRepository{db: db}
}

// WithTx binds a transaction.
func (r *GormSuspensionRepository) WithTx(tx *gorm.DB) *GormSuspensionRepository {
	if tx == nil {
		return r
	}
	return &GormSuspensionRepository{db: tx}
}

// GetByID returns a suspension, nil when absent.
func (r *GormSuspensionRepository) GetByID(id uint) (*models.Suspension, error) {
	var suspension models.Suspension
	if err := r.db.First(&suspension, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &suspension, nil
}

// GetActiveByUser returns the user's suspension still in force at now,
// nil when the user is not suspended.
func (r *GormSuspensionRepository) GetActiveByUser(userID uint, now time.Time) (*models.Suspension, error) {
	var suspension models.Suspension
	err := r.db.
		Where("user_id = ?", userID).
		Where("is_permanent = ? OR suspended_until > ?", true, now).
		Order("id desc").
		First(&suspension).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &suspension, nil
}

// List returns a suspension page.
func (r *GormSuspensionRepository) List(filter SuspensionListFilter) ([]models.Suspension, int64, error) {
	var suspensions []models.Suspension
	query := r.db.Model(&models.Suspension{})

	if filter.UserID != 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.ActiveOnly {
		query = query.Where("is_permanent = ? OR suspended_until > ?", true, time.Now())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)
	if err := query.Order("id desc").Find(&suspensions).Error; err != nil {
		return nil, 0, err
	}
	return suspensions, total, nil
}

// Create inserts a suspension.
func (r *GormSuspensionRepository) Create(suspension *models.Suspension) error {
	return r.db.Create(suspension).Error
}

// Delete lifts a suspension by removing the row.
func (r *GormSuspensionRepository) Delete(id uint) error {
	return r.db.Delete(&models.Suspension{}, id).Error
}
