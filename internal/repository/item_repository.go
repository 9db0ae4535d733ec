package repository

import (
	"errors"

	"github.com/paikari-bazar/internal/constants"
	"github.com/paikari-bazar/internal/models"

	"gorm.io/gorm"
)

// ItemRepository is the item data access interface.
type ItemRepository interface {
	List(filter ItemListFilter) ([]models.Item, int64, error)
	GetByID(id uint) (*models.Item, error)
	GetByIDs(ids []uint) ([]models.Item, error)
	Create(item *models.Item) error
	Update(item *models.Item) error
	Delete(id uint) error
	WithTx(tx *gorm.DB) *GormItemRepository
}

// GormItemRepository is the GORM implementation.
type GormItemRepository struct {
	db *gorm.DB
}

// NewItemRepository creates an item repository.
func NewItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// WithTx binds a transaction.
func (r *GormItemRepository) WithTx(tx *gorm.DB) *GormItemRepository {
	if tx == nil {
		return r
	}
	return &GormItemRepository{db: tx}
}

// List returns an item page. ApprovedOnly joins products so the public
// search never leaks items under pending or rejected listings.
func (r *GormItemRepository) List(filter ItemListFilter) ([]models.Item, int64, error) {
	var items []models.Item
	query := r.db.Model(&models.Item{})

	if filter.ApprovedOnly || filter.WholesalerID != 0 {
		query = query.Joins("JOIN products ON products.id = items.product_id AND products.deleted_at IS NULL")
	}
	if filter.ApprovedOnly {
		query = query.Where("products.status = ?", constants.ProductStatusApproved)
	}
	if filter.WholesalerID != 0 {
		query = query.Where("products.wholesaler_id = ?", filter.WholesalerID)
	}
	if filter.ProductID != 0 {
		query = query.Where("items.product_id = ?", filter.ProductID)
	}
	if filter.InStockOnly {
		query = query.Where("items.in_stock = ?", true)
	}
	if filter.Search != "" {
		query = query.Where("items.name "+likeOperator(r.db)+" ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)
	if filter.WithProduct {
		query = query.Preload("Product")
	}
	if err := query.Order("items.id desc").Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// GetByID returns an item with its product, nil when absent.
func (r *GormItemRepository) GetByID(id uint) (*models.Item, error) {
	var item models.Item
	if err := r.db.Preload("Product").First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// GetByIDs returns the items matching the given ids.
func (r *GormItemRepository) GetByIDs(ids []uint) ([]models.Item, error) {
	var items []models.Item
	if len(ids) == 0 {
		return items, nil
	}
	if err := r.db.Preload("Product").Where("id IN ?", ids).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Create inserts an item.
func (r *GormItemRepository) Create(item *models.Item) error {
	return r.db.Create(item).Error
}

// Update saves an item.
func (r *GormItemRepository) Update(item *models.Item) error {
	return r.db.Save(item).Error
}

// Delete soft-deletes an item.
func (r *GormItemRepository) Delete(id uint) error {
	return r.db.Delete(&models.Item{}, id).Error
}
