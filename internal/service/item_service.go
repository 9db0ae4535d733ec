package service

import (
	"strings"
	"time"

	"github.com/paikari-bazar/internal/constants"
	"github.com/paikari-bazar/internal/models"
	"github.com/paikari-bazar/internal/repository"
)

// ItemService manages purchasable items under products.
type ItemService struct {
	itemRepo    repository.ItemRepository
	productRepo repository.ProductRepository
}

// NewItemService creates an item service.
func NewItemService(itemRepo repository.ItemRepository, productRepo repository.ProductRepository) *ItemService {
	return &ItemService{
		itemRepo:    itemRepo,
		productRepo: productRepo,
	}
}

// SearchPublic searches items under approved products by name,
// case-insensitive substring match. An empty query returns nothing.
func (s *ItemService) SearchPublic(query string, page, pageSize int) ([]models.Item, int64, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return []models.Item{}, 0, nil
	}
	return s.itemRepo.List(repository.ItemListFilter{
		Page:         page,
		PageSize:     pageSize,
		Search:       trimmed,
		ApprovedOnly: true,
		WithProduct:  true,
	})
}

// ListPublicByProduct returns the items of an approved product.
func (s *ItemService) ListPublicByProduct(productID uint) ([]models.Item, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil || product.Status != constants.ProductStatusApproved {
		return nil, ErrProductNotFound
	}
	items, _, err := s.itemRepo.List(repository.ItemListFilter{
		ProductID: productID,
		PageSize:  -1,
	})
	return items, err
}

// GetPublic returns one item under an approved product.
func (s *ItemService) GetPublic(id uint) (*models.Item, error) {
	item, err := s.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	product, err := s.productRepo.GetByID(item.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil || product.Status != constants.ProductStatusApproved {
		return nil, ErrItemNotFound
	}
	item.Product = product
	return item, nil
}

// AdminGet returns any item regardless of product status.
func (s *ItemService) AdminGet(id uint) (*models.Item, error) {
	item, err := s.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	product, err := s.productRepo.GetByID(item.ProductID)
	if err != nil {
		return nil, err
	}
	item.Product = product
	return item, nil
}

// AdminSetStock overrides an item's stock flag.
func (s *ItemService) AdminSetStock(id uint, inStock bool) (*models.Item, error) {
	item, err := s.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	item.InStock = inStock
	item.UpdatedAt = time.Now()
	if err := s.itemRepo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

// ListForWholesaler returns the items of one of the wholesaler's products.
func (s *ItemService) ListForWholesaler(productID, wholesalerID uint) ([]models.Item, error) {
	if err := s.ownProduct(productID, wholesalerID); err != nil {
		return nil, err
	}
	items, _, err := s.itemRepo.List(repository.ItemListFilter{
		ProductID: productID,
		PageSize:  -1,
	})
	return items, err
}

// CreateItemInput carries the fields of a new item.
type CreateItemInput struct {
	ProductID         uint
	Name              string
	Description       string
	Price             models.Money
	MinimumQuantity   int
	ImageURL          string
	VideoURL          string
	InStock           bool
	AdditionalDetails models.JSON
}

// Create adds an item under one of the wholesaler's products.
func (s *ItemService) Create(wholesalerID uint, input CreateItemInput) (*models.Item, error) {
	if err := s.ownProduct(input.ProductID, wholesalerID); err != nil {
		return nil, err
	}
	if input.Price.IsNegative() {
		return nil, ErrInvalidPrice
	}
	minimum := input.MinimumQuantity
	if minimum <= 0 {
		minimum = 1
	}

	now := time.Now()
	item := &models.Item{
		ProductID:         input.ProductID,
		Name:              strings.TrimSpace(input.Name),
		Description:       strings.TrimSpace(input.Description),
		Price:             models.NewMoneyFromDecimal(input.Price.Decimal),
		MinimumQuantity:   minimum,
		ImageURL:          strings.TrimSpace(input.ImageURL),
		VideoURL:          strings.TrimSpace(input.VideoURL),
		InStock:           input.InStock,
		AdditionalDetails: input.AdditionalDetails,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateItemInput carries optional item updates.
type UpdateItemInput struct {
	Name              *string
	Description       *string
	Price             *models.Money
	MinimumQuantity   *int
	ImageURL          *string
	VideoURL          *string
	InStock           *bool
	AdditionalDetails models.JSON
}

// Update edits one of the wholesaler's items. Price edits apply to
// future orders only, existing order lines keep their snapshots.
func (s *ItemService) Update(id, wholesalerID uint, input UpdateItemInput) (*models.Item, error) {
	item, err := s.getOwned(id, wholesalerID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		trimmed := strings.TrimSpace(*input.Name)
		if trimmed != "" {
			item.Name = trimmed
		}
	}
	if input.Description != nil {
		item.Description = strings.TrimSpace(*input.Description)
	}
	if input.Price != nil {
		if input.Price.IsNegative() {
			return nil, ErrInvalidQuantity
		}
		item.Price = models.NewMoneyFromDecimal(input.Price.Decimal)
	}
	if input.MinimumQuantity != nil {
		if *input.MinimumQuantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		item.MinimumQuantity = *input.MinimumQuantity
	}
	if input.ImageURL != nil {
		item.ImageURL = strings.TrimSpace(*input.ImageURL)
	}
	if input.VideoURL != nil {
		item.VideoURL = strings.TrimSpace(*input.VideoURL)
	}
	if input.InStock != nil {
		item.InStock = *input.InStock
	}
	if input.AdditionalDetails != nil {
		item.AdditionalDetails = input.AdditionalDetails
	}

	item.UpdatedAt = time.Now()
	if err := s.itemRepo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes one of the wholesaler's items.
func (s *ItemService) Delete(id, wholesalerID uint) error {
	if _, err := s.getOwned(id, wholesalerID); err != nil {
		return err
	}
	return s.itemRepo.Delete(id)
}

func (s *ItemService) getOwned(id, wholesalerID uint) (*models.Item, error) {
	item, err := s.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	if err := s.ownProduct(item.ProductID, wholesalerID); err != nil {
		return nil, ErrItemNotFound
	}
	return item, nil
}

func (s *ItemService) ownProduct(productID, wholesalerID uint) error {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil || product.WholesalerID == nil || *product.WholesalerID != wholesalerID {
		return ErrProductNotFound
	}
	return nil
}
