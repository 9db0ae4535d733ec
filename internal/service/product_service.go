package service

import (
	"strings"
	"time"

	"github.com/paikari-bazar/internal/constants"
	"github.com/paikari-bazar/internal/models"
	"github.com/paikari-bazar/internal/repository"
)

// ProductService manages wholesaler listings and their approval flow.
type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductService creates a product service.
func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// ListPublic returns approved products for the storefront.
func (s *ProductService) ListPublic(page, pageSize int, categoryID uint, search string) ([]models.Product, int64, error) {
	return s.productRepo.List(repository.ProductListFilter{
		Page:         page,
		PageSize:     pageSize,
		CategoryID:   categoryID,
		Status:       constants.ProductStatusApproved,
		Search:       strings.TrimSpace(search),
		WithCategory: true,
	})
}

// GetPublic returns one approved product with its items.
func (s *ProductService) GetPublic(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.Status != constants.ProductStatusApproved {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// ListForWholesaler returns the wholesaler's own listings in any status.
func (s *ProductService) ListForWholesaler(wholesalerID uint, page, pageSize int, status string) ([]models.Product, int64, error) {
	return s.productRepo.List(repository.ProductListFilter{
		Page:         page,
		PageSize:     pageSize,
		WholesalerID: wholesalerID,
		Status:       strings.TrimSpace(status),
		WithCategory: true,
	})
}

// GetForWholesaler returns one of the wholesaler's own listings.
func (s *ProductService) GetForWholesaler(id, wholesalerID uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.WholesalerID == nil || *product.WholesalerID != wholesalerID {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// ListAdmin returns products for the moderation panel.
func (s *ProductService) ListAdmin(page, pageSize int, status, search string, categoryID uint) ([]models.Product, int64, error) {
	return s.productRepo.List(repository.ProductListFilter{
		Page:         page,
		PageSize:     pageSize,
		CategoryID:   categoryID,
		Status:       strings.TrimSpace(status),
		Search:       strings.TrimSpace(search),
		WithCategory: true,
	})
}

// GetByID fetches a product regardless of status.
func (s *ProductService) GetByID(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// CreateProductInput carries the fields of a new listing.
type CreateProductInput struct {
	CategoryID  uint
	Name        string
	Description string
	ImageURL    string
	VideoURL    string
}

// Create adds a listing for the wholesaler. New listings always start
// pending and stay off the storefront until approved.
func (s *ProductService) Create(wholesalerID uint, input CreateProductInput) (*models.Product, error) {
	category, err := s.categoryRepo.GetByID(input.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	now := time.Now()
	product := &models.Product{
		CategoryID:   input.CategoryID,
		WholesalerID: &wholesalerID,
		Name:         strings.TrimSpace(input.Name),
		Description:  strings.TrimSpace(input.Description),
		ImageURL:     strings.TrimSpace(input.ImageURL),
		VideoURL:     strings.TrimSpace(input.VideoURL),
		Status:       constants.ProductStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProductInput carries optional listing updates.
type UpdateProductInput struct {
	CategoryID  *uint
	Name        *string
	Description *string
	ImageURL    *string
	VideoURL    *string
}

// Update edits one of the wholesaler's listings. Editing an approved
// listing sends it back to pending for re-review.
func (s *ProductService) Update(id, wholesalerID uint, input UpdateProductInput) (*models.Product, error) {
	product, err := s.GetForWholesaler(id, wholesalerID)
	if err != nil {
		return nil, err
	}

	if input.CategoryID != nil && *input.CategoryID != product.CategoryID {
		category, err := s.categoryRepo.GetByID(*input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, ErrCategoryNotFound
		}
		product.CategoryID = *input.CategoryID
	}
	if input.Name != nil {
		trimmed := strings.TrimSpace(*input.Name)
		if trimmed != "" {
			product.Name = trimmed
		}
	}
	if input.Description != nil {
		product.Description = strings.TrimSpace(*input.Description)
	}
	if input.ImageURL != nil {
		product.ImageURL = strings.TrimSpace(*input.ImageURL)
	}
	if input.VideoURL != nil {
		product.VideoURL = strings.TrimSpace(*input.VideoURL)
	}

	if product.Status == constants.ProductStatusApproved {
		product.Status = constants.ProductStatusPending
	}
	product.UpdatedAt = time.Now()
	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteForWholesaler removes one of the wholesaler's listings.
func (s *ProductService) DeleteForWholesaler(id, wholesalerID uint) error {
	if _, err := s.GetForWholesaler(id, wholesalerID); err != nil {
		return err
	}
	return s.productRepo.Delete(id)
}

// Approve publishes a pending or rejected listing.
func (s *ProductService) Approve(id uint) (*models.Product, error) {
	return s.setStatus(id, constants.ProductStatusApproved)
}

// Reject declines a listing and keeps it off the storefront.
func (s *ProductService) Reject(id uint) (*models.Product, error) {
	return s.setStatus(id, constants.ProductStatusRejected)
}

// DeleteAdmin removes any listing.
func (s *ProductService) DeleteAdmin(id uint) error {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	return s.productRepo.Delete(id)
}

func (s *ProductService) setStatus(id uint, status string) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if product.Status == status {
		return product, nil
	}
	if err := s.productRepo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	product.Status = status
	return product, nil
}
