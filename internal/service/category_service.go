package service

import (
	"strings"
	"time"

	"github.com/paikari-bazar/internal/constants"
	"github.com/paikari-bazar/internal/models"
	"github.com/paikari-bazar/internal/repository"
)

// CategoryService manages catalog categories.
type CategoryService struct {
	repo repository.CategoryRepository
}

// NewCategoryService creates a category service.
func NewCategoryService(repo repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// NormalizeSection validates a catalog section name. An empty section
// means all sections.
func NormalizeSection(section string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(section))
	switch normalized {
	case "", constants.CategorySectionLocal, constants.CategorySectionChinese:
		return normalized, nil
	default:
		return "", ErrInvalidSection
	}
}

// List returns categories, optionally limited to one section.
func (s *CategoryService) List(section string) ([]models.Category, error) {
	normalized, err := NormalizeSection(section)
	if err != nil {
		return nil, err
	}
	return s.repo.List(normalized)
}

// GetByID fetches a category.
func (s *CategoryService) GetByID(id uint) (*models.Category, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

// CreateCategoryInput carries the fields of a new category.
type CreateCategoryInput struct {
	Name        string
	Description string
	Section     string
	ImageURL    string
	SortOrder   int
}

// Create adds a category.
func (s *CategoryService) Create(input CreateCategoryInput) (*models.Category, error) {
	section, err := NormalizeSection(input.Section)
	if err != nil {
		return nil, err
	}
	if section == "" {
		return nil, ErrInvalidSection
	}

	now := time.Now()
	category := &models.Category{
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Section:     section,
		ImageURL:    strings.TrimSpace(input.ImageURL),
		SortOrder:   input.SortOrder,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// UpdateCategoryInput carries optional category updates.
type UpdateCategoryInput struct {
	Name        *string
	Description *string
	Section     *string
	ImageURL    *string
	SortOrder   *int
}

// Update edits a category.
func (s *CategoryService) Update(id uint, input UpdateCategoryInput) (*models.Category, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	if input.Name != nil {
		trimmed := strings.TrimSpace(*input.Name)
		if trimmed != "" {
			category.Name = trimmed
		}
	}
	if input.Description != nil {
		category.Description = strings.TrimSpace(*input.Description)
	}
	if input.Section != nil {
		section, err := NormalizeSection(*input.Section)
		if err != nil {
			return nil, err
		}
		if section != "" {
			category.Section = section
		}
	}
	if input.ImageURL != nil {
		category.ImageURL = strings.TrimSpace(*input.ImageURL)
	}
	if input.SortOrder != nil {
		category.SortOrder = *input.SortOrder
	}

	category.UpdatedAt = time.Now()
	if err := s.repo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes an empty category. Categories still holding products
// cannot be removed.
func (s *CategoryService) Delete(id uint) error {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}

	count, err := s.repo.CountProducts(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryNotEmpty
	}

	return s.repo.Delete(id)
}
