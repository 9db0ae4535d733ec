package admin

import (
	"errors"
	"strings"

	"github.com/paikari-bazar/internal/http/response"
	"github.com/paikari-bazar/internal/service"

	"github.com/gin-gonic/gin"
)

// ListCategories returns all categories, optionally by section.
func (h *Handler) ListCategories(c *gin.Context) {
	section := strings.TrimSpace(c.Query("section"))
	categories, err := h.CategoryService.List(section)
	if err != nil {
		if errors.Is(err, service.ErrInvalidSection) {
			respondError(c, response.CodeBadRequest, "unknown section", nil)
			return
		}
		respondError(c, response.CodeInternal, "list categories failed", err)
		return
	}
	response.Success(c, categories)
}

// CreateCategoryRequest is the new category payload.
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Section     string `json:"section" binding:"required"`
	ImageURL    string `json:"image_url"`
	SortOrder   int    `json:"sort_order"`
}

// CreateCategory adds a category to the local or chinese section.
func (h *Handler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", err)
		return
	}

	category, err := h.CategoryService.Create(service.CreateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
		Section:     req.Section,
		ImageURL:    req.ImageURL,
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidSection) {
			respondError(c, response.CodeBadRequest, "section must be local or chinese", nil)
			return
		}
		respondError(c, response.CodeInternal, "create category failed", err)
		return
	}
	response.Success(c, category)
}

// UpdateCategoryRequest is the category edit payload.
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Section     *string `json:"section"`
	ImageURL    *string `json:"image_url"`
	SortOrder   *int    `json:"sort_order"`
}

// UpdateCategory edits a category.
func (h *Handler) UpdateCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", err)
		return
	}

	category, err := h.CategoryService.Update(id, service.UpdateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
		Section:     req.Section,
		ImageURL:    req.ImageURL,
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCategoryNotFound):
			respondError(c, response.CodeNotFound, "category not found", nil)
		case errors.Is(err, service.ErrInvalidSection):
			respondError(c, response.CodeBadRequest, "section must be local or chinese", nil)
		default:
			respondError(c, response.CodeInternal, "update category failed", err)
		}
		return
	}
	response.Success(c, category)
}

// DeleteCategory removes an empty category.
func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.CategoryService.Delete(id); err != nil {
		switch {
		case errors.Is(err, service.ErrCategoryNotFound):
			respondError(c, response.CodeNotFound, "category not found", nil)
		case errors.Is(err, service.ErrCategoryNotEmpty):
			respondError(c, response.CodeBadRequest, "category still has products", nil)
		default:
			respondError(c, response.CodeInternal, "delete category failed", err)
		}
		return
	}
	response.Success(c, nil)
}
