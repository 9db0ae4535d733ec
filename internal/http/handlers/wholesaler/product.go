package wholesaler

import (
	"errors"
	"strings"

	handlershared "github.com/paikari-bazar/internal/http/handlers/shared"
	"github.com/paikari-bazar/internal/http/response"
	"github.com/paikari-bazar/internal/service"

	"github.com/gin-gonic/gin"
)

// ListProducts returns the wholesaler's listings in every status.
func (h *Handler) ListProducts(c *gin.Context) {
	wholesalerID, ok := getWholesalerID(c)
	if !ok {
		return
	}
	page, pageSize := parsePagination(c)
	status := strings.TrimSpace(c.Query("status"))

	products, total, err := h.ProductService.ListForWholesaler(wholesalerID, page, pageSize, status)
	if err != nil {
		respondError(c, response.CodeInternal, "list products failed", err)
		return
	}
	response.SuccessWithPage(c, products, handlershared.BuildPagination(page, pageSize, total))
}

// GetProduct returns one of the wholesaler's listings.
func (h *Handler) GetProduct(c *gin.Context) {
	wholesalerID, ok := getWholesalerID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	product, err := h.ProductService.GetForWholesaler(id, wholesalerID)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			respondError(c, response.CodeNotFound, "product not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "load product failed", err)
		return
	}
	response.Success(c, product)
}

// CreateProductRequest is the new listing payload.
type CreateProductRequest struct {
	CategoryID  uint   `json:"category_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	VideoURL    string `json:"video_url"`
}

// CreateProduct submits a listing for review.
func (h *Handler) CreateProduct(c *gin.Context) {
	wholesalerID, ok := getWholesalerID(c)
	if !ok {
		return
	}
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", err)
		return
	}

	product, err := h.ProductService.Create(wholesalerID, service.CreateProductInput{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		VideoURL:    req.VideoURL,
	})
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			respondError(c, response.CodeBadRequest, "category not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "create product failed", err)
		return
	}
	response.Success(c, product)
}

// UpdateProductRequest is the listing edit payload.
type UpdateProductRequest struct {
	CategoryID  *uint   `json:"category_id"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	VideoURL    *string `json:"video_url"`
}

// UpdateProduct edits a listing. Approved listings drop back to
// pending for re-review.
func (h *Handler) UpdateProduct(c *gin.Context) {
	wholesalerID, ok := getWholesalerID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", err)
		return
	}

	product, err := h.ProductService.Update(id, wholesalerID, service.UpdateProductInput{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		VideoURL:    req.VideoURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			respondError(c, response.CodeNotFound, "product not found", nil)
		case errors.Is(err, service.ErrCategoryNotFound):
			respondError(c, response.CodeBadRequest, "category not found", nil)
		default:
			respondError(c, response.CodeInternal, "update product failed", err)
		}
		return
	}
	response.Success(c, product)
}

// DeleteProduct removes one of the wholesaler's listings.
func (h *Handler) DeleteProduct(c *gin.Context) {
	wholesalerID, ok := getWholesalerID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.ProductService.DeleteForWholesaler(id, wholesalerID); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			respondError(c, response.CodeNotFound, "product not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "delete product failed", err)
		return
	}
	response.Success(c, nil)
}
