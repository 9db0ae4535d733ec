package wholesaler

import (
	"errors"

	"github.com/paikari-bazar/internal/http/response"
	"github.com/paikari-bazar/internal/models"
	"github.com/paikari-bazar/internal/service"

	"github.com/gin-gonic/gin"
)

// ListItems returns the items under one of the wholesaler's listings.
func (h *Handler) ListItems(c *gin.Context) {
	wholesalerID, ok := getWholesalerID(c)
	if !ok {
		return
	}
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	items, err := h.ItemService.ListForWholesaler(productID, wholesalerID)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			respondError(c, response.CodeNotFound, "product not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "list items failed", err)
		return
	}
	response.Success(c, items)
}

// CreateItemRequest is the new item payload.
type CreateItemRequest struct {
	Name              string       `json:"name" binding:"required"`
	Description       string       `json:"description"`
	Price             models.Money `json:"price" binding:"required"`
	MinimumQuantity   int          `json:"minimum_quantity"`
	ImageURL          string       `json:"image_url"`
	VideoURL          string       `json:"video_url"`
	InStock           *bool        `json:"in_stock"`
	AdditionalDetails models.JSON  `json:"additional_details"`
}

// CreateItem adds an item under one of the wholesaler's listings.
func (h *Handler) CreateItem(c *gin.Context) {
	wholesalerID, ok := getWholesalerID(c)
	if !ok {
		return
	}
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", err)
		return
	}

	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}
	item, err := h.ItemService.Create(wholesalerID, service.CreateItemInput{
		ProductID:         productID,
		Name:              req.Name,
		Description:       req.Description,
		Price:             req.Price,
		MinimumQuantity:   req.MinimumQuantity,
		ImageURL:          req.ImageURL,
		VideoURL:          req.VideoURL,
		InStock:           inStock,
		AdditionalDetails: req.AdditionalDetails,
	})
	if err != nil {
		respondItemError(c, err)
		return
	}
	response.Success(c, item)
}

// UpdateItemRequest is the item edit payload.
type UpdateItemRequest struct {
	Name              *string       `json:"name"`
	Description       *string       `json:"description"`
	Price             *models.Money `json:"price"`
	MinimumQuantity   *int          `json:"minimum_quantity"`
	ImageURL          *string       `json:"image_url"`
	VideoURL          *string       `json:"video_url"`
	InStock           *bool         `json:"in_stock"`
	AdditionalDetails models.JSON   `json:"additional_details"`
}

// UpdateItem edits one of the wholesaler's items.
func (h *Handler) UpdateItem(c *gin.Context) {
	wholesalerID, ok := getWholesalerID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", err)
		return
	}

	item, err := h.ItemService.Update(id, wholesalerID, service.UpdateItemInput{
		Name:              req.Name,
		Description:       req.Description,
		Price:             req.Price,
		MinimumQuantity:   req.MinimumQuantity,
		ImageURL:          req.ImageURL,
		VideoURL:          req.VideoURL,
		InStock:           req.InStock,
		AdditionalDetails: req.AdditionalDetails,
	})
	if err != nil {
		respondItemError(c, err)
		return
	}
	response.Success(c, item)
}

// DeleteItem removes one of the wholesaler's items.
func (h *Handler) DeleteItem(c *gin.Context) {
	wholesalerID, ok := getWholesalerID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.ItemService.Delete(id, wholesalerID); err != nil {
		respondItemError(c, err)
		return
	}
	response.Success(c, nil)
}

func respondItemError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProductNotFound):
		respondError(c, response.CodeNotFound, "product not found", nil)
	case errors.Is(err, service.ErrItemNotFound):
		respondError(c, response.CodeNotFound, "item not found", nil)
	case errors.Is(err, service.ErrInvalidPrice):
		respondError(c, response.CodeBadRequest, "price must not be negative", nil)
	case errors.Is(err, service.ErrInvalidQuantity):
		respondError(c, response.CodeBadRequest, "minimum quantity must be positive", nil)
	default:
		respondError(c, response.CodeInternal, "item update failed", err)
	}
}
