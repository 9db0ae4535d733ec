package public

import (
	"errors"

	"github.com/paikari-bazar/internal/http/response"
	"github.com/paikari-bazar/internal/service"

	"github.com/gin-gonic/gin"
)

// GetCart returns the cart priced against the live catalog.
func (h *Handler) GetCart(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	view, err := h.CartService.GetCart(userID)
	if err != nil {
		respondError(c, response.CodeInternal, "load cart failed", err)
		return
	}
	response.Success(c, view)
}

// AddCartItemRequest is the add-to-cart payload.
type AddCartItemRequest struct {
	ItemID   uint `json:"item_id" binding:"required"`
	Quantity int  `json:"quantity" binding:"required"`
}

// AddCartItem adds an item to the cart, merging with an existing line.
func (h *Handler) AddCartItem(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", err)
		return
	}

	if err := h.CartService.AddItem(userID, req.ItemID, req.Quantity); err != nil {
		respondCartError(c, err)
		return
	}
	h.GetCart(c)
}

// SetCartItemRequest is the quantity update payload.
type SetCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// SetCartItem replaces a cart line's quantity.
func (h *Handler) SetCartItem(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	itemID, ok := parseIDParam(c, "item_id")
	if !ok {
		return
	}
	var req SetCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", err)
		return
	}

	if err := h.CartService.SetQuantity(userID, itemID, req.Quantity); err != nil {
		respondCartError(c, err)
		return
	}
	h.GetCart(c)
}

// RemoveCartItem drops a line from the cart.
func (h *Handler) RemoveCartItem(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	itemID, ok := parseIDParam(c, "item_id")
	if !ok {
		return
	}
	if err := h.CartService.RemoveItem(userID, itemID); err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, nil)
}

// ClearCart empties the cart.
func (h *Handler) ClearCart(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	if err := h.CartService.Clear(userID); err != nil {
		respondError(c, response.CodeInternal, "clear cart failed", err)
		return
	}
	response.Success(c, nil)
}

func respondCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrItemNotFound):
		respondError(c, response.CodeNotFound, "item not found", nil)
	case errors.Is(err, service.ErrItemNotAvailable):
		respondError(c, response.CodeBadRequest, "item is not available", nil)
	case errors.Is(err, service.ErrInvalidQuantity):
		respondError(c, response.CodeBadRequest, "quantity must be positive", nil)
	case errors.Is(err, service.ErrBelowMinimumQty):
		respondError(c, response.CodeBadRequest, "quantity is below the minimum order quantity", nil)
	case errors.Is(err, service.ErrCartItemAbsent):
		respondError(c, response.CodeNotFound, "item is not in the cart", nil)
	default:
		respondError(c, response.CodeInternal, "cart update failed", err)
	}
}
