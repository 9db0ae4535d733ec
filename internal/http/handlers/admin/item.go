package admin

import (
	"errors"

	"github.com/paikari-bazar/internal/http/response"
	"github.com/paikari-bazar/internal/service"

	"github.com/gin-gonic/gin"
)

// GetItem returns any item regardless of the listing's status.
func (h *Handler) GetItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	item, err := h.ItemService.AdminGet(id)
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			respondError(c, response.CodeNotFound, "item not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "load item failed", err)
		return
	}
	response.Success(c, item)
}

// SetItemStockRequest toggles an item's stock flag.
type SetItemStockRequest struct {
	InStock *bool `json:"in_stock" binding:"required"`
}

// SetItemStock overrides an item's stock flag, typically to pull a
// sold-out item off the storefront.
func (h *Handler) SetItemStock(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req SetItemStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", err)
		return
	}

	item, err := h.ItemService.AdminSetStock(id, *req.InStock)
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			respondError(c, response.CodeNotFound, "item not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "update item stock failed", err)
		return
	}
	requestLog(c).Infow("admin_item_stock_set", "admin_id", currentAdminID(c), "item_id", id, "in_stock", *req.InStock)
	response.Success(c, item)
}
