package wholesaler

import (
	"errors"
	"strings"

	handlershared "github.com/paikari-bazar/internal/http/handlers/shared"
	"github.com/paikari-bazar/internal/http/response"
	"github.com/paikari-bazar/internal/service"

	"github.com/gin-gonic/gin"
)

// ListOrders returns orders containing the wholesaler's items.
func (h *Handler) ListOrders(c *gin.Context) {
	wholesalerID, ok := getWholesalerID(c)
	if !ok {
		return
	}
	page, pageSize := parsePagination(c)
	status := strings.TrimSpace(c.Query("status"))

	orders, total, err := h.OrderService.ListForWholesaler(wholesalerID, page, pageSize, status)
	if err != nil {
		respondError(c, response.CodeInternal, "list orders failed", err)
		return
	}
	response.SuccessWithPage(c, orders, handlershared.BuildPagination(page, pageSize, total))
}

// GetOrder returns one order that includes the wholesaler's items.
func (h *Handler) GetOrder(c *gin.Context) {
	wholesalerID, ok := getWholesalerID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	order, err := h.OrderService.GetForWholesaler(id, wholesalerID)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			respondError(c, response.CodeNotFound, "order not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "load order failed", err)
		return
	}
	response.Success(c, order)
}
