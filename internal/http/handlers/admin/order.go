package admin

import (
	"errors"
	"strings"

	handlershared "github.com/paikari-bazar/internal/http/handlers/shared"
	"github.com/paikari-bazar/internal/http/response"
	"github.com/paikari-bazar/internal/repository"
	"github.com/paikari-bazar/internal/service"

	"github.com/gin-gonic/gin"
)

// ListOrders returns orders across the marketplace.
func (h *Handler) ListOrders(c *gin.Context) {
	page, pageSize := parsePagination(c)

	orders, total, err := h.OrderService.ListAdmin(repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		Status:   strings.TrimSpace(c.Query("status")),
		OrderNo:  strings.TrimSpace(c.Query("order_no")),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "list orders failed", err)
		return
	}
	response.SuccessWithPage(c, orders, handlershared.BuildPagination(page, pageSize, total))
}

// GetOrder returns one order with its lines.
func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	order, err := h.OrderService.GetByID(id)
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

// UpdateOrderStatusRequest is the status transition payload.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOrderStatus moves an order along its lifecycle. Confirming an
// order is how staff record that the bKash advance checked out.
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", err)
		return
	}

	order, err := h.OrderService.UpdateStatus(id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			respondError(c, response.CodeNotFound, "order not found", nil)
		case errors.Is(err, service.ErrOrderStatusInvalid):
			respondError(c, response.CodeBadRequest, "status transition is not allowed", nil)
		default:
			respondError(c, response.CodeInternal, "update order status failed", err)
		}
		return
	}
	requestLog(c).Infow("admin_order_status_updated",
		"admin_id", currentAdminID(c),
		"order_id", id,
		"status", req.Status,
	)
	response.Success(c, order)
}
