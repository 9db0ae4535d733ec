package public

import (
	"errors"
	"strings"

	handlershared "github.com/paikari-bazar/internal/http/handlers/shared"
	"github.com/paikari-bazar/internal/http/response"
	"github.com/paikari-bazar/internal/models"
	"github.com/paikari-bazar/internal/service"

	"github.com/gin-gonic/gin"
)

// GetCheckoutInfo returns the bKash number and the advance required
// for the current cart.
func (h *Handler) GetCheckoutInfo(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	cart, err := h.CartService.GetCart(userID)
	if err != nil {
		respondError(c, response.CodeInternal, "load cart failed", err)
		return
	}
	info, err := h.OrderService.GetCheckoutInfo(cart.Total)
	if err != nil {
		respondError(c, response.CodeInternal, "load checkout info failed", err)
		return
	}
	response.Success(c, info)
}

// CreateOrderRequest is the checkout payload. The buyer pays the
// advance over bKash first and enters the transaction reference here.
type CreateOrderRequest struct {
	Name          string       `json:"name" binding:"required"`
	Email         string       `json:"email" binding:"required"`
	Phone         string       `json:"phone" binding:"required"`
	Address       string       `json:"address" binding:"required"`
	TransactionID string       `json:"transaction_id" binding:"required"`
	AdvanceAmount models.Money `json:"advance_amount"`
}

// CreateOrder places an order from the cart.
func (h *Handler) CreateOrder(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", err)
		return
	}

	order, err := h.OrderService.CreateOrder(userID, service.CreateOrderInput{
		CustomerName:    req.Name,
		CustomerEmail:   req.Email,
		CustomerPhone:   req.Phone,
		CustomerAddress: req.Address,
		TransactionID:   req.TransactionID,
		AdvanceAmount:   req.AdvanceAmount,
	})
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	response.Success(c, checkoutSuccessPayload(order))
}

// orderSuccessRedirect is where the storefront sends the buyer after checkout.
const orderSuccessRedirect = "/order-success"

func checkoutSuccessPayload(order *models.Order) gin.H {
	return gin.H{
		"order":    order,
		"redirect": orderSuccessRedirect,
	}
}

func respondCheckoutError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrShippingInfoEmpty):
		respondError(c, response.CodeBadRequest, "shipping details are required", nil)
	case errors.Is(err, service.ErrInvalidEmail):
		respondError(c, response.CodeBadRequest, "invalid email address", nil)
	case errors.Is(err, service.ErrTransactionIDEmpty):
		respondError(c, response.CodeBadRequest, "bKash transaction id is required", nil)
	case errors.Is(err, service.ErrCartEmpty):
		respondError(c, response.CodeBadRequest, "cart is empty", nil)
	case errors.Is(err, service.ErrItemNotAvailable):
		respondError(c, response.CodeBadRequest, "an item in the cart is no longer available", nil)
	case errors.Is(err, service.ErrBelowMinimumQty):
		respondError(c, response.CodeBadRequest, "a cart line is below the minimum order quantity", nil)
	case errors.Is(err, service.ErrAdvanceTooLow):
		respondError(c, response.CodeBadRequest, "advance amount is below the required minimum", nil)
	case errors.Is(err, service.ErrAdvanceExceedsTotal):
		respondError(c, response.CodeBadRequest, "advance amount exceeds the order total", nil)
	default:
		respondError(c, response.CodeInternal, "checkout failed", err)
	}
}

// ListOrders returns the signed-in user's orders.
func (h *Handler) ListOrders(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	page, pageSize := parsePagination(c)
	status := strings.TrimSpace(c.Query("status"))

	orders, total, err := h.OrderService.ListForUser(userID, page, pageSize, status)
	if err != nil {
		respondError(c, response.CodeInternal, "list orders failed", err)
		return
	}
	response.SuccessWithPage(c, orders, handlershared.BuildPagination(page, pageSize, total))
}

// GetOrder returns one of the signed-in user's orders.
func (h *Handler) GetOrder(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	order, err := h.OrderService.GetForUser(id, userID)
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

// CancelOrder cancels one of the signed-in user's orders while it is
// still pending or confirmed.
func (h *Handler) CancelOrder(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	order, err := h.OrderService.CancelForUser(id, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			respondError(c, response.CodeNotFound, "order not found", nil)
		case errors.Is(err, service.ErrOrderStatusInvalid):
			respondError(c, response.CodeBadRequest, "order can no longer be cancelled", nil)
		default:
			respondError(c, response.CodeInternal, "cancel order failed", err)
		}
		return
	}
	response.Success(c, order)
}
