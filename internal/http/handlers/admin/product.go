package admin

import (
	"errors"
	"strconv"
	"strings"

	handlershared "github.com/paikari-bazar/internal/http/handlers/shared"
	"github.com/paikari-bazar/internal/http/response"
	"github.com/paikari-bazar/internal/service"

	"github.com/gin-gonic/gin"
)

// ListProducts returns listings for review, filterable by status.
func (h *Handler) ListProducts(c *gin.Context) {
	page, pageSize := parsePagination(c)
	status := strings.TrimSpace(c.Query("status"))
	search := strings.TrimSpace(c.Query("search"))
	categoryID64, _ := strconv.ParseUint(c.Query("category_id"), 10, 64)

	products, total, err := h.ProductService.ListAdmin(page, pageSize, status, search, uint(categoryID64))
	if err != nil {
		respondError(c, response.CodeInternal, "list products failed", err)
		return
	}
	response.SuccessWithPage(c, products, handlershared.BuildPagination(page, pageSize, total))
}

// GetProduct returns one listing regardless of status.
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	product, err := h.ProductService.GetByID(id)
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

// ApproveProduct publishes a pending listing to the storefront.
func (h *Handler) ApproveProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	product, err := h.ProductService.Approve(id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			respondError(c, response.CodeNotFound, "product not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "approve product failed", err)
		return
	}
	requestLog(c).Infow("admin_product_approved", "admin_id", currentAdminID(c), "product_id", id)
	response.Success(c, product)
}

// RejectProduct rejects a listing, keeping it off the storefront.
func (h *Handler) RejectProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	product, err := h.ProductService.Reject(id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			respondError(c, response.CodeNotFound, "product not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "reject product failed", err)
		return
	}
	requestLog(c).Infow("admin_product_rejected", "admin_id", currentAdminID(c), "product_id", id)
	response.Success(c, product)
}

// DeleteProduct removes a listing outright.
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.ProductService.DeleteAdmin(id); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			respondError(c, response.CodeNotFound, "product not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "delete product failed", err)
		return
	}
	response.Success(c, nil)
}
