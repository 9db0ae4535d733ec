package public

import (
	"errors"
	"strconv"
	"strings"

	handlershared "github.com/paikari-bazar/internal/http/handlers/shared"
	"github.com/paikari-bazar/internal/http/response"
	"github.com/paikari-bazar/internal/service"

	"github.com/gin-gonic/gin"
)

// ListCategories returns the categories, optionally filtered by section.
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

// GetCategory returns one category.
func (h *Handler) GetCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	category, err := h.CategoryService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			respondError(c, response.CodeNotFound, "category not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "load category failed", err)
		return
	}
	response.Success(c, category)
}

// ListProducts returns approved listings for the storefront.
func (h *Handler) ListProducts(c *gin.Context) {
	page, pageSize := parsePagination(c)
	categoryID64, _ := strconv.ParseUint(c.Query("category_id"), 10, 64)
	search := strings.TrimSpace(c.Query("search"))

	products, total, err := h.ProductService.ListPublic(page, pageSize, uint(categoryID64), search)
	if err != nil {
		respondError(c, response.CodeInternal, "list products failed", err)
		return
	}
	response.SuccessWithPage(c, products, handlershared.BuildPagination(page, pageSize, total))
}

// GetProduct returns one approved listing.
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	product, err := h.ProductService.GetPublic(id)
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

// ListProductItems returns the sellable items under an approved listing.
func (h *Handler) ListProductItems(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	items, err := h.ItemService.ListPublicByProduct(id)
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

// GetItem returns one item when its listing is approved.
func (h *Handler) GetItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	item, err := h.ItemService.GetPublic(id)
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

// SearchItems searches items across approved listings by name.
func (h *Handler) SearchItems(c *gin.Context) {
	page, pageSize := parsePagination(c)
	query := c.Query("q")

	items, total, err := h.ItemService.SearchPublic(query, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "search failed", err)
		return
	}
	response.SuccessWithPage(c, items, handlershared.BuildPagination(page, pageSize, total))
}

// GetPaymentInfo returns the bKash number buyers send the advance to.
func (h *Handler) GetPaymentInfo(c *gin.Context) {
	number, err := h.SettingService.GetBkashNumber()
	if err != nil {
		respondError(c, response.CodeInternal, "load payment info failed", err)
		return
	}
	response.Success(c, gin.H{"bkash_payment_number": number})
}

// GetWholesalerShop returns a wholesaler's public shop profile.
func (h *Handler) GetWholesalerShop(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	profile, err := h.ProfileService.GetPublic(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "shop not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "load shop failed", err)
		return
	}
	response.Success(c, profile)
}
