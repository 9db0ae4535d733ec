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

// ListUsers returns storefront accounts.
func (h *Handler) ListUsers(c *gin.Context) {
	page, pageSize := parsePagination(c)

	users, total, err := h.UserAdminService.List(repository.UserListFilter{
		Page:     page,
		PageSize: pageSize,
		Keyword:  strings.TrimSpace(c.Query("keyword")),
		Role:     strings.TrimSpace(c.Query("role")),
		Status:   strings.TrimSpace(c.Query("status")),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "list users failed", err)
		return
	}
	response.SuccessWithPage(c, users, handlershared.BuildPagination(page, pageSize, total))
}

// GetUser returns a user together with any active suspension.
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	detail, err := h.UserAdminService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "user not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "load user failed", err)
		return
	}
	response.Success(c, detail)
}

// ProvisionWholesalerRequest is the wholesaler onboarding payload.
type ProvisionWholesalerRequest struct {
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	ShopName    string `json:"shop_name" binding:"required"`
	Description string `json:"description"`
	LogoURL     string `json:"logo_url"`
}

// ProvisionWholesaler creates a wholesaler account with its shop.
// There is no self-service wholesaler signup.
func (h *Handler) ProvisionWholesaler(c *gin.Context) {
	var req ProvisionWholesalerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", err)
		return
	}

	user, err := h.UserAdminService.ProvisionWholesaler(service.ProvisionWholesalerInput{
		Email:       req.Email,
		Password:    req.Password,
		Name:        req.Name,
		Phone:       req.Phone,
		ShopName:    req.ShopName,
		Description: req.Description,
		LogoURL:     req.LogoURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEmail):
			respondError(c, response.CodeBadRequest, "invalid email address", nil)
		case errors.Is(err, service.ErrEmailExists):
			respondError(c, response.CodeBadRequest, "email already registered", nil)
		case errors.Is(err, service.ErrWeakPassword):
			respondError(c, response.CodeBadRequest, err.Error(), nil)
		case errors.Is(err, service.ErrProfileEmpty):
			respondError(c, response.CodeBadRequest, "shop name is required", nil)
		default:
			respondError(c, response.CodeInternal, "provision wholesaler failed", err)
		}
		return
	}

	requestLog(c).Infow("admin_wholesaler_provisioned",
		"admin_id", currentAdminID(c),
		"user_id", user.ID,
		"email", user.Email,
	)
	response.Success(c, user)
}

// SetUserStatusRequest is the account status payload.
type SetUserStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// SetUserStatus enables or disables an account. Disabling invalidates
// issued tokens immediately.
func (h *Handler) SetUserStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req SetUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", err)
		return
	}

	user, err := h.UserAdminService.SetStatus(id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "user not found", nil)
		case errors.Is(err, service.ErrInvalidStatus):
			respondError(c, response.CodeBadRequest, "status must be active or disabled", nil)
		default:
			respondError(c, response.CodeInternal, "set user status failed", err)
		}
		return
	}
	requestLog(c).Infow("admin_user_status_updated",
		"admin_id", currentAdminID(c),
		"user_id", id,
		"status", req.Status,
	)
	response.Success(c, user)
}
