package wholesaler

import (
	"errors"

	"github.com/paikari-bazar/internal/http/response"
	"github.com/paikari-bazar/internal/service"

	"github.com/gin-gonic/gin"
)

// GetProfile returns the wholesaler's shop profile.
func (h *Handler) GetProfile(c *gin.Context) {
	wholesalerID, ok := getWholesalerID(c)
	if !ok {
		return
	}
	profile, err := h.ProfileService.GetOwn(wholesalerID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "shop profile not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "load shop profile failed", err)
		return
	}
	response.Success(c, profile)
}

// UpdateProfileRequest is the shop profile edit payload.
type UpdateProfileRequest struct {
	ShopName    *string `json:"shop_name"`
	Description *string `json:"description"`
	LogoURL     *string `json:"logo_url"`
}

// UpdateProfile edits the wholesaler's shop profile.
func (h *Handler) UpdateProfile(c *gin.Context) {
	wholesalerID, ok := getWholesalerID(c)
	if !ok {
		return
	}
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", err)
		return
	}

	profile, err := h.ProfileService.Update(wholesalerID, service.UpdateProfileInput{
		ShopName:    req.ShopName,
		Description: req.Description,
		LogoURL:     req.LogoURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "shop profile not found", nil)
		case errors.Is(err, service.ErrProfileEmpty):
			respondError(c, response.CodeBadRequest, "nothing to update", nil)
		default:
			respondError(c, response.CodeInternal, "update shop profile failed", err)
		}
		return
	}
	response.Success(c, profile)
}
