package admin

import (
	"github.com/paikari-bazar/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetSettings returns every stored setting plus the resolved payment
// values the storefront actually uses.
func (h *Handler) GetSettings(c *gin.Context) {
	settings, err := h.SettingService.GetAll()
	if err != nil {
		respondError(c, response.CodeInternal, "load settings failed", err)
		return
	}
	bkashNumber, err := h.SettingService.GetBkashNumber()
	if err != nil {
		respondError(c, response.CodeInternal, "load settings failed", err)
		return
	}
	policy, err := h.SettingService.GetAdvancePolicy()
	if err != nil {
		respondError(c, response.CodeInternal, "load settings failed", err)
		return
	}
	response.Success(c, gin.H{
		"settings": settings,
		"effective": gin.H{
			"bkash_number":        bkashNumber,
			"advance_mode":        policy.Mode,
			"advance_min_percent": policy.MinPercent,
			"advance_percent":     policy.Percent,
		},
	})
}

// UpdateSettings stores the posted key value pairs. Unknown keys are
// stored as-is so the panel can carry free-form settings.
func (h *Handler) UpdateSettings(c *gin.Context) {
	var req map[string]string
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", err)
		return
	}
	if len(req) == 0 {
		respondError(c, response.CodeBadRequest, "no settings provided", nil)
		return
	}

	for key, value := range req {
		if key == "" {
			respondError(c, response.CodeBadRequest, "setting key must not be empty", nil)
			return
		}
		if err := h.SettingService.Set(key, value); err != nil {
			respondError(c, response.CodeInternal, "save settings failed", err)
			return
		}
	}
	requestLog(c).Infow("admin_settings_updated", "admin_id", currentAdminID(c), "keys", len(req))
	h.GetSettings(c)
}
