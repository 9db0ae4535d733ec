package admin

import (
	"errors"

	"github.com/paikari-bazar/internal/http/response"
	"github.com/paikari-bazar/internal/service"

	"github.com/gin-gonic/gin"
)

// SendTestEmailRequest is the outbound mail check payload.
type SendTestEmailRequest struct {
	To      string `json:"to" binding:"required"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// SendTestEmail sends a message through the configured SMTP account so
// staff can verify mail settings.
func (h *Handler) SendTestEmail(c *gin.Context) {
	var req SendTestEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", err)
		return
	}
	if req.Subject == "" {
		req.Subject = "Paikari Bazar mail check"
	}
	if req.Body == "" {
		req.Body = "This is a test message from the Paikari Bazar panel."
	}

	if err := h.EmailService.SendCustomEmail(req.To, req.Subject, req.Body); err != nil {
		switch {
		case errors.Is(err, service.ErrEmailServiceDisabled):
			respondError(c, response.CodeBadRequest, "email sending is disabled", nil)
		case errors.Is(err, service.ErrEmailServiceNotConfigured):
			respondError(c, response.CodeBadRequest, "email service is not configured", nil)
		case errors.Is(err, service.ErrEmailRecipientRejected):
			respondError(c, response.CodeBadRequest, "recipient address rejected", nil)
		default:
			respondError(c, response.CodeInternal, "send test email failed", err)
		}
		return
	}
	requestLog(c).Infow("admin_test_email_sent", "admin_id", currentAdminID(c), "to", req.To)
	response.Success(c, nil)
}
