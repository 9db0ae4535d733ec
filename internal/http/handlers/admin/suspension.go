package admin

import (
	"errors"
	"strconv"
	"time"

	handlershared "github.com/paikari-bazar/internal/http/handlers/shared"
	"github.com/paikari-bazar/internal/http/response"
	"github.com/paikari-bazar/internal/service"

	"github.com/gin-gonic/gin"
)

// ListSuspensions returns suspensions, optionally for one user or
// active ones only.
func (h *Handler) ListSuspensions(c *gin.Context) {
	page, pageSize := parsePagination(c)
	userID64, _ := strconv.ParseUint(c.Query("user_id"), 10, 64)
	activeOnly := c.Query("active") == "true"

	suspensions, total, err := h.SuspensionService.List(page, pageSize, uint(userID64), activeOnly)
	if err != nil {
		respondError(c, response.CodeInternal, "list suspensions failed", err)
		return
	}
	response.SuccessWithPage(c, suspensions, handlershared.BuildPagination(page, pageSize, total))
}

// SuspendUserRequest is the suspension payload. Temporary suspensions
// need a future expiry, permanent ones set is_permanent.
type SuspendUserRequest struct {
	UserID         uint       `json:"user_id" binding:"required"`
	Reason         string     `json:"reason" binding:"required"`
	IsPermanent    bool       `json:"is_permanent"`
	SuspendedUntil *time.Time `json:"suspended_until"`
}

// SuspendUser restricts an account. The suspension takes effect on the
// user's next request, not just their next login.
func (h *Handler) SuspendUser(c *gin.Context) {
	adminID, ok := getAdminID(c)
	if !ok {
		return
	}
	var req SuspendUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", err)
		return
	}

	suspension, err := h.SuspensionService.Suspend(service.SuspendInput{
		UserID:         req.UserID,
		Reason:         req.Reason,
		IsPermanent:    req.IsPermanent,
		SuspendedUntil: req.SuspendedUntil,
		SuspendedBy:    adminID,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "user not found", nil)
		case errors.Is(err, service.ErrSuspensionInvalid):
			respondError(c, response.CodeBadRequest, "suspension needs a reason and a future expiry or the permanent flag", nil)
		default:
			respondError(c, response.CodeInternal, "suspend user failed", err)
		}
		return
	}
	requestLog(c).Infow("admin_user_suspended",
		"admin_id", adminID,
		"user_id", req.UserID,
		"permanent", req.IsPermanent,
	)
	response.Success(c, suspension)
}

// LiftSuspension removes a suspension, restoring the account.
func (h *Handler) LiftSuspension(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.SuspensionService.Lift(id); err != nil {
		if errors.Is(err, service.ErrSuspensionNotFound) {
			respondError(c, response.CodeNotFound, "suspension not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "lift suspension failed", err)
		return
	}
	requestLog(c).Infow("admin_suspension_lifted", "admin_id", currentAdminID(c), "suspension_id", id)
	response.Success(c, nil)
}
