package admin

import (
	"context"
	"strings"
	"time"

	"github.com/paikari-bazar/internal/cache"
	"github.com/paikari-bazar/internal/constants"
	handlershared "github.com/paikari-bazar/internal/http/handlers/shared"
	"github.com/paikari-bazar/internal/http/response"
	"github.com/paikari-bazar/internal/models"

	"github.com/gin-gonic/gin"
)

// protectedSuperAdminUsername is the seeded root account. It cannot be
// deleted or demoted through the API.
const protectedSuperAdminUsername = "admin"

func normalizeAdminUsername(username string) (string, bool) {
	trimmed := strings.TrimSpace(username)
	if trimmed == "" {
		return "", false
	}
	runes := []rune(trimmed)
	if len(runes) < 3 || len(runes) > 64 {
		return "", false
	}
	if strings.ContainsAny(trimmed, " \t\r\n") {
		return "", false
	}
	return trimmed, true
}

func staffPayload(admin *models.Admin, roles []string) gin.H {
	if roles == nil {
		roles = []string{}
	}
	return gin.H{
		"id":            admin.ID,
		"username":      admin.Username,
		"status":        admin.Status,
		"is_super":      admin.IsSuper,
		"roles":         roles,
		"last_login_at": admin.LastLoginAt,
		"created_at":    admin.CreatedAt,
	}
}

// ListStaff returns staff accounts with their assigned roles.
func (h *Handler) ListStaff(c *gin.Context) {
	page, pageSize := parsePagination(c)

	admins, total, err := h.AdminRepo.List(page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "list staff failed", err)
		return
	}

	payload := make([]gin.H, 0, len(admins))
	for i := range admins {
		roles, err := h.AuthzService.GetAdminRoles(admins[i].ID)
		if err != nil {
			respondError(c, response.CodeInternal, "list staff failed", err)
			return
		}
		payload = append(payload, staffPayload(&admins[i], roles))
	}
	response.SuccessWithPage(c, payload, handlershared.BuildPagination(page, pageSize, total))
}

// CreateStaffRequest is the new staff account payload.
type CreateStaffRequest struct {
	Username string   `json:"username" binding:"required"`
	Password string   `json:"password" binding:"required"`
	IsSuper  bool     `json:"is_super"`
	Roles    []string `json:"roles"`
}

// CreateStaff creates a staff account and assigns its roles.
func (h *Handler) CreateStaff(c *gin.Context) {
	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", err)
		return
	}

	username, ok := normalizeAdminUsername(req.Username)
	if !ok {
		respondError(c, response.CodeBadRequest, "username must be 3 to 64 characters without whitespace", nil)
		return
	}
	if err := h.AuthService.ValidatePassword(req.Password); err != nil {
		respondError(c, response.CodeBadRequest, err.Error(), nil)
		return
	}

	exist, err := h.AdminRepo.GetByUsername(username)
	if err != nil {
		respondError(c, response.CodeInternal, "create staff failed", err)
		return
	}
	if exist != nil {
		respondError(c, response.CodeBadRequest, "username already taken", nil)
		return
	}

	hashedPassword, err := h.AuthService.HashPassword(req.Password)
	if err != nil {
		respondError(c, response.CodeInternal, "create staff failed", err)
		return
	}

	admin := &models.Admin{
		Username:     username,
		PasswordHash: hashedPassword,
		Status:       constants.AdminStatusActive,
		IsSuper:      req.IsSuper,
		CreatedAt:    time.Now(),
	}
	if err := h.AdminRepo.Create(admin); err != nil {
		respondError(c, response.CodeInternal, "create staff failed", err)
		return
	}

	if len(req.Roles) > 0 {
		if err := h.AuthzService.SetAdminRoles(admin.ID, req.Roles); err != nil {
			respondError(c, response.CodeBadRequest, "invalid role assignment", err)
			return
		}
	}
	_ = cache.SetAdminAuthState(context.Background(), cache.BuildAdminAuthState(admin))

	roles, _ := h.AuthzService.GetAdminRoles(admin.ID)
	requestLog(c).Infow("admin_staff_created",
		"admin_id", currentAdminID(c),
		"staff_id", admin.ID,
		"username", admin.Username,
		"is_super", admin.IsSuper,
	)
	response.Success(c, staffPayload(admin, roles))
}

// UpdateStaffRequest carries optional staff account changes. A new
// password invalidates the account's outstanding tokens.
type UpdateStaffRequest struct {
	Password *string   `json:"password"`
	Status   *string   `json:"status"`
	IsSuper  *bool     `json:"is_super"`
	Roles    *[]string `json:"roles"`
}

// UpdateStaff updates a staff account.
func (h *Handler) UpdateStaff(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", err)
		return
	}

	admin, err := h.AdminRepo.GetByID(id)
	if err != nil {
		respondError(c, response.CodeInternal, "update staff failed", err)
		return
	}
	if admin == nil {
		respondError(c, response.CodeNotFound, "staff account not found", nil)
		return
	}

	if admin.Username == protectedSuperAdminUsername {
		if req.IsSuper != nil && !*req.IsSuper {
			respondError(c, response.CodeBadRequest, "the root account cannot be demoted", nil)
			return
		}
		if req.Status != nil && strings.ToLower(strings.TrimSpace(*req.Status)) != constants.AdminStatusActive {
			respondError(c, response.CodeBadRequest, "the root account cannot be disabled", nil)
			return
		}
	}

	now := time.Now()
	if req.Password != nil {
		if err := h.AuthService.ValidatePassword(*req.Password); err != nil {
			respondError(c, response.CodeBadRequest, err.Error(), nil)
			return
		}
		hashedPassword, err := h.AuthService.HashPassword(*req.Password)
		if err != nil {
			respondError(c, response.CodeInternal, "update staff failed", err)
			return
		}
		admin.PasswordHash = hashedPassword
		admin.TokenVersion++
		admin.TokenInvalidBefore = &now
	}
	if req.Status != nil {
		status := strings.ToLower(strings.TrimSpace(*req.Status))
		if status != constants.AdminStatusActive && status != constants.AdminStatusDisabled {
			respondError(c, response.CodeBadRequest, "status must be active or disabled", nil)
			return
		}
		admin.Status = status
		if status == constants.AdminStatusDisabled {
			admin.TokenVersion++
			admin.TokenInvalidBefore = &now
		}
	}
	if req.IsSuper != nil {
		admin.IsSuper = *req.IsSuper
	}

	if err := h.AdminRepo.Update(admin); err != nil {
		respondError(c, response.CodeInternal, "update staff failed", err)
		return
	}

	if req.Roles != nil {
		if err := h.AuthzService.SetAdminRoles(admin.ID, *req.Roles); err != nil {
			respondError(c, response.CodeBadRequest, "invalid role assignment", err)
			return
		}
	}
	_ = cache.SetAdminAuthState(context.Background(), cache.BuildAdminAuthState(admin))

	roles, _ := h.AuthzService.GetAdminRoles(admin.ID)
	requestLog(c).Infow("admin_staff_updated", "admin_id", currentAdminID(c), "staff_id", admin.ID)
	response.Success(c, staffPayload(admin, roles))
}

// DeleteStaff removes a staff account. The root account, the caller's
// own account, and the last remaining account are protected.
func (h *Handler) DeleteStaff(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	adminID, ok := getAdminID(c)
	if !ok {
		return
	}
	if id == adminID {
		respondError(c, response.CodeBadRequest, "cannot delete your own account", nil)
		return
	}

	admin, err := h.AdminRepo.GetByID(id)
	if err != nil {
		respondError(c, response.CodeInternal, "delete staff failed", err)
		return
	}
	if admin == nil {
		respondError(c, response.CodeNotFound, "staff account not found", nil)
		return
	}
	if admin.Username == protectedSuperAdminUsername {
		respondError(c, response.CodeBadRequest, "the root account cannot be deleted", nil)
		return
	}

	total, err := h.AdminRepo.Count()
	if err != nil {
		respondError(c, response.CodeInternal, "delete staff failed", err)
		return
	}
	if total <= 1 {
		respondError(c, response.CodeBadRequest, "cannot delete the last staff account", nil)
		return
	}

	if err := h.AuthzService.SetAdminRoles(id, nil); err != nil {
		respondError(c, response.CodeInternal, "delete staff failed", err)
		return
	}
	if err := h.AdminRepo.Delete(id); err != nil {
		respondError(c, response.CodeInternal, "delete staff failed", err)
		return
	}
	_ = cache.DelAdminAuthState(context.Background(), id)

	requestLog(c).Infow("admin_staff_deleted",
		"admin_id", adminID,
		"staff_id", id,
		"username", admin.Username,
	)
	response.Success(c, nil)
}

// GetStaffPermissions returns the roles and effective policies of a
// staff account.
func (h *Handler) GetStaffPermissions(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	admin, err := h.AdminRepo.GetByID(id)
	if err != nil {
		respondError(c, response.CodeInternal, "load staff permissions failed", err)
		return
	}
	if admin == nil {
		respondError(c, response.CodeNotFound, "staff account not found", nil)
		return
	}

	roles, err := h.AuthzService.GetAdminRoles(id)
	if err != nil {
		respondError(c, response.CodeInternal, "load staff permissions failed", err)
		return
	}
	policies, err := h.AuthzService.GetAdminPolicies(id)
	if err != nil {
		respondError(c, response.CodeInternal, "load staff permissions failed", err)
		return
	}
	response.Success(c, gin.H{
		"staff":    staffPayload(admin, roles),
		"policies": policies,
	})
}
