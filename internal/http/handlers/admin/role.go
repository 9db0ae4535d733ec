package admin

import (
	"github.com/paikari-bazar/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ListRoles returns every staff role with its policies.
func (h *Handler) ListRoles(c *gin.Context) {
	roles, err := h.AuthzService.ListRoles()
	if err != nil {
		respondError(c, response.CodeInternal, "list roles failed", err)
		return
	}

	payload := make([]gin.H, 0, len(roles))
	for _, role := range roles {
		policies, err := h.AuthzService.GetRolePolicies(role)
		if err != nil {
			respondError(c, response.CodeInternal, "list roles failed", err)
			return
		}
		payload = append(payload, gin.H{
			"role":     role,
			"policies": policies,
		})
	}
	response.Success(c, payload)
}

// CreateRoleRequest is the new role payload.
type CreateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// CreateRole registers an empty role.
func (h *Handler) CreateRole(c *gin.Context) {
	var req CreateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", err)
		return
	}

	role, err := h.AuthzService.EnsureRole(req.Role)
	if err != nil {
		respondError(c, response.CodeBadRequest, "invalid role name", err)
		return
	}
	requestLog(c).Infow("admin_role_created", "admin_id", currentAdminID(c), "role", role)
	response.Success(c, gin.H{"role": role})
}

// DeleteRole removes a role, its policies, and its assignments.
func (h *Handler) DeleteRole(c *gin.Context) {
	role := c.Param("role")
	if err := h.AuthzService.DeleteRole(role); err != nil {
		respondError(c, response.CodeBadRequest, "delete role failed", err)
		return
	}
	requestLog(c).Infow("admin_role_deleted", "admin_id", currentAdminID(c), "role", role)
	response.Success(c, nil)
}

// RolePolicyRequest names one permission on a role.
type RolePolicyRequest struct {
	Object string `json:"object" binding:"required"`
	Action string `json:"action" binding:"required"`
}

// GrantRolePolicy adds a permission to a role.
func (h *Handler) GrantRolePolicy(c *gin.Context) {
	role := c.Param("role")
	var req RolePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", err)
		return
	}

	if err := h.AuthzService.GrantRolePolicy(role, req.Object, req.Action); err != nil {
		respondError(c, response.CodeBadRequest, "grant policy failed", err)
		return
	}
	requestLog(c).Infow("admin_role_policy_granted",
		"admin_id", currentAdminID(c),
		"role", role,
		"object", req.Object,
		"action", req.Action,
	)
	policies, err := h.AuthzService.GetRolePolicies(role)
	if err != nil {
		respondError(c, response.CodeInternal, "load role policies failed", err)
		return
	}
	response.Success(c, gin.H{"role": role, "policies": policies})
}

// RevokeRolePolicy removes a permission from a role.
func (h *Handler) RevokeRolePolicy(c *gin.Context) {
	role := c.Param("role")
	var req RolePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", err)
		return
	}

	if err := h.AuthzService.RevokeRolePolicy(role, req.Object, req.Action); err != nil {
		respondError(c, response.CodeBadRequest, "revoke policy failed", err)
		return
	}
	requestLog(c).Infow("admin_role_policy_revoked",
		"admin_id", currentAdminID(c),
		"role", role,
		"object", req.Object,
		"action", req.Action,
	)
	policies, err := h.AuthzService.GetRolePolicies(role)
	if err != nil {
		respondError(c, response.CodeInternal, "load role policies failed", err)
		return
	}
	response.Success(c, gin.H{"role": role, "policies": policies})
}
