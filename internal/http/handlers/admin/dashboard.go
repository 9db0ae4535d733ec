package admin

import (
	"strconv"

	"github.com/paikari-bazar/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetDashboard returns the overview statistics. The days query selects
// the window, defaulting to the last 30 days.
func (h *Handler) GetDashboard(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))

	overview, err := h.DashboardService.GetOverview(days)
	if err != nil {
		respondError(c, response.CodeInternal, "load dashboard failed", err)
		return
	}
	response.Success(c, overview)
}

// GetRecentOrders returns the newest orders for the panel landing page.
func (h *Handler) GetRecentOrders(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit <= 0 || limit > 50 {
		limit = 10
	}

	orders, err := h.DashboardService.GetRecentOrders(limit)
	if err != nil {
		respondError(c, response.CodeInternal, "load recent orders failed", err)
		return
	}
	response.Success(c, orders)
}
