package service

import (
	"time"

	"github.com/paikari-bazar/internal/models"
	"github.com/paikari-bazar/internal/repository"

	"github.com/shopspring/decimal"
)

// DashboardService aggregates moderation panel statistics.
type DashboardService struct {
	dashboardRepo repository.DashboardRepository
}

// NewDashboardService creates a dashboard service.
func NewDashboardService(dashboardRepo repository.DashboardRepository) *DashboardService {
	return &DashboardService{dashboardRepo: dashboardRepo}
}

// DashboardOverview is the panel's landing page summary.
type DashboardOverview struct {
	OrdersTotal      int64        `json:"orders_total"`
	PendingOrders    int64        `json:"pending_orders"`
	ConfirmedOrders  int64        `json:"confirmed_orders"`
	ProcessingOrders int64        `json:"processing_orders"`
	CompletedOrders  int64        `json:"completed_orders"`
	CancelledOrders  int64        `json:"cancelled_orders"`
	CompletedRevenue models.Money `json:"completed_revenue"`
	AdvanceCollected models.Money `json:"advance_collected"`
	PendingProducts  int64        `json:"pending_products"`
	ActiveListings   int64        `json:"active_listings"`
	OpenTickets      int64        `json:"open_tickets"`
	NewUsers         int64        `json:"new_users"`
}

// GetOverview aggregates the overview for the given number of days
// back from now. Days at or below zero defaults to 30.
func (s *DashboardService) GetOverview(days int) (*DashboardOverview, error) {
	if days <= 0 {
		days = 30
	}
	endAt := time.Now()
	startAt := endAt.AddDate(0, 0, -days)

	row, err := s.dashboardRepo.GetOverview(startAt, endAt)
	if err != nil {
		return nil, err
	}

	return &DashboardOverview{
		OrdersTotal:      row.OrdersTotal,
		PendingOrders:    row.PendingOrders,
		ConfirmedOrders:  row.ConfirmedOrders,
		ProcessingOrders: row.ProcessingOrders,
		CompletedOrders:  row.CompletedOrders,
		CancelledOrders:  row.CancelledOrders,
		CompletedRevenue: models.NewMoneyFromDecimal(decimal.NewFromFloat(row.CompletedRevenue)),
		AdvanceCollected: models.NewMoneyFromDecimal(decimal.NewFromFloat(row.AdvanceCollected)),
		PendingProducts:  row.PendingProducts,
		ActiveListings:   row.ActiveListings,
		OpenTickets:      row.OpenTickets,
		NewUsers:         row.NewUsers,
	}, nil
}

// GetRecentOrders returns the newest orders for the panel.
func (s *DashboardService) GetRecentOrders(limit int) ([]models.Order, error) {
	return s.dashboardRepo.GetRecentOrders(limit)
}
