package repository

import (
	"time"

	"github.com/paikari-bazar/internal/constants"
	"github.com/paikari-bazar/internal/models"

	"gorm.io/gorm"
)

// DashboardRepository aggregates moderation-panel statistics.
// It only counts and sums, business rules live in the service layer.
type DashboardRepository interface {
	GetOverview(startAt, endAt time.Time) (DashboardOverviewRow, error)
	GetRecentOrders(limit int) ([]models.Order, error)
}

// DashboardOverviewRow is the raw overview aggregation result.
type DashboardOverviewRow struct {
	OrdersTotal      int64
	PendingOrders    int64
	ConfirmedOrders  int64
	ProcessingOrders int64
	CompletedOrders  int64
	CancelledOrders  int64
	CompletedRevenue float64
	AdvanceCollected float64
	PendingProducts  int64
	OpenTickets      int64
	NewUsers         int64
	ActiveListings   int64
}

// GormDashboardRepository is the GORM implementation.
type GormDashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a dashboard repository.
func NewDashboardRepository(db *gorm.DB) *GormDashboardRepository {
	return &GormDashboardRepository{db: db}
}

// GetOverview aggregates the overview counters for the given window.
func (r *GormDashboardRepository) GetOverview(startAt, endAt time.Time) (DashboardOverviewRow, error) {
	result := DashboardOverviewRow{}

	orderBase := func() *gorm.DB {
		return r.db.Model(&models.Order{}).
			Where("created_at >= ? AND created_at < ?", startAt, endAt)
	}

	if err := orderBase().Count(&result.OrdersTotal).Error; err != nil {
		return result, err
	}
	statusCounts := []struct {
		status string
		dest   *int64
	}{
		{constants.OrderStatusPending, &result.PendingOrders},
		{constants.OrderStatusConfirmed, &result.ConfirmedOrders},
		{constants.OrderStatusProcessing, &result.ProcessingOrders},
		{constants.OrderStatusCompleted, &result.CompletedOrders},
		{constants.OrderStatusCancelled, &result.CancelledOrders},
	}
	for _, row := range statusCounts {
		if err := orderBase().Where("status = ?", row.status).Count(row.dest).Error; err != nil {
			return result, err
		}
	}

	if err := orderBase().
		Where("status = ?", constants.OrderStatusCompleted).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&result.CompletedRevenue).Error; err != nil {
		return result, err
	}
	if err := orderBase().
		Where("status <> ?", constants.OrderStatusCancelled).
		Select("COALESCE(SUM(advance_amount), 0)").
		Scan(&result.AdvanceCollected).Error; err != nil {
		return result, err
	}

	if err := r.db.Model(&models.Product{}).
		Where("status = ?", constants.ProductStatusPending).
		Count(&result.PendingProducts).Error; err != nil {
		return result, err
	}
	if err := r.db.Model(&models.Product{}).
		Where("status = ?", constants.ProductStatusApproved).
		Count(&result.ActiveListings).Error; err != nil {
		return result, err
	}
	if err := r.db.Model(&models.Ticket{}).
		Where("status = ?", constants.TicketStatusOpen).
		Count(&result.OpenTickets).Error; err != nil {
		return result, err
	}
	if err := r.db.Model(&models.User{}).
		Where("created_at >= ? AND created_at < ?", startAt, endAt).
		Count(&result.NewUsers).Error; err != nil {
		return result, err
	}

	return result, nil
}

// GetRecentOrders returns the newest orders with items.
func (r *GormDashboardRepository) GetRecentOrders(limit int) ([]models.Order, error) {
	if limit <= 0 {
		limit = 10
	}
	var orders []models.Order
	if err := r.db.Preload("Items").Order("id desc").Limit(limit).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
