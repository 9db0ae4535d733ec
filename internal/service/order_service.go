package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/paikari-bazar/internal/config"
	"github.com/paikari-bazar/internal/constants"
	"github.com/paikari-bazar/internal/logger"
	"github.com/paikari-bazar/internal/models"
	"github.com/paikari-bazar/internal/queue"
	"github.com/paikari-bazar/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderService handles checkout and the order lifecycle.
type OrderService struct {
	cfg            *config.Config
	orderRepo      repository.OrderRepository
	cartRepo       repository.CartRepository
	itemRepo       repository.ItemRepository
	settingService *SettingService
	queueClient    *queue.Client
}

// NewOrderService creates an order service.
func NewOrderService(
	cfg *config.Config,
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	itemRepo repository.ItemRepository,
	settingService *SettingService,
	queueClient *queue.Client,
) *OrderService {
	return &OrderService{
		cfg:            cfg,
		orderRepo:      orderRepo,
		cartRepo:       cartRepo,
		itemRepo:       itemRepo,
		settingService: settingService,
		queueClient:    queueClient,
	}
}

// CheckoutInfo is what the checkout page needs to render: the bKash
// collection number and the advance the buyer must pay.
type CheckoutInfo struct {
	BkashNumber     string       `json:"bkash_number"`
	AdvanceMode     string       `json:"advance_mode"`
	MinPercent      int          `json:"min_percent,omitempty"`
	Percent         int          `json:"percent,omitempty"`
	CartTotal       models.Money `json:"cart_total"`
	RequiredAdvance models.Money `json:"required_advance"`
}

// GetCheckoutInfo resolves the payment instructions for a cart total.
func (s *OrderService) GetCheckoutInfo(cartTotal models.Money) (*CheckoutInfo, error) {
	bkashNumber, err := s.settingService.GetBkashNumber()
	if err != nil {
		return nil, err
	}
	policy, err := s.settingService.GetAdvancePolicy()
	if err != nil {
		return nil, err
	}

	info := &CheckoutInfo{
		BkashNumber: bkashNumber,
		AdvanceMode: policy.Mode,
		CartTotal:   cartTotal,
	}
	switch policy.Mode {
	case constants.AdvanceModeAuto:
		info.Percent = policy.Percent
		info.RequiredAdvance = models.NewMoneyFromDecimal(percentOf(cartTotal.Decimal, policy.Percent))
	default:
		info.MinPercent = policy.MinPercent
		info.RequiredAdvance = models.NewMoneyFromDecimal(percentOf(cartTotal.Decimal, policy.MinPercent))
	}
	return info, nil
}

// CreateOrderInput carries the checkout form.
type CreateOrderInput struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	CustomerAddress string
	TransactionID   string
	AdvanceAmount   models.Money
}

// CreateOrder places an order from the user's cart. Every line is
// re-validated against the live catalog before anything is written,
// then the order, its lines and the cart clear commit atomically.
func (s *OrderService) CreateOrder(userID uint, input CreateOrderInput) (*models.Order, error) {
	name := strings.TrimSpace(input.CustomerName)
	phone := strings.TrimSpace(input.CustomerPhone)
	address := strings.TrimSpace(input.CustomerAddress)
	if name == "" || phone == "" || address == "" {
		return nil, ErrShippingInfoEmpty
	}
	email, err := normalizeEmail(input.CustomerEmail)
	if err != nil {
		return nil, err
	}
	transactionID := strings.TrimSpace(input.TransactionID)
	if transactionID == "" {
		return nil, ErrTransactionIDEmpty
	}

	cartRows, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(cartRows) == 0 {
		return nil, ErrCartEmpty
	}

	itemIDs := make([]uint, 0, len(cartRows))
	for _, row := range cartRows {
		itemIDs = append(itemIDs, row.ItemID)
	}
	items, err := s.itemRepo.GetByIDs(itemIDs)
	if err != nil {
		return nil, err
	}
	itemsByID := make(map[uint]*models.Item, len(items))
	for i := range items {
		itemsByID[items[i].ID] = &items[i]
	}

	now := time.Now()
	total := decimal.Zero
	orderItems := make([]models.OrderItem, 0, len(cartRows))
	for _, row := range cartRows {
		item, ok := itemsByID[row.ItemID]
		if !ok {
			return nil, ErrItemNotAvailable
		}
		if !item.InStock {
			return nil, ErrItemNotAvailable
		}
		if item.Product == nil || item.Product.Status != constants.ProductStatusApproved {
			return nil, ErrItemNotAvailable
		}
		if row.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		if row.Quantity < item.MinimumQuantity {
			return nil, ErrBelowMinimumQty
		}

		lineTotal := item.Price.Mul(decimal.NewFromInt(int64(row.Quantity)))
		total = total.Add(lineTotal)
		orderItems = append(orderItems, models.OrderItem{
			ItemID:     item.ID,
			ItemName:   item.Name,
			UnitPrice:  item.Price,
			Quantity:   row.Quantity,
			TotalPrice: models.NewMoneyFromDecimal(lineTotal),
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}

	advance, err := s.resolveAdvance(total, input.AdvanceAmount)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		OrderNo:         generateOrderNo(),
		UserID:          userID,
		CustomerName:    name,
		CustomerEmail:   email,
		CustomerPhone:   phone,
		CustomerAddress: address,
		TotalAmount:     models.NewMoneyFromDecimal(total),
		AdvanceAmount:   advance,
		TransactionID:   transactionID,
		Status:          constants.OrderStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)
		cartRepo := s.cartRepo.WithTx(tx)
		if err := orderRepo.Create(order, orderItems); err != nil {
			return err
		}
		return cartRepo.ClearByUser(userID)
	})
	if err != nil {
		return nil, err
	}

	if err := s.queueClient.EnqueueOrderConfirmationEmail(queue.OrderConfirmationEmailPayload{OrderID: order.ID}); err != nil {
		logger.Warnw("order_confirmation_enqueue_failed",
			"order_no", order.OrderNo,
			"error", err,
		)
	}

	return order, nil
}

// resolveAdvance applies the advance policy to the order total.
func (s *OrderService) resolveAdvance(total decimal.Decimal, entered models.Money) (models.Money, error) {
	policy, err := s.settingService.GetAdvancePolicy()
	if err != nil {
		return models.Money{}, err
	}

	if policy.Mode == constants.AdvanceModeAuto {
		return models.NewMoneyFromDecimal(percentOf(total, policy.Percent)), nil
	}

	advance := entered.Decimal
	required := percentOf(total, policy.MinPercent)
	if advance.Cmp(required) < 0 {
		return models.Money{}, ErrAdvanceTooLow
	}
	if advance.Cmp(total) > 0 {
		return models.Money{}, ErrAdvanceExceedsTotal
	}
	return models.NewMoneyFromDecimal(advance), nil
}

// GetForUser returns one of the user's orders with its lines.
func (s *OrderService) GetForUser(id, userID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByIDAndUser(id, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListForUser returns the user's order history.
func (s *OrderService) ListForUser(userID uint, page, pageSize int, status string) ([]models.Order, int64, error) {
	return s.orderRepo.ListByUser(repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		UserID:   userID,
		Status:   strings.TrimSpace(status),
	})
}

// CancelForUser cancels one of the user's own orders. Only pending and
// confirmed orders can be cancelled.
func (s *OrderService) CancelForUser(id, userID uint) (*models.Order, error) {
	order, err := s.GetForUser(id, userID)
	if err != nil {
		return nil, err
	}
	return s.transition(order, constants.OrderStatusCancelled)
}

// ListForWholesaler returns orders containing the wholesaler's items.
func (s *OrderService) ListForWholesaler(wholesalerID uint, page, pageSize int, status string) ([]models.Order, int64, error) {
	return s.orderRepo.ListForWholesaler(repository.OrderListFilter{
		Page:         page,
		PageSize:     pageSize,
		WholesalerID: wholesalerID,
		Status:       strings.TrimSpace(status),
	})
}

// GetForWholesaler returns an order if it contains the wholesaler's items.
func (s *OrderService) GetForWholesaler(id, wholesalerID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	itemIDs := make([]uint, 0, len(order.Items))
	for _, line := range order.Items {
		itemIDs = append(itemIDs, line.ItemID)
	}
	items, err := s.itemRepo.GetByIDs(itemIDs)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if item.Product != nil && item.Product.WholesalerID != nil && *item.Product.WholesalerID == wholesalerID {
			return order, nil
		}
	}
	return nil, ErrOrderNotFound
}

// ListAdmin returns orders for the moderation panel.
func (s *OrderService) ListAdmin(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.ListAdmin(filter)
}

// GetByID fetches an order with its lines.
func (s *OrderService) GetByID(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// UpdateStatus moves an order through its lifecycle. Invalid
// transitions are rejected, valid ones notify the buyer by email.
func (s *OrderService) UpdateStatus(id uint, status string) (*models.Order, error) {
	order, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	return s.transition(order, strings.ToLower(strings.TrimSpace(status)))
}

func (s *OrderService) transition(order *models.Order, to string) (*models.Order, error) {
	if !CanTransitionOrderStatus(order.Status, to) {
		return nil, ErrOrderStatusInvalid
	}

	updates := map[string]interface{}{}
	now := time.Now()
	if to == constants.OrderStatusCancelled {
		updates["cancelled_at"] = now
	}
	if err := s.orderRepo.UpdateStatus(order.ID, to, updates); err != nil {
		return nil, err
	}
	order.Status = to
	order.UpdatedAt = now
	if to == constants.OrderStatusCancelled {
		order.CancelledAt = &now
	}

	if err := s.queueClient.EnqueueOrderStatusEmail(queue.OrderStatusEmailPayload{
		OrderID: order.ID,
		Status:  to,
	}); err != nil {
		logger.Warnw("order_status_enqueue_failed",
			"order_no", order.OrderNo,
			"status", to,
			"error", err,
		)
	}

	return order, nil
}

// percentOf returns pct percent of amount at 2 decimal places.
func percentOf(amount decimal.Decimal, pct int) decimal.Decimal {
	return amount.Mul(decimal.NewFromInt(int64(pct))).Div(decimal.NewFromInt(100)).Round(2)
}

// generateOrderNo builds an order number from the current timestamp
// plus six random digits.
func generateOrderNo() string {
	return constants.OrderNoPrefix + time.Now().Format("20060102150405") + randNumeric(6)
}

func randNumeric(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			b.WriteString("0")
			continue
		}
		b.WriteString(fmt.Sprintf("%d", num.Int64()))
	}
	return b.String()
}
