package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/paikari-bazar/internal/config"
	"github.com/paikari-bazar/internal/constants"
	"github.com/paikari-bazar/internal/models"
	"github.com/paikari-bazar/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type checkoutFixture struct {
	db     *gorm.DB
	svc    *OrderService
	userID uint
	itemA  models.Item
	itemB  models.Item
}

func newCheckoutFixture(t *testing.T, advance config.AdvanceConfig) *checkoutFixture {
	t.Helper()

	dsn := fmt.Sprintf("file:order_service_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Category{}, &models.Product{}, &models.Item{},
		&models.CartItem{}, &models.Order{}, &models.OrderItem{},
		&models.Setting{}, &models.User{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db

	now := time.Now()
	wholesalerID := uint(77)
	category := models.Category{Name: "Rice", Section: constants.CategorySectionLocal, CreatedAt: now, UpdatedAt: now}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	product := models.Product{
		CategoryID:   category.ID,
		WholesalerID: &wholesalerID,
		Name:         "Miniket Rice",
		Status:       constants.ProductStatusApproved,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	itemA := models.Item{
		ProductID:       product.ID,
		Name:            "Miniket 25kg Sack",
		Price:           models.NewMoneyFromDecimal(decimal.NewFromInt(100)),
		MinimumQuantity: 5,
		InStock:         true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	itemB := models.Item{
		ProductID:       product.ID,
		Name:            "Miniket 10kg Sack",
		Price:           models.NewMoneyFromDecimal(decimal.NewFromInt(50)),
		MinimumQuantity: 2,
		InStock:         true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := db.Create(&itemA).Error; err != nil {
		t.Fatalf("create item failed: %v", err)
	}
	if err := db.Create(&itemB).Error; err != nil {
		t.Fatalf("create item failed: %v", err)
	}

	userID := uint(11)
	cartRows := []models.CartItem{
		{UserID: userID, ItemID: itemA.ID, Quantity: 6, CreatedAt: now, UpdatedAt: now},
		{UserID: userID, ItemID: itemB.ID, Quantity: 8, CreatedAt: now, UpdatedAt: now},
	}
	for i := range cartRows {
		if err := db.Create(&cartRows[i]).Error; err != nil {
			t.Fatalf("create cart row failed: %v", err)
		}
	}

	cfg := &config.Config{}
	cfg.Payment.Advance = advance
	settingService := NewSettingService(cfg, repository.NewSettingRepository(db))

	svc := NewOrderService(
		cfg,
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		repository.NewItemRepository(db),
		settingService,
		nil,
	)

	return &checkoutFixture{db: db, svc: svc, userID: userID, itemA: itemA, itemB: itemB}
}

func enteredAdvancePolicy() config.AdvanceConfig {
	return config.AdvanceConfig{Mode: constants.AdvanceModeEntered, MinPercent: 30, Percent: 5}
}

func validCheckoutInput(advance string) CreateOrderInput {
	amount, _ := decimal.NewFromString(advance)
	return CreateOrderInput{
		CustomerName:    "Rahim Uddin",
		CustomerEmail:   "rahim@example.com",
		CustomerPhone:   "01712345678",
		CustomerAddress: "12 Station Road, Bogra",
		TransactionID:   "BKA12345XY",
		AdvanceAmount:   models.NewMoneyFromDecimal(amount),
	}
}

func TestCreateOrderComputesTotalsAndClearsCart(t *testing.T) {
	f := newCheckoutFixture(t, enteredAdvancePolicy())

	// 6 x 100 + 8 x 50 = 1000.00
	order, err := f.svc.CreateOrder(f.userID, validCheckoutInput("300"))
	if err != nil {
		t.Fatalf("CreateOrder error: %v", err)
	}
	if order.TotalAmount.String() != "1000.00" {
		t.Fatalf("expected total 1000.00, got %s", order.TotalAmount.String())
	}
	if order.AdvanceAmount.String() != "300.00" {
		t.Fatalf("expected advance 300.00, got %s", order.AdvanceAmount.String())
	}
	if order.Status != constants.OrderStatusPending {
		t.Fatalf("expected pending order, got %s", order.Status)
	}
	if len(order.OrderNo) == 0 || order.OrderNo[:2] != constants.OrderNoPrefix {
		t.Fatalf("unexpected order no: %s", order.OrderNo)
	}

	var lineCount int64
	if err := f.db.Model(&models.OrderItem{}).Where("order_id = ?", order.ID).Count(&lineCount).Error; err != nil {
		t.Fatalf("count order items failed: %v", err)
	}
	if lineCount != 2 {
		t.Fatalf("expected 2 order lines, got %d", lineCount)
	}

	var cartCount int64
	if err := f.db.Model(&models.CartItem{}).Where("user_id = ?", f.userID).Count(&cartCount).Error; err != nil {
		t.Fatalf("count cart failed: %v", err)
	}
	if cartCount != 0 {
		t.Fatalf("expected empty cart after checkout, got %d rows", cartCount)
	}
}

func TestCreateOrderRejectsLowAdvance(t *testing.T) {
	f := newCheckoutFixture(t, enteredAdvancePolicy())

	// 30% of 1000.00 is 300.00, one poisha short must fail.
	_, err := f.svc.CreateOrder(f.userID, validCheckoutInput("299.99"))
	if !errors.Is(err, ErrAdvanceTooLow) {
		t.Fatalf("expected advance too low, got: %v", err)
	}

	var orderCount int64
	if err := f.db.Model(&models.Order{}).Count(&orderCount).Error; err != nil {
		t.Fatalf("count orders failed: %v", err)
	}
	if orderCount != 0 {
		t.Fatalf("expected no orders after rejected checkout, got %d", orderCount)
	}
	var cartCount int64
	if err := f.db.Model(&models.CartItem{}).Where("user_id = ?", f.userID).Count(&cartCount).Error; err != nil {
		t.Fatalf("count cart failed: %v", err)
	}
	if cartCount != 2 {
		t.Fatalf("expected cart untouched after rejected checkout, got %d rows", cartCount)
	}
}

func TestCreateOrderRejectsAdvanceOverTotal(t *testing.T) {
	f := newCheckoutFixture(t, enteredAdvancePolicy())

	_, err := f.svc.CreateOrder(f.userID, validCheckoutInput("1000.01"))
	if !errors.Is(err, ErrAdvanceExceedsTotal) {
		t.Fatalf("expected advance exceeds total, got: %v", err)
	}
}

func TestCreateOrderAutoAdvanceIgnoresEnteredAmount(t *testing.T) {
	f := newCheckoutFixture(t, config.AdvanceConfig{Mode: constants.AdvanceModeAuto, MinPercent: 30, Percent: 5})

	order, err := f.svc.CreateOrder(f.userID, validCheckoutInput("1"))
	if err != nil {
		t.Fatalf("CreateOrder error: %v", err)
	}
	if order.AdvanceAmount.String() != "50.00" {
		t.Fatalf("expected auto advance 50.00, got %s", order.AdvanceAmount.String())
	}
}

func TestCreateOrderRejectsBelowMinimumQuantity(t *testing.T) {
	f := newCheckoutFixture(t, enteredAdvancePolicy())

	if err := f.db.Model(&models.CartItem{}).
		Where("user_id = ? AND item_id = ?", f.userID, f.itemA.ID).
		Update("quantity", 4).Error; err != nil {
		t.Fatalf("shrink cart quantity failed: %v", err)
	}

	_, err := f.svc.CreateOrder(f.userID, validCheckoutInput("300"))
	if !errors.Is(err, ErrBelowMinimumQty) {
		t.Fatalf("expected below minimum quantity, got: %v", err)
	}

	var orderCount int64
	if err := f.db.Model(&models.Order{}).Count(&orderCount).Error; err != nil {
		t.Fatalf("count orders failed: %v", err)
	}
	if orderCount != 0 {
		t.Fatalf("expected no orders, got %d", orderCount)
	}
}

func TestCreateOrderRejectsUnapprovedProduct(t *testing.T) {
	f := newCheckoutFixture(t, enteredAdvancePolicy())

	if err := f.db.Model(&models.Product{}).
		Where("id = ?", f.itemA.ProductID).
		Update("status", constants.ProductStatusPending).Error; err != nil {
		t.Fatalf("demote product failed: %v", err)
	}

	_, err := f.svc.CreateOrder(f.userID, validCheckoutInput("300"))
	if !errors.Is(err, ErrItemNotAvailable) {
		t.Fatalf("expected item not available, got: %v", err)
	}
}

func TestCreateOrderRejectsEmptyCart(t *testing.T) {
	f := newCheckoutFixture(t, enteredAdvancePolicy())

	if err := f.db.Where("user_id = ?", f.userID).Delete(&models.CartItem{}).Error; err != nil {
		t.Fatalf("clear cart failed: %v", err)
	}

	_, err := f.svc.CreateOrder(f.userID, validCheckoutInput("300"))
	if !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("expected empty cart error, got: %v", err)
	}
}

func TestCreateOrderRequiresTransactionID(t *testing.T) {
	f := newCheckoutFixture(t, enteredAdvancePolicy())

	input := validCheckoutInput("300")
	input.TransactionID = "   "
	_, err := f.svc.CreateOrder(f.userID, input)
	if !errors.Is(err, ErrTransactionIDEmpty) {
		t.Fatalf("expected missing transaction id error, got: %v", err)
	}
}

func TestOrderStatusTransitions(t *testing.T) {
	cases := []struct {
		from    string
		to      string
		allowed bool
	}{
		{constants.OrderStatusPending, constants.OrderStatusConfirmed, true},
		{constants.OrderStatusPending, constants.OrderStatusCancelled, true},
		{constants.OrderStatusPending, constants.OrderStatusCompleted, false},
		{constants.OrderStatusConfirmed, constants.OrderStatusProcessing, true},
		{constants.OrderStatusConfirmed, constants.OrderStatusCancelled, true},
		{constants.OrderStatusProcessing, constants.OrderStatusCompleted, true},
		{constants.OrderStatusProcessing, constants.OrderStatusCancelled, false},
		{constants.OrderStatusCompleted, constants.OrderStatusCancelled, false},
		{constants.OrderStatusCancelled, constants.OrderStatusPending, false},
	}
	for _, c := range cases {
		if got := CanTransitionOrderStatus(c.from, c.to); got != c.allowed {
			t.Fatalf("transition %s -> %s: expected %v, got %v", c.from, c.to, c.allowed, got)
		}
	}
}

func TestUpdateStatusFollowsLifecycle(t *testing.T) {
	f := newCheckoutFixture(t, enteredAdvancePolicy())

	order, err := f.svc.CreateOrder(f.userID, validCheckoutInput("300"))
	if err != nil {
		t.Fatalf("CreateOrder error: %v", err)
	}

	if _, err := f.svc.UpdateStatus(order.ID, constants.OrderStatusCompleted); !errors.Is(err, ErrOrderStatusInvalid) {
		t.Fatalf("expected invalid transition pending -> completed, got: %v", err)
	}

	updated, err := f.svc.UpdateStatus(order.ID, constants.OrderStatusConfirmed)
	if err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if updated.Status != constants.OrderStatusConfirmed {
		t.Fatalf("expected confirmed, got %s", updated.Status)
	}

	if _, err := f.svc.UpdateStatus(order.ID, constants.OrderStatusProcessing); err != nil {
		t.Fatalf("processing failed: %v", err)
	}
	if _, err := f.svc.CancelForUser(order.ID, f.userID); !errors.Is(err, ErrOrderStatusInvalid) {
		t.Fatalf("expected cancel rejected once processing, got: %v", err)
	}
	if _, err := f.svc.UpdateStatus(order.ID, constants.OrderStatusCompleted); err != nil {
		t.Fatalf("complete failed: %v", err)
	}
}

func TestCancelForUserSetsCancelledAt(t *testing.T) {
	f := newCheckoutFixture(t, enteredAdvancePolicy())

	order, err := f.svc.CreateOrder(f.userID, validCheckoutInput("300"))
	if err != nil {
		t.Fatalf("CreateOrder error: %v", err)
	}

	cancelled, err := f.svc.CancelForUser(order.ID, f.userID)
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if cancelled.Status != constants.OrderStatusCancelled {
		t.Fatalf("expected cancelled, got %s", cancelled.Status)
	}
	if cancelled.CancelledAt == nil {
		t.Fatalf("expected cancelled_at to be set")
	}

	if _, err := f.svc.CancelForUser(order.ID, f.userID+1); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected not found for foreign user, got: %v", err)
	}
}

func TestGetCheckoutInfo(t *testing.T) {
	f := newCheckoutFixture(t, enteredAdvancePolicy())

	info, err := f.svc.GetCheckoutInfo(models.NewMoneyFromDecimal(decimal.NewFromInt(1000)))
	if err != nil {
		t.Fatalf("GetCheckoutInfo error: %v", err)
	}
	if info.AdvanceMode != constants.AdvanceModeEntered {
		t.Fatalf("expected entered mode, got %s", info.AdvanceMode)
	}
	if info.RequiredAdvance.String() != "300.00" {
		t.Fatalf("expected required advance 300.00, got %s", info.RequiredAdvance.String())
	}
}
