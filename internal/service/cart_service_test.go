package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/paikari-bazar/internal/constants"
	"github.com/paikari-bazar/internal/models"
	"github.com/paikari-bazar/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newCartFixture(t *testing.T) (*gorm.DB, *CartService, models.Item) {
	t.Helper()

	dsn := fmt.Sprintf("file:cart_service_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}, &models.Item{}, &models.CartItem{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	now := time.Now()
	category := models.Category{Name: "Spices", Section: constants.CategorySectionLocal, CreatedAt: now, UpdatedAt: now}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	product := models.Product{
		CategoryID: category.ID,
		Name:       "Turmeric Powder",
		Status:     constants.ProductStatusApproved,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	item := models.Item{
		ProductID:       product.ID,
		Name:            "Turmeric 1kg Pack",
		Price:           models.NewMoneyFromDecimal(decimal.NewFromInt(120)),
		MinimumQuantity: 10,
		InStock:         true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("create item failed: %v", err)
	}

	svc := NewCartService(repository.NewCartRepository(db), repository.NewItemRepository(db))
	return db, svc, item
}

func TestAddItemMergesQuantities(t *testing.T) {
	db, svc, item := newCartFixture(t)
	userID := uint(5)

	if err := svc.AddItem(userID, item.ID, 10); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if err := svc.AddItem(userID, item.ID, 7); err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	var rows []models.CartItem
	if err := db.Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		t.Fatalf("load cart failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected one merged cart row, got %d", len(rows))
	}
	if rows[0].Quantity != 17 {
		t.Fatalf("expected merged quantity 17, got %d", rows[0].Quantity)
	}
}

func TestAddItemEnforcesMinimumQuantity(t *testing.T) {
	_, svc, item := newCartFixture(t)

	if err := svc.AddItem(5, item.ID, 9); !errors.Is(err, ErrBelowMinimumQty) {
		t.Fatalf("expected below minimum error, got: %v", err)
	}
	if err := svc.AddItem(5, item.ID, 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected invalid quantity error, got: %v", err)
	}
}

func TestAddItemRejectsOutOfStock(t *testing.T) {
	db, svc, item := newCartFixture(t)

	if err := db.Model(&models.Item{}).Where("id = ?", item.ID).Update("in_stock", false).Error; err != nil {
		t.Fatalf("mark out of stock failed: %v", err)
	}
	if err := svc.AddItem(5, item.ID, 10); !errors.Is(err, ErrItemNotAvailable) {
		t.Fatalf("expected item not available, got: %v", err)
	}
}

func TestSetQuantityRequiresExistingLine(t *testing.T) {
	_, svc, item := newCartFixture(t)

	if err := svc.SetQuantity(5, item.ID, 12); !errors.Is(err, ErrCartItemAbsent) {
		t.Fatalf("expected absent line error, got: %v", err)
	}
}

func TestGetCartPricesFromLiveItems(t *testing.T) {
	db, svc, item := newCartFixture(t)
	userID := uint(5)

	if err := svc.AddItem(userID, item.ID, 10); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	view, err := svc.GetCart(userID)
	if err != nil {
		t.Fatalf("GetCart error: %v", err)
	}
	if view.Total.String() != "1200.00" {
		t.Fatalf("expected total 1200.00, got %s", view.Total.String())
	}

	// A price change shows up on the next read, carts never snapshot.
	if err := db.Model(&models.Item{}).Where("id = ?", item.ID).Update("price", "130").Error; err != nil {
		t.Fatalf("reprice failed: %v", err)
	}
	view, err = svc.GetCart(userID)
	if err != nil {
		t.Fatalf("GetCart error: %v", err)
	}
	if view.Total.String() != "1300.00" {
		t.Fatalf("expected repriced total 1300.00, got %s", view.Total.String())
	}
}

func TestGetCartExcludesUnavailableLinesFromTotal(t *testing.T) {
	db, svc, item := newCartFixture(t)
	userID := uint(5)

	if err := svc.AddItem(userID, item.ID, 10); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := db.Model(&models.Product{}).Where("id = ?", item.ProductID).
		Update("status", constants.ProductStatusRejected).Error; err != nil {
		t.Fatalf("reject product failed: %v", err)
	}

	view, err := svc.GetCart(userID)
	if err != nil {
		t.Fatalf("GetCart error: %v", err)
	}
	if len(view.Lines) != 1 {
		t.Fatalf("expected line kept for display, got %d lines", len(view.Lines))
	}
	if view.Lines[0].Available {
		t.Fatalf("expected line flagged unavailable")
	}
	if view.Total.String() != "0.00" {
		t.Fatalf("expected total 0.00, got %s", view.Total.String())
	}
}

func TestRemoveItem(t *testing.T) {
	db, svc, item := newCartFixture(t)
	userID := uint(5)

	if err := svc.AddItem(userID, item.ID, 10); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.RemoveItem(userID, item.ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if err := svc.RemoveItem(userID, item.ID); err != nil {
		t.Fatalf("expected removing an absent line to be a no-op, got: %v", err)
	}

	var count int64
	if err := db.Model(&models.CartItem{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected empty cart, got %d rows", count)
	}
}
