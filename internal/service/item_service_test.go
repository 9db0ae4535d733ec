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

func newItemFixture(t *testing.T) (*gorm.DB, *ItemService, models.Product, models.Product) {
	t.Helper()

	dsn := fmt.Sprintf("file:item_service_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}, &models.Item{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	now := time.Now()
	category := models.Category{Name: "Electronics", Section: constants.CategorySectionChinese, CreatedAt: now, UpdatedAt: now}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}

	wholesalerID := uint(9)
	approved := models.Product{
		CategoryID:   category.ID,
		WholesalerID: &wholesalerID,
		Name:         "LED Bulbs",
		Status:       constants.ProductStatusApproved,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	pending := models.Product{
		CategoryID:   category.ID,
		WholesalerID: &wholesalerID,
		Name:         "LED Strips",
		Status:       constants.ProductStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := db.Create(&approved).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if err := db.Create(&pending).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	svc := NewItemService(repository.NewItemRepository(db), repository.NewProductRepository(db))
	return db, svc, approved, pending
}

func seedItem(t *testing.T, db *gorm.DB, productID uint, name string) models.Item {
	t.Helper()
	now := time.Now()
	item := models.Item{
		ProductID:       productID,
		Name:            name,
		Price:           models.NewMoneyFromDecimal(decimal.NewFromInt(40)),
		MinimumQuantity: 50,
		InStock:         true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("create item failed: %v", err)
	}
	return item
}

func TestSearchPublicIsCaseInsensitive(t *testing.T) {
	db, svc, approved, _ := newItemFixture(t)
	seedItem(t, db, approved.ID, "Warm White Bulb 9W")

	items, total, err := svc.SearchPublic("warm WHITE", 1, 20)
	if err != nil {
		t.Fatalf("SearchPublic error: %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Fatalf("expected one match, got %d", total)
	}
}

func TestSearchPublicSkipsUnapprovedListings(t *testing.T) {
	db, svc, approved, pending := newItemFixture(t)
	seedItem(t, db, approved.ID, "Bulb A")
	seedItem(t, db, pending.ID, "Bulb B")

	items, total, err := svc.SearchPublic("bulb", 1, 20)
	if err != nil {
		t.Fatalf("SearchPublic error: %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Fatalf("expected only the approved listing's item, got %d", total)
	}
	if items[0].Name != "Bulb A" {
		t.Fatalf("expected Bulb A, got %s", items[0].Name)
	}
}

func TestSearchPublicEmptyQueryReturnsNothing(t *testing.T) {
	db, svc, approved, _ := newItemFixture(t)
	seedItem(t, db, approved.ID, "Bulb A")

	items, total, err := svc.SearchPublic("   ", 1, 20)
	if err != nil {
		t.Fatalf("SearchPublic error: %v", err)
	}
	if total != 0 || len(items) != 0 {
		t.Fatalf("expected no results for blank query, got %d", total)
	}
}

func TestGetPublicHidesItemsUnderPendingListings(t *testing.T) {
	db, svc, _, pending := newItemFixture(t)
	item := seedItem(t, db, pending.ID, "Strip 5m")

	if _, err := svc.GetPublic(item.ID); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected hidden item, got: %v", err)
	}
}

func TestCreateItemDefaultsMinimumQuantity(t *testing.T) {
	_, svc, approved, _ := newItemFixture(t)

	item, err := svc.Create(9, CreateItemInput{
		ProductID: approved.ID,
		Name:      "Bulb 12W",
		Price:     models.NewMoneyFromDecimal(decimal.NewFromInt(55)),
		InStock:   true,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if item.MinimumQuantity != 1 {
		t.Fatalf("expected minimum quantity 1, got %d", item.MinimumQuantity)
	}
}

func TestCreateItemRejectsForeignProduct(t *testing.T) {
	_, svc, approved, _ := newItemFixture(t)

	_, err := svc.Create(10, CreateItemInput{
		ProductID: approved.ID,
		Name:      "Bulb 12W",
		Price:     models.NewMoneyFromDecimal(decimal.NewFromInt(55)),
	})
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected not found for foreign wholesaler, got: %v", err)
	}
}

func TestAdminSetStockOverridesFlag(t *testing.T) {
	db, svc, approved, _ := newItemFixture(t)
	item := seedItem(t, db, approved.ID, "Bulb 9W")

	updated, err := svc.AdminSetStock(item.ID, false)
	if err != nil {
		t.Fatalf("AdminSetStock error: %v", err)
	}
	if updated.InStock {
		t.Fatalf("expected item out of stock")
	}

	var stored models.Item
	if err := db.First(&stored, item.ID).Error; err != nil {
		t.Fatalf("load item failed: %v", err)
	}
	if stored.InStock {
		t.Fatalf("expected stock flag persisted")
	}
}

func TestAdminGetReturnsItemsUnderPendingListings(t *testing.T) {
	db, svc, _, pending := newItemFixture(t)
	item := seedItem(t, db, pending.ID, "Strip 5m")

	got, err := svc.AdminGet(item.ID)
	if err != nil {
		t.Fatalf("AdminGet error: %v", err)
	}
	if got.ID != item.ID {
		t.Fatalf("expected item %d, got %d", item.ID, got.ID)
	}
}

func TestUpdateItemValidatesMinimumQuantity(t *testing.T) {
	db, svc, approved, _ := newItemFixture(t)
	item := seedItem(t, db, approved.ID, "Bulb 9W")

	zero := 0
	if _, err := svc.Update(item.ID, 9, UpdateItemInput{MinimumQuantity: &zero}); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected invalid quantity, got: %v", err)
	}

	hundred := 100
	updated, err := svc.Update(item.ID, 9, UpdateItemInput{MinimumQuantity: &hundred})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.MinimumQuantity != 100 {
		t.Fatalf("expected minimum 100, got %d", updated.MinimumQuantity)
	}
}
