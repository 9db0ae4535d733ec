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
	"gorm.io/gorm"
)

func newProductFixture(t *testing.T) (*gorm.DB, *ProductService, models.Category) {
	t.Helper()

	dsn := fmt.Sprintf("file:product_service_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}, &models.Item{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	now := time.Now()
	category := models.Category{Name: "Textiles", Section: constants.CategorySectionChinese, CreatedAt: now, UpdatedAt: now}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}

	svc := NewProductService(repository.NewProductRepository(db), repository.NewCategoryRepository(db))
	return db, svc, category
}

func TestCreateProductStartsPending(t *testing.T) {
	_, svc, category := newProductFixture(t)

	product, err := svc.Create(9, CreateProductInput{CategoryID: category.ID, Name: "Cotton Fabric Roll"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if product.Status != constants.ProductStatusPending {
		t.Fatalf("expected pending status, got %s", product.Status)
	}
	if product.WholesalerID == nil || *product.WholesalerID != 9 {
		t.Fatalf("expected wholesaler 9, got %v", product.WholesalerID)
	}
}

func TestCreateProductRequiresCategory(t *testing.T) {
	_, svc, _ := newProductFixture(t)

	_, err := svc.Create(9, CreateProductInput{CategoryID: 999, Name: "Orphan"})
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected category not found, got: %v", err)
	}
}

func TestApproveAndRejectProduct(t *testing.T) {
	_, svc, category := newProductFixture(t)

	product, err := svc.Create(9, CreateProductInput{CategoryID: category.ID, Name: "Cotton Fabric Roll"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	approved, err := svc.Approve(product.ID)
	if err != nil {
		t.Fatalf("Approve error: %v", err)
	}
	if approved.Status != constants.ProductStatusApproved {
		t.Fatalf("expected approved, got %s", approved.Status)
	}

	rejected, err := svc.Reject(product.ID)
	if err != nil {
		t.Fatalf("Reject error: %v", err)
	}
	if rejected.Status != constants.ProductStatusRejected {
		t.Fatalf("expected rejected, got %s", rejected.Status)
	}
}

func TestUpdateApprovedProductResetsToPending(t *testing.T) {
	_, svc, category := newProductFixture(t)

	product, err := svc.Create(9, CreateProductInput{CategoryID: category.ID, Name: "Cotton Fabric Roll"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if _, err := svc.Approve(product.ID); err != nil {
		t.Fatalf("Approve error: %v", err)
	}

	name := "Cotton Fabric Roll 50m"
	updated, err := svc.Update(product.ID, 9, UpdateProductInput{Name: &name})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Status != constants.ProductStatusPending {
		t.Fatalf("expected edit to reset status to pending, got %s", updated.Status)
	}
	if updated.Name != name {
		t.Fatalf("expected renamed product, got %s", updated.Name)
	}
}

func TestWholesalerCannotTouchForeignProduct(t *testing.T) {
	_, svc, category := newProductFixture(t)

	product, err := svc.Create(9, CreateProductInput{CategoryID: category.ID, Name: "Cotton Fabric Roll"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	name := "Hijacked"
	if _, err := svc.Update(product.ID, 10, UpdateProductInput{Name: &name}); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected not found for foreign wholesaler, got: %v", err)
	}
	if err := svc.DeleteForWholesaler(product.ID, 10); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected not found for foreign wholesaler, got: %v", err)
	}
}

func TestListPublicOnlyShowsApproved(t *testing.T) {
	_, svc, category := newProductFixture(t)

	pending, err := svc.Create(9, CreateProductInput{CategoryID: category.ID, Name: "Pending Fabric"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	approved, err := svc.Create(9, CreateProductInput{CategoryID: category.ID, Name: "Approved Fabric"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if _, err := svc.Approve(approved.ID); err != nil {
		t.Fatalf("Approve error: %v", err)
	}

	products, total, err := svc.ListPublic(1, 20, 0, "")
	if err != nil {
		t.Fatalf("ListPublic error: %v", err)
	}
	if total != 1 || len(products) != 1 {
		t.Fatalf("expected exactly one public product, got %d", total)
	}
	if products[0].ID != approved.ID {
		t.Fatalf("expected approved product, got id %d", products[0].ID)
	}

	if _, err := svc.GetPublic(pending.ID); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected pending product hidden, got: %v", err)
	}
}
