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

func newSuspensionFixture(t *testing.T) (*gorm.DB, *SuspensionService, models.User) {
	t.Helper()

	dsn := fmt.Sprintf("file:suspension_service_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.WholesalerProfile{}, &models.Suspension{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	now := time.Now()
	user := models.User{
		Email:        "buyer@example.com",
		PasswordHash: "x",
		Role:         constants.RoleCustomer,
		Status:       constants.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}

	svc := NewSuspensionService(repository.NewSuspensionRepository(db), repository.NewUserRepository(db))
	return db, svc, user
}

func TestSuspendRequiresReasonAndExpiry(t *testing.T) {
	_, svc, user := newSuspensionFixture(t)

	if _, err := svc.Suspend(SuspendInput{UserID: user.ID, Reason: "  ", IsPermanent: true, SuspendedBy: 1}); !errors.Is(err, ErrSuspensionInvalid) {
		t.Fatalf("expected invalid suspension for blank reason, got: %v", err)
	}

	past := time.Now().Add(-time.Hour)
	if _, err := svc.Suspend(SuspendInput{UserID: user.ID, Reason: "spam", SuspendedUntil: &past, SuspendedBy: 1}); !errors.Is(err, ErrSuspensionInvalid) {
		t.Fatalf("expected invalid suspension for past expiry, got: %v", err)
	}

	if _, err := svc.Suspend(SuspendInput{UserID: user.ID, Reason: "spam", SuspendedBy: 1}); !errors.Is(err, ErrSuspensionInvalid) {
		t.Fatalf("expected invalid suspension for missing expiry, got: %v", err)
	}
}

func TestSuspendAndLift(t *testing.T) {
	_, svc, user := newSuspensionFixture(t)

	until := time.Now().Add(72 * time.Hour)
	suspension, err := svc.Suspend(SuspendInput{
		UserID:         user.ID,
		Reason:         "abusive chat messages",
		SuspendedUntil: &until,
		SuspendedBy:    1,
	})
	if err != nil {
		t.Fatalf("Suspend error: %v", err)
	}

	active, err := svc.GetActiveForUser(user.ID)
	if err != nil {
		t.Fatalf("GetActiveForUser error: %v", err)
	}
	if active == nil || active.ID != suspension.ID {
		t.Fatalf("expected active suspension %d, got %+v", suspension.ID, active)
	}

	if err := svc.Lift(suspension.ID); err != nil {
		t.Fatalf("Lift error: %v", err)
	}
	active, err = svc.GetActiveForUser(user.ID)
	if err != nil {
		t.Fatalf("GetActiveForUser error: %v", err)
	}
	if active != nil {
		t.Fatalf("expected no active suspension after lift, got %+v", active)
	}

	if err := svc.Lift(suspension.ID); !errors.Is(err, ErrSuspensionNotFound) {
		t.Fatalf("expected not found on double lift, got: %v", err)
	}
}

func TestSuspendUnknownUser(t *testing.T) {
	_, svc, _ := newSuspensionFixture(t)

	if _, err := svc.Suspend(SuspendInput{UserID: 999, Reason: "spam", IsPermanent: true, SuspendedBy: 1}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found for unknown user, got: %v", err)
	}
}

func TestListActiveOnly(t *testing.T) {
	db, svc, user := newSuspensionFixture(t)

	past := time.Now().Add(-time.Hour)
	expired := models.Suspension{UserID: user.ID, Reason: "old", SuspendedUntil: &past, SuspendedBy: 1, CreatedAt: time.Now().Add(-48 * time.Hour)}
	if err := db.Create(&expired).Error; err != nil {
		t.Fatalf("create expired suspension failed: %v", err)
	}
	if _, err := svc.Suspend(SuspendInput{UserID: user.ID, Reason: "fresh", IsPermanent: true, SuspendedBy: 1}); err != nil {
		t.Fatalf("Suspend error: %v", err)
	}

	all, total, err := svc.List(1, 20, user.ID, false)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if total != 2 || len(all) != 2 {
		t.Fatalf("expected 2 suspensions, got %d", total)
	}

	active, total, err := svc.List(1, 20, user.ID, true)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if total != 1 || len(active) != 1 {
		t.Fatalf("expected 1 active suspension, got %d", total)
	}
	if active[0].Reason != "fresh" {
		t.Fatalf("expected the permanent suspension, got %s", active[0].Reason)
	}
}
