package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/paikari-bazar/internal/config"
	"github.com/paikari-bazar/internal/constants"
	"github.com/paikari-bazar/internal/models"
	"github.com/paikari-bazar/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newSettingFixture(t *testing.T) *SettingService {
	t.Helper()

	dsn := fmt.Sprintf("file:setting_service_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Setting{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	cfg := &config.Config{}
	cfg.Payment.BkashNumber = "01700000000"
	cfg.Payment.Advance = config.AdvanceConfig{Mode: constants.AdvanceModeEntered, MinPercent: 30, Percent: 5}
	return NewSettingService(cfg, repository.NewSettingRepository(db))
}

func TestBkashNumberFallsBackToConfig(t *testing.T) {
	svc := newSettingFixture(t)

	number, err := svc.GetBkashNumber()
	if err != nil {
		t.Fatalf("GetBkashNumber error: %v", err)
	}
	if number != "01700000000" {
		t.Fatalf("expected config fallback, got %s", number)
	}

	if err := svc.Set(constants.SettingKeyBkashNumber, "01911111111"); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	number, err = svc.GetBkashNumber()
	if err != nil {
		t.Fatalf("GetBkashNumber error: %v", err)
	}
	if number != "01911111111" {
		t.Fatalf("expected stored number, got %s", number)
	}
}

func TestAdvancePolicyOverrides(t *testing.T) {
	svc := newSettingFixture(t)

	policy, err := svc.GetAdvancePolicy()
	if err != nil {
		t.Fatalf("GetAdvancePolicy error: %v", err)
	}
	if policy.Mode != constants.AdvanceModeEntered || policy.MinPercent != 30 {
		t.Fatalf("unexpected default policy: %+v", policy)
	}

	if err := svc.Set(constants.SettingKeyAdvanceMode, constants.AdvanceModeAuto); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if err := svc.Set(constants.SettingKeyAdvancePercent, "10"); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	policy, err = svc.GetAdvancePolicy()
	if err != nil {
		t.Fatalf("GetAdvancePolicy error: %v", err)
	}
	if policy.Mode != constants.AdvanceModeAuto || policy.Percent != 10 {
		t.Fatalf("unexpected overridden policy: %+v", policy)
	}
}

func TestAdvancePolicyIgnoresGarbageOverrides(t *testing.T) {
	svc := newSettingFixture(t)

	if err := svc.Set(constants.SettingKeyAdvanceMode, "whatever"); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if err := svc.Set(constants.SettingKeyAdvanceMinPercent, "150"); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	policy, err := svc.GetAdvancePolicy()
	if err != nil {
		t.Fatalf("GetAdvancePolicy error: %v", err)
	}
	if policy.Mode != constants.AdvanceModeEntered || policy.MinPercent != 30 {
		t.Fatalf("expected defaults kept, got: %+v", policy)
	}
}
