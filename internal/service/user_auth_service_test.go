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
	"gorm.io/gorm"
)

func newAuthFixture(t *testing.T) (*gorm.DB, *UserAuthService) {
	t.Helper()

	dsn := fmt.Sprintf("file:user_auth_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.WholesalerProfile{}, &models.Suspension{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	cfg := &config.Config{}
	cfg.UserJWT.SecretKey = "test-secret"
	cfg.UserJWT.ExpireHours = 24
	cfg.Security.PasswordPolicy = config.PasswordPolicyConfig{MinLength: 8, RequireLower: true, RequireNumber: true}

	svc := NewUserAuthService(cfg, repository.NewUserRepository(db), repository.NewSuspensionRepository(db))
	return db, svc
}

func TestRegisterCreatesCustomer(t *testing.T) {
	_, svc := newAuthFixture(t)

	user, token, _, err := svc.Register("Buyer@Example.com", "secret1234", "Karim", "01811111111")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if user.Email != "buyer@example.com" {
		t.Fatalf("expected lowercased email, got %s", user.Email)
	}
	if user.Role != constants.RoleCustomer {
		t.Fatalf("expected customer role, got %s", user.Role)
	}
	if token == "" {
		t.Fatalf("expected a token")
	}

	claims, err := svc.ParseUserJWT(token)
	if err != nil {
		t.Fatalf("ParseUserJWT error: %v", err)
	}
	if claims.UserID != user.ID || claims.Role != constants.RoleCustomer {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	_, svc := newAuthFixture(t)

	if _, _, _, err := svc.Register("buyer@example.com", "secret1234", "", ""); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	_, _, _, err := svc.Register("BUYER@example.com", "secret1234", "", "")
	if !errors.Is(err, ErrEmailExists) {
		t.Fatalf("expected duplicate email error, got: %v", err)
	}
}

func TestRegisterEnforcesPasswordPolicy(t *testing.T) {
	_, svc := newAuthFixture(t)

	_, _, _, err := svc.Register("buyer@example.com", "short1", "", "")
	if !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected weak password error, got: %v", err)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	_, svc := newAuthFixture(t)

	if _, _, _, err := svc.Register("buyer@example.com", "secret1234", "", ""); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	_, _, _, err := svc.Login("buyer@example.com", "wrong-pass1")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got: %v", err)
	}
}

func TestLoginRejectsSuspendedUser(t *testing.T) {
	db, svc := newAuthFixture(t)

	user, _, _, err := svc.Register("buyer@example.com", "secret1234", "", "")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	until := time.Now().Add(24 * time.Hour)
	suspension := models.Suspension{
		UserID:         user.ID,
		Reason:         "repeated fake orders",
		SuspendedUntil: &until,
		SuspendedBy:    1,
		CreatedAt:      time.Now(),
	}
	if err := db.Create(&suspension).Error; err != nil {
		t.Fatalf("create suspension failed: %v", err)
	}

	_, _, _, err = svc.Login("buyer@example.com", "secret1234")
	if !errors.Is(err, ErrUserSuspended) {
		t.Fatalf("expected suspended error, got: %v", err)
	}
}

func TestLoginAllowsExpiredSuspension(t *testing.T) {
	db, svc := newAuthFixture(t)

	user, _, _, err := svc.Register("buyer@example.com", "secret1234", "", "")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	until := time.Now().Add(-1 * time.Hour)
	suspension := models.Suspension{
		UserID:         user.ID,
		Reason:         "cooldown",
		SuspendedUntil: &until,
		SuspendedBy:    1,
		CreatedAt:      time.Now().Add(-48 * time.Hour),
	}
	if err := db.Create(&suspension).Error; err != nil {
		t.Fatalf("create suspension failed: %v", err)
	}

	if _, _, _, err := svc.Login("buyer@example.com", "secret1234"); err != nil {
		t.Fatalf("expected login after expiry, got: %v", err)
	}
}

func TestLoginRejectsDisabledUser(t *testing.T) {
	db, svc := newAuthFixture(t)

	user, _, _, err := svc.Register("buyer@example.com", "secret1234", "", "")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if err := db.Model(&models.User{}).Where("id = ?", user.ID).
		Update("status", constants.UserStatusDisabled).Error; err != nil {
		t.Fatalf("disable user failed: %v", err)
	}

	_, _, _, err = svc.Login("buyer@example.com", "secret1234")
	if !errors.Is(err, ErrUserDisabled) {
		t.Fatalf("expected disabled error, got: %v", err)
	}
}

func TestChangePasswordBumpsTokenVersion(t *testing.T) {
	db, svc := newAuthFixture(t)

	user, _, _, err := svc.Register("buyer@example.com", "secret1234", "", "")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if err := svc.ChangePassword(user.ID, "wrong1234", "another1234"); !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("expected invalid password, got: %v", err)
	}
	if err := svc.ChangePassword(user.ID, "secret1234", "another1234"); err != nil {
		t.Fatalf("change password failed: %v", err)
	}

	var reloaded models.User
	if err := db.First(&reloaded, user.ID).Error; err != nil {
		t.Fatalf("reload user failed: %v", err)
	}
	if reloaded.TokenVersion != user.TokenVersion+1 {
		t.Fatalf("expected token version bump, got %d", reloaded.TokenVersion)
	}
	if reloaded.TokenInvalidBefore == nil {
		t.Fatalf("expected token invalid before to be set")
	}

	if _, _, _, err := svc.Login("buyer@example.com", "another1234"); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}
}

func TestLogoutBumpsTokenVersion(t *testing.T) {
	db, svc := newAuthFixture(t)

	user, _, _, err := svc.Register("buyer@example.com", "secret1234", "", "")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if err := svc.Logout(user.ID); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	var reloaded models.User
	if err := db.First(&reloaded, user.ID).Error; err != nil {
		t.Fatalf("reload user failed: %v", err)
	}
	if reloaded.TokenVersion != user.TokenVersion+1 {
		t.Fatalf("expected token version bump, got %d", reloaded.TokenVersion)
	}
	if reloaded.TokenInvalidBefore == nil {
		t.Fatalf("expected token invalid before to be set")
	}
}

func TestSuspensionActiveWindow(t *testing.T) {
	now := time.Now()

	permanent := models.Suspension{IsPermanent: true}
	if !permanent.Active(now) {
		t.Fatalf("permanent suspension must always be active")
	}

	future := now.Add(time.Hour)
	temporary := models.Suspension{SuspendedUntil: &future}
	if !temporary.Active(now) {
		t.Fatalf("unexpired suspension must be active")
	}

	past := now.Add(-time.Hour)
	expired := models.Suspension{SuspendedUntil: &past}
	if expired.Active(now) {
		t.Fatalf("expired suspension must be inactive")
	}

	open := models.Suspension{}
	if open.Active(now) {
		t.Fatalf("suspension without expiry or permanent flag must be inactive")
	}
}
