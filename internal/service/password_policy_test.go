package service

import (
	"errors"
	"testing"

	"github.com/paikari-bazar/internal/config"
)

func TestValidatePasswordMinLength(t *testing.T) {
	policy := config.PasswordPolicyConfig{MinLength: 8}
	if err := validatePassword(policy, "short"); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected weak password, got: %v", err)
	}
	if err := validatePassword(policy, "longenough"); err != nil {
		t.Fatalf("expected pass, got: %v", err)
	}
}

func TestValidatePasswordCharacterClasses(t *testing.T) {
	policy := config.PasswordPolicyConfig{
		MinLength:     8,
		RequireUpper:  true,
		RequireLower:  true,
		RequireNumber: true,
	}
	cases := []struct {
		password string
		ok       bool
	}{
		{"alllower1", false},
		{"ALLUPPER1", false},
		{"NoNumbers", false},
		{"Balanced1", true},
	}
	for _, c := range cases {
		err := validatePassword(policy, c.password)
		if c.ok && err != nil {
			t.Fatalf("password %q: expected pass, got: %v", c.password, err)
		}
		if !c.ok && !errors.Is(err, ErrWeakPassword) {
			t.Fatalf("password %q: expected weak password, got: %v", c.password, err)
		}
	}
}

func TestValidatePasswordEmptyPolicy(t *testing.T) {
	if err := validatePassword(config.PasswordPolicyConfig{}, ""); err != nil {
		t.Fatalf("empty policy must accept anything, got: %v", err)
	}
}
