package service

import (
	"strconv"
	"strings"

	"github.com/paikari-bazar/internal/config"
	"github.com/paikari-bazar/internal/constants"
	"github.com/paikari-bazar/internal/repository"
)

// SettingService reads and writes runtime settings. Database values
// override the static configuration so staff can change the bKash
// number and advance policy without a redeploy.
type SettingService struct {
	cfg  *config.Config
	repo repository.SettingRepository
}

// NewSettingService creates a setting service.
func NewSettingService(cfg *config.Config, repo repository.SettingRepository) *SettingService {
	return &SettingService{cfg: cfg, repo: repo}
}

// Get returns a setting value, empty string when unset.
func (s *SettingService) Get(key string) (string, error) {
	setting, err := s.repo.Get(key)
	if err != nil {
		return "", err
	}
	if setting == nil {
		return "", nil
	}
	return setting.Value, nil
}

// Set stores a setting value.
func (s *SettingService) Set(key, value string) error {
	return s.repo.Set(strings.TrimSpace(key), strings.TrimSpace(value))
}

// GetAll returns every stored setting as a map.
func (s *SettingService) GetAll() (map[string]string, error) {
	settings, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	result := make(map[string]string, len(settings))
	for _, setting := range settings {
		result[setting.Key] = setting.Value
	}
	return result, nil
}

// GetBkashNumber returns the collection number shown at checkout.
func (s *SettingService) GetBkashNumber() (string, error) {
	value, err := s.Get(constants.SettingKeyBkashNumber)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value), nil
	}
	return s.cfg.Payment.BkashNumber, nil
}

// GetAdvancePolicy resolves the advance policy from settings with the
// static configuration as fallback.
func (s *SettingService) GetAdvancePolicy() (config.AdvanceConfig, error) {
	policy := s.cfg.Payment.Advance
	if policy.Mode == "" {
		policy.Mode = constants.AdvanceModeEntered
	}

	mode, err := s.Get(constants.SettingKeyAdvanceMode)
	if err != nil {
		return policy, err
	}
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case constants.AdvanceModeEntered:
		policy.Mode = constants.AdvanceModeEntered
	case constants.AdvanceModeAuto:
		policy.Mode = constants.AdvanceModeAuto
	}

	if value, err := s.Get(constants.SettingKeyAdvanceMinPercent); err != nil {
		return policy, err
	} else if parsed, ok := parseSettingPercent(value); ok {
		policy.MinPercent = parsed
	}

	if value, err := s.Get(constants.SettingKeyAdvancePercent); err != nil {
		return policy, err
	} else if parsed, ok := parseSettingPercent(value); ok {
		policy.Percent = parsed
	}

	return policy, nil
}

func parseSettingPercent(value string) (int, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, false
	}
	parsed, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, false
	}
	if parsed < 0 || parsed > 100 {
		return 0, false
	}
	return parsed, true
}
