package service

import (
	"strings"
	"time"

	"github.com/paikari-bazar/internal/constants"
	"github.com/paikari-bazar/internal/models"
	"github.com/paikari-bazar/internal/repository"
)

// ProfileService manages wholesaler shop profiles.
type ProfileService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
}

// NewProfileService creates a profile service.
func NewProfileService(profileRepo repository.ProfileRepository, userRepo repository.UserRepository) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

// GetOwn returns the wholesaler's own shop profile.
func (s *ProfileService) GetOwn(userID uint) (*models.WholesalerProfile, error) {
	profile, err := s.profileRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrNotFound
	}
	return profile, nil
}

// GetPublic returns a wholesaler's shop profile for the storefront.
func (s *ProfileService) GetPublic(wholesalerID uint) (*models.WholesalerProfile, error) {
	user, err := s.userRepo.GetByID(wholesalerID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Role != constants.RoleWholesaler || user.Status != constants.UserStatusActive {
		return nil, ErrNotFound
	}
	return s.GetOwn(wholesalerID)
}

// UpdateProfileInput carries optional shop profile updates.
type UpdateProfileInput struct {
	ShopName    *string
	Description *string
	LogoURL     *string
}

// Update edits the wholesaler's shop profile.
func (s *ProfileService) Update(userID uint, input UpdateProfileInput) (*models.WholesalerProfile, error) {
	profile, err := s.GetOwn(userID)
	if err != nil {
		return nil, err
	}

	updated := false
	if input.ShopName != nil {
		trimmed := strings.TrimSpace(*input.ShopName)
		if trimmed != "" {
			profile.ShopName = trimmed
			updated = true
		}
	}
	if input.Description != nil {
		profile.Description = strings.TrimSpace(*input.Description)
		updated = true
	}
	if input.LogoURL != nil {
		profile.LogoURL = strings.TrimSpace(*input.LogoURL)
		updated = true
	}
	if !updated {
		return nil, ErrProfileEmpty
	}

	profile.UpdatedAt = time.Now()
	if err := s.profileRepo.Upsert(profile); err != nil {
		return nil, err
	}
	return profile, nil
}
