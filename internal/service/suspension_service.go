package service

import (
	"context"
	"strings"
	"time"

	"github.com/paikari-bazar/internal/cache"
	"github.com/paikari-bazar/internal/models"
	"github.com/paikari-bazar/internal/repository"
)

// SuspensionService manages account suspensions. Suspending a user
// refreshes the cached auth state so active sessions are cut off, not
// just future logins.
type SuspensionService struct {
	suspensionRepo repository.SuspensionRepository
	userRepo       repository.UserRepository
}

// NewSuspensionService creates a suspension service.
func NewSuspensionService(suspensionRepo repository.SuspensionRepository, userRepo repository.UserRepository) *SuspensionService {
	return &SuspensionService{
		suspensionRepo: suspensionRepo,
		userRepo:       userRepo,
	}
}

// SuspendInput carries the suspension form.
type SuspendInput struct {
	UserID         uint
	Reason         string
	IsPermanent    bool
	SuspendedUntil *time.Time
	SuspendedBy    uint
}

// Suspend restricts a user account.
func (s *SuspensionService) Suspend(input SuspendInput) (*models.Suspension, error) {
	reason := strings.TrimSpace(input.Reason)
	if reason == "" {
		return nil, ErrSuspensionInvalid
	}
	now := time.Now()
	if !input.IsPermanent {
		if input.SuspendedUntil == nil || !input.SuspendedUntil.After(now) {
			return nil, ErrSuspensionInvalid
		}
	}

	user, err := s.userRepo.GetByID(input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	suspension := &models.Suspension{
		UserID:      input.UserID,
		Reason:      reason,
		IsPermanent: input.IsPermanent,
		SuspendedBy: input.SuspendedBy,
		CreatedAt:   now,
	}
	if !input.IsPermanent {
		suspension.SuspendedUntil = input.SuspendedUntil
	}
	if err := s.suspensionRepo.Create(suspension); err != nil {
		return nil, err
	}

	_ = cache.SetUserAuthState(context.Background(), cache.BuildUserAuthState(user, suspension))

	return suspension, nil
}

// Lift removes a suspension and restores the user's auth state.
func (s *SuspensionService) Lift(id uint) error {
	suspension, err := s.suspensionRepo.GetByID(id)
	if err != nil {
		return err
	}
	if suspension == nil {
		return ErrSuspensionNotFound
	}

	if err := s.suspensionRepo.Delete(id); err != nil {
		return err
	}

	user, err := s.userRepo.GetByID(suspension.UserID)
	if err == nil && user != nil {
		remaining, err := s.suspensionRepo.GetActiveByUser(user.ID, time.Now())
		if err == nil {
			_ = cache.SetUserAuthState(context.Background(), cache.BuildUserAuthState(user, remaining))
		}
	}
	return nil
}

// List returns a suspension page.
func (s *SuspensionService) List(page, pageSize int, userID uint, activeOnly bool) ([]models.Suspension, int64, error) {
	return s.suspensionRepo.List(repository.SuspensionListFilter{
		Page:       page,
		PageSize:   pageSize,
		UserID:     userID,
		ActiveOnly: activeOnly,
	})
}

// GetActiveForUser returns the suspension in force for a user, nil
// when the user is not suspended.
func (s *SuspensionService) GetActiveForUser(userID uint) (*models.Suspension, error) {
	return s.suspensionRepo.GetActiveByUser(userID, time.Now())
}
