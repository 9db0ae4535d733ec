package service

import (
	"context"
	"strings"
	"time"

	"github.com/paikari-bazar/internal/cache"
	"github.com/paikari-bazar/internal/config"
	"github.com/paikari-bazar/internal/constants"
	"github.com/paikari-bazar/internal/models"
	"github.com/paikari-bazar/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserAdminService is the moderation panel's view of storefront accounts.
type UserAdminService struct {
	cfg            *config.Config
	userRepo       repository.UserRepository
	profileRepo    repository.ProfileRepository
	suspensionRepo repository.SuspensionRepository
}

// NewUserAdminService creates a user admin service.
func NewUserAdminService(
	cfg *config.Config,
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	suspensionRepo repository.SuspensionRepository,
) *UserAdminService {
	return &UserAdminService{
		cfg:            cfg,
		userRepo:       userRepo,
		profileRepo:    profileRepo,
		suspensionRepo: suspensionRepo,
	}
}

// List returns a user page.
func (s *UserAdminService) List(filter repository.UserListFilter) ([]models.User, int64, error) {
	return s.userRepo.List(filter)
}

// UserDetail pairs a user with their active suspension, if any.
type UserDetail struct {
	User       *models.User       `json:"user"`
	Suspension *models.Suspension `json:"suspension,omitempty"`
}

// Get returns a user with their suspension state.
func (s *UserAdminService) Get(id uint) (*UserDetail, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	suspension, err := s.suspensionRepo.GetActiveByUser(id, time.Now())
	if err != nil {
		return nil, err
	}
	return &UserDetail{User: user, Suspension: suspension}, nil
}

// ProvisionWholesalerInput carries the fields of a new wholesaler account.
type ProvisionWholesalerInput struct {
	Email       string
	Password    string
	Name        string
	Phone       string
	ShopName    string
	Description string
	LogoURL     string
}

// ProvisionWholesaler creates a wholesaler account with its shop
// profile. Wholesalers only enter the system through this path.
func (s *UserAdminService) ProvisionWholesaler(input ProvisionWholesalerInput) (*models.User, error) {
	normalized, err := normalizeEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if err := validatePassword(s.cfg.Security.PasswordPolicy, input.Password); err != nil {
		return nil, err
	}
	shopName := strings.TrimSpace(input.ShopName)
	if shopName == "" {
		return nil, ErrProfileEmpty
	}

	exist, err := s.userRepo.GetByEmail(normalized)
	if err != nil {
		return nil, err
	}
	if exist != nil {
		return nil, ErrEmailExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	resolvedName := strings.TrimSpace(input.Name)
	if resolvedName == "" {
		resolvedName = shopName
	}
	user := &models.User{
		Email:        normalized,
		PasswordHash: string(hashedPassword),
		Name:         resolvedName,
		Phone:        strings.TrimSpace(input.Phone),
		Role:         constants.RoleWholesaler,
		Status:       constants.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		userRepo := s.userRepo.WithTx(tx)
		profileRepo := s.profileRepo.WithTx(tx)
		if err := userRepo.Create(user); err != nil {
			return err
		}
		return profileRepo.Upsert(&models.WholesalerProfile{
			UserID:      user.ID,
			ShopName:    shopName,
			Description: strings.TrimSpace(input.Description),
			LogoURL:     strings.TrimSpace(input.LogoURL),
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// SetStatus enables or disables an account. Disabling bumps the token
// version so outstanding tokens stop working.
func (s *UserAdminService) SetStatus(id uint, status string) (*models.User, error) {
	normalized := strings.ToLower(strings.TrimSpace(status))
	if normalized != constants.UserStatusActive && normalized != constants.UserStatusDisabled {
		return nil, ErrInvalidStatus
	}

	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	if user.Status == normalized {
		return user, nil
	}

	user.Status = normalized
	now := time.Now()
	user.UpdatedAt = now
	if normalized == constants.UserStatusDisabled {
		user.TokenVersion++
		user.TokenInvalidBefore = &now
	}
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	suspension, _ := s.suspensionRepo.GetActiveByUser(id, now)
	_ = cache.SetUserAuthState(context.Background(), cache.BuildUserAuthState(user, suspension))

	return user, nil
}
