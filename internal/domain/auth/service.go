package auth

import (
	"context"
	"strings"
	"time"

	"tendorai/internal/domain/tier"
	"tendorai/internal/domain/vendor"

	"golang.org/x/crypto/bcrypt"
)

const (
	maxFailedLoginAttempts = 5
	lockoutDuration        = 15 * time.Minute
)

type jwtService interface {
	GenerateToken(userID int64, role string) (string, error)
}

type Service struct {
	users *Repository
	jwt   jwtService
}

type LoginResult struct {
	User        *User  `json:"user"`
	AccessToken string `json:"access_token"`
}

func NewService(users *Repository, jwt jwtService) *Service {
	return &Service{users: users, jwt: jwt}
}

// RegisterVendor creates the user account and its vendor profile in
// one transaction. New vendors start on the free tier, pending admin
// activation.
func (s *Service) RegisterVendor(ctx context.Context, req *RegisterVendorRequest) (*User, *vendor.Vendor, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}
	if exists {
		return nil, nil, ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	tx := s.users.DB().WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, nil, tx.Error
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	now := time.Now()
	user := &User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(req.Name),
		Role:         RoleVendor,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := tx.Create(user).Error; err != nil {
		tx.Rollback()
		return nil, nil, err
	}

	v := &vendor.Vendor{
		UserID:      user.ID,
		CompanyName: strings.TrimSpace(req.CompanyName),
		Email:       email,
		Phone:       strings.TrimSpace(req.Phone),
		City:        strings.TrimSpace(req.City),
		Services:    req.Services,
		Tier:        tier.RawFree,
		Status:      vendor.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := tx.Create(v).Error; err != nil {
		tx.Rollback()
		return nil, nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, nil, err
	}

	user.PasswordHash = ""
	return user, v, nil
}

// Login verifies credentials and issues an access token. Repeated
// failures lock the account for a cooldown period.
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if err == ErrUserNotFound {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	now := time.Now()
	if user.LockedUntil != nil && user.LockedUntil.After(now) {
		return nil, ErrAccountLocked
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		attempts := user.FailedLoginAttempts + 1
		var lockedUntil *time.Time
		if attempts >= maxFailedLoginAttempts {
			t := now.Add(lockoutDuration)
			lockedUntil = &t
		}
		if recErr := s.users.RecordFailedLogin(ctx, user.ID, attempts, lockedUntil); recErr != nil {
			return nil, recErr
		}
		if lockedUntil != nil {
			return nil, ErrAccountLocked
		}
		return nil, ErrInvalidCredentials
	}

	if user.FailedLoginAttempts > 0 || user.LockedUntil != nil {
		if err := s.users.ClearLoginFailures(ctx, user.ID); err != nil {
			return nil, err
		}
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &LoginResult{User: user, AccessToken: token}, nil
}

// GetCurrentUser returns the authenticated account
func (s *Service) GetCurrentUser(ctx context.Context, userID int64) (*User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

// ChangePassword verifies the current password before replacing it
func (s *Service) ChangePassword(ctx context.Context, userID int64, req *ChangePasswordRequest) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, userID, string(hash))
}
