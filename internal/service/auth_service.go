package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"loyalty-rewards/internal/core/domain"
	"loyalty-rewards/internal/core/ports"
	"loyalty-rewards/pkg/apperror"

	"github.com/google/uuid"
)

const minPasswordLen = 6

// AuthServiceImpl implements ports.AuthService.
type AuthServiceImpl struct {
	userRepo ports.UserRepository
	hashSvc  ports.HashService
	tokenSvc ports.TokenService
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(
	userRepo ports.UserRepository,
	hashSvc ports.HashService,
	tokenSvc ports.TokenService,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		userRepo: userRepo,
		hashSvc:  hashSvc,
		tokenSvc: tokenSvc,
	}
}

// Register creates a new account. The account type follows from the email.
func (s *AuthServiceImpl) Register(ctx context.Context, req ports.RegisterRequest) (*domain.User, error) {
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if len(req.Password) < minPasswordLen {
		return nil, apperror.Validation(fmt.Sprintf("password must be at least %d characters", minPasswordLen)).WithField("password")
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check email: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrEmailExists()
	}

	passwordHash, err := s.hashSvc.Hash(req.Password)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("hash password: %w", err))
	}

	accountType := domain.AccountTypeFor(email)
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = defaultDisplayName(accountType)
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		Phone:        strings.TrimSpace(req.Phone),
		PasswordHash: passwordHash,
		AccountType:  accountType,
		Preferences:  domain.DefaultPreferences(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, ports.ErrEmailTaken) {
			return nil, apperror.ErrEmailExists()
		}
		return nil, apperror.InternalError(fmt.Errorf("create user: %w", err))
	}
	return user, nil
}

// Login validates credentials and returns a JWT token.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return "", time.Time{}, apperror.Validation("Please fill in all fields")
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("find user: %w", err))
	}
	if user == nil {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	valid, err := s.hashSvc.Verify(password, user.PasswordHash)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("verify password: %w", err))
	}
	if !valid {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	token, expiry, err := s.tokenSvc.Generate(user.ID, user.AccountType)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}

	return token, expiry, nil
}

// Profile returns the account for userID.
func (s *AuthServiceImpl) Profile(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find user: %w", err))
	}
	if user == nil {
		return nil, apperror.ErrNotFound("User")
	}
	return user, nil
}

// UpdateProfile changes name and email. Changing the email re-derives the
// account type.
func (s *AuthServiceImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, name, email string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperror.Validation("name is required").WithField("name")
	}
	normalized, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}

	return s.update(ctx, userID, func(u *domain.User) error {
		if !strings.EqualFold(u.Email, normalized) {
			other, err := s.userRepo.GetByEmail(ctx, normalized)
			if err != nil {
				return apperror.InternalError(fmt.Errorf("check email: %w", err))
			}
			if other != nil && other.ID != u.ID {
				return apperror.ErrEmailExists()
			}
		}
		u.Name = name
		u.Email = normalized
		u.AccountType = domain.AccountTypeFor(normalized)
		return nil
	})
}

// UpdatePhone replaces the phone number on file.
func (s *AuthServiceImpl) UpdatePhone(ctx context.Context, userID uuid.UUID, phone string) (*domain.User, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, apperror.Validation("phone number is required").WithField("phone_number")
	}
	return s.update(ctx, userID, func(u *domain.User) error {
		u.Phone = phone
		return nil
	})
}

// UpdatePreferences stores theme and language settings.
func (s *AuthServiceImpl) UpdatePreferences(ctx context.Context, userID uuid.UUID, prefs domain.Preferences) (*domain.User, error) {
	if !prefs.Theme.Valid() {
		return nil, apperror.Validation(fmt.Sprintf("unsupported theme %q", prefs.Theme)).WithField("theme")
	}
	if !domain.ValidLanguage(prefs.Language) {
		return nil, apperror.Validation(fmt.Sprintf("unsupported language %q", prefs.Language)).WithField("language")
	}
	return s.update(ctx, userID, func(u *domain.User) error {
		u.Preferences = prefs
		return nil
	})
}

func (s *AuthServiceImpl) update(ctx context.Context, userID uuid.UUID, mutate func(*domain.User) error) (*domain.User, error) {
	user, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := mutate(user); err != nil {
		return nil, err
	}
	user.UpdatedAt = time.Now().UTC()
	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, ports.ErrEmailTaken) {
			return nil, apperror.ErrEmailExists()
		}
		return nil, apperror.InternalError(fmt.Errorf("update user: %w", err))
	}
	return user, nil
}

func normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", apperror.Validation("email is required").WithField("email")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", apperror.Validation("email is not valid").WithField("email")
	}
	return email, nil
}

func defaultDisplayName(t domain.AccountType) string {
	if t == domain.AccountTypeRestaurant {
		return "Restaurant Owner"
	}
	return "John Doe"
}
