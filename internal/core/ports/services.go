package ports

import (
	"context"
	"time"

	"loyalty-rewards/internal/core/domain"

	"github.com/google/uuid"
)

// DragHandler is the capability a host UI drives with pointer events.
// dx is the total horizontal displacement since the gesture began.
type DragHandler interface {
	DragStart()
	DragUpdate(dx float64)
	DragEnd() (domain.Release, error)
}

// PaymentController turns a drag plus a typed amount into at most one debit.
type PaymentController interface {
	DragHandler
	SelectBucket(bucket domain.BucketKind) error
	SetAmount(raw string)
	// Tick advances a running spring-back to now and returns the view.
	Tick(now time.Time) domain.SliderView
	View() domain.SliderView
}

// ConfirmationRecorder receives slider outcomes for monitoring.
type ConfirmationRecorder interface {
	Released(outcome domain.ReleaseOutcome)
	Rejected(code string)
	Debited(bucket domain.BucketKind)
}

// PaymentSession bundles a member's balances with the controller that spends them.
type PaymentSession interface {
	Store() BalanceStore
	Controller() PaymentController
}

// SessionService hands out one session per authenticated user.
type SessionService interface {
	Session(ctx context.Context, userID uuid.UUID) (PaymentSession, error)
}

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(userID uuid.UUID, accountType domain.AccountType) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	UserID      uuid.UUID
	AccountType domain.AccountType
}

// AuthService defines sign-up, sign-in and profile management.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, time.Time, error) // token, expiry, error
	Profile(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, name, email string) (*domain.User, error)
	UpdatePhone(ctx context.Context, userID uuid.UUID, phone string) (*domain.User, error)
	UpdatePreferences(ctx context.Context, userID uuid.UUID, prefs domain.Preferences) (*domain.User, error)
}

// RegisterRequest holds input for account registration.
type RegisterRequest struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// QRService renders the member QR code shown at the till.
type QRService interface {
	Render(payload domain.QRPayload, size int) ([]byte, error)
}
