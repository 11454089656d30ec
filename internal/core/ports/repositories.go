package ports

import (
	"context"
	"errors"
	"time"

	"loyalty-rewards/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BalanceStore is the single source of truth for a member's per-restaurant
// balances. It performs no business validation; callers check amounts
// before writing.
type BalanceStore interface {
	// Register adds a restaurant with its initial balances. Registering an
	// id twice keeps the existing balances and returns false.
	Register(restaurant domain.Restaurant) bool
	// SelectContext makes id the active restaurant. Unknown ids return an
	// InvalidContext error and leave the selection unchanged.
	SelectContext(id string) error
	// Selected returns the active restaurant id, if any.
	Selected() (string, bool)
	// GetBalance never fails: unknown restaurants or buckets read as zero.
	GetBalance(id string, bucket domain.BucketKind) decimal.Decimal
	// SetBalance overwrites one bucket of one restaurant.
	SetBalance(id string, bucket domain.BucketKind, amount decimal.Decimal) error
	Get(id string) (domain.Restaurant, bool)
	List() []domain.Restaurant
}

// RestaurantSource loads the seed restaurants every new session starts with.
type RestaurantSource interface {
	Load(ctx context.Context) ([]domain.Restaurant, error)
	Name() string
}

// ErrEmailTaken is returned by UserRepository writes that would give two
// accounts the same email.
var ErrEmailTaken = errors.New("email already taken")

// UserRepository defines storage for app accounts. Create and Update wrap
// ErrEmailTaken on a uniqueness conflict.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

// ReleaseCache remembers the response to a released gesture so a client
// retrying the same request gets the same answer.
type ReleaseCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // Returns cached response JSON or nil
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// RateLimitStore counts requests per key in fixed windows.
type RateLimitStore interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (*RateLimitResult, error)
}

// RateLimitResult holds the outcome of a rate limit check.
type RateLimitResult struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   int64 // Unix timestamp
}
