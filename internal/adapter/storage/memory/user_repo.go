package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"loyalty-rewards/internal/core/domain"
	"loyalty-rewards/internal/core/ports"

	"github.com/google/uuid"
)

// UserRepo implements ports.UserRepository in process memory.
type UserRepo struct {
	mu      sync.RWMutex
	users   map[uuid.UUID]*domain.User
	byEmail map[string]uuid.UUID
}

// NewUserRepo creates an empty user repository.
func NewUserRepo() *UserRepo {
	return &UserRepo{
		users:   make(map[uuid.UUID]*domain.User),
		byEmail: make(map[string]uuid.UUID),
	}
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Create stores a new user. Emails are unique ignoring case.
func (r *UserRepo) Create(_ context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := emailKey(u.Email)
	if _, exists := r.byEmail[key]; exists {
		return fmt.Errorf("create %s: %w", key, ports.ErrEmailTaken)
	}
	cp := *u
	r.users[u.ID] = &cp
	r.byEmail[key] = u.ID
	return nil
}

// GetByID returns nil, nil when the user does not exist.
func (r *UserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

// GetByEmail returns nil, nil when no user has that email.
func (r *UserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[emailKey(email)]
	if !ok {
		return nil, nil
	}
	cp := *r.users[id]
	return &cp, nil
}

// Update replaces a stored user, re-indexing the email if it changed.
func (r *UserRepo) Update(_ context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	old, ok := r.users[u.ID]
	if !ok {
		return fmt.Errorf("user not found: %s", u.ID)
	}
	oldKey, newKey := emailKey(old.Email), emailKey(u.Email)
	if oldKey != newKey {
		if _, taken := r.byEmail[newKey]; taken {
			return fmt.Errorf("update %s: %w", newKey, ports.ErrEmailTaken)
		}
		delete(r.byEmail, oldKey)
		r.byEmail[newKey] = u.ID
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}
