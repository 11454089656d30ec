package memory

import (
	"sync"

	"loyalty-rewards/internal/core/domain"
	"loyalty-rewards/pkg/apperror"

	"github.com/shopspring/decimal"
)

// BalanceStore implements ports.BalanceStore in process memory. Records
// live for the lifetime of the store and are never removed.
type BalanceStore struct {
	mu       sync.RWMutex
	records  map[string]*domain.Restaurant
	order    []string
	selected string
}

// NewBalanceStore creates an empty store with nothing selected.
func NewBalanceStore() *BalanceStore {
	return &BalanceStore{records: make(map[string]*domain.Restaurant)}
}

// Register adds a restaurant. A second registration of the same id is
// ignored so balances spent during the session survive a reseed.
func (s *BalanceStore) Register(r domain.Restaurant) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[r.ID]; ok {
		return false
	}
	rec := r
	s.records[r.ID] = &rec
	s.order = append(s.order, r.ID)
	return true
}

// SelectContext sets the active restaurant.
func (s *BalanceStore) SelectContext(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return apperror.ErrInvalidContext(id)
	}
	s.selected = id
	return nil
}

// Selected returns the active restaurant id.
func (s *BalanceStore) Selected() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected, s.selected != ""
}

// GetBalance reads one bucket; anything unknown reads as zero.
func (s *BalanceStore) GetBalance(id string, bucket domain.BucketKind) decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		return decimal.Zero
	}
	return rec.Balances.Get(bucket)
}

// SetBalance overwrites one bucket. Non-negativity is the caller's job.
func (s *BalanceStore) SetBalance(id string, bucket domain.BucketKind, amount decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok {
		return apperror.ErrInvalidContext(id)
	}
	if !rec.Balances.Set(bucket, amount) {
		return apperror.ErrInvalidBucket(string(bucket))
	}
	return nil
}

// Get returns a copy of one restaurant record.
func (s *BalanceStore) Get(id string) (domain.Restaurant, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		return domain.Restaurant{}, false
	}
	return *rec, true
}

// List returns copies of all records in registration order.
func (s *BalanceStore) List() []domain.Restaurant {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Restaurant, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.records[id])
	}
	return out
}
