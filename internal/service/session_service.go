package service

import (
	"context"
	"sync"

	"loyalty-rewards/internal/core/ports"
	"loyalty-rewards/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Session is one member's balances plus the slider that spends them.
type Session struct {
	store      ports.BalanceStore
	controller *ConfirmationController
}

func (s *Session) Store() ports.BalanceStore { return s.store }

func (s *Session) Controller() ports.PaymentController { return s.controller }

// SessionServiceImpl implements ports.SessionService. Sessions live for the
// life of the process.
type SessionServiceImpl struct {
	source   ports.RestaurantSource
	newStore func() ports.BalanceStore
	geom     SliderGeometry
	rec      ports.ConfirmationRecorder
	log      zerolog.Logger

	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
}

// NewSessionService creates a session service. newStore builds an empty
// store for each new session, which is then seeded from source.
func NewSessionService(
	source ports.RestaurantSource,
	newStore func() ports.BalanceStore,
	geom SliderGeometry,
	rec ports.ConfirmationRecorder,
	log zerolog.Logger,
) *SessionServiceImpl {
	return &SessionServiceImpl{
		source:   source,
		newStore: newStore,
		geom:     geom,
		rec:      rec,
		log:      log,
		sessions: make(map[uuid.UUID]*Session),
	}
}

// Session returns the user's session, seeding a new one on first use.
func (s *SessionServiceImpl) Session(ctx context.Context, userID uuid.UUID) (ports.PaymentSession, error) {
	s.mu.Lock()
	if sess, ok := s.sessions[userID]; ok {
		s.mu.Unlock()
		return sess, nil
	}
	s.mu.Unlock()

	sess, err := s.build(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Another request may have won the race while we were loading.
	if existing, ok := s.sessions[userID]; ok {
		return existing, nil
	}
	s.sessions[userID] = sess
	return sess, nil
}

func (s *SessionServiceImpl) build(ctx context.Context, userID uuid.UUID) (*Session, error) {
	restaurants, err := s.source.Load(ctx)
	if err != nil {
		s.log.Error().Err(err).Str("source", s.source.Name()).Msg("failed to load restaurants")
		return nil, apperror.ErrSeedFailure(err)
	}

	store := s.newStore()
	for _, r := range restaurants {
		if !store.Register(r) {
			s.log.Warn().Str("restaurant_id", r.ID).Msg("duplicate restaurant in seed data ignored")
		}
	}

	log := s.log.With().Str("user_id", userID.String()).Logger()
	ctrl := NewConfirmationController(store, s.geom, s.rec, log)
	ctrl.OnSettled(func() {
		log.Debug().Msg("slider settled")
	})

	log.Info().
		Str("source", s.source.Name()).
		Int("restaurants", len(restaurants)).
		Msg("payment session created")

	return &Session{store: store, controller: ctrl}, nil
}
