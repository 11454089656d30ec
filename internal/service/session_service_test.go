package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"loyalty-rewards/internal/adapter/storage/memory"
	"loyalty-rewards/internal/core/domain"
	"loyalty-rewards/internal/core/ports"
	"loyalty-rewards/internal/core/ports/mocks"
	"loyalty-rewards/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newMemoryStore() ports.BalanceStore { return memory.NewBalanceStore() }

func seedRestaurants() []domain.Restaurant {
	return []domain.Restaurant{
		{ID: "1", Name: "Café Central", Balances: domain.Balances{Wallet: dec("150.75"), DrinkPoints: dec("25"), MealPoints: dec("12")}},
		{ID: "2", Name: "Pizza Palace", Balances: domain.Balances{Wallet: dec("89.50"), DrinkPoints: dec("18"), MealPoints: dec("8")}},
	}
}

func TestSessionService_SeedsNewSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockRestaurantSource(ctrl)
	source.EXPECT().Load(gomock.Any()).Return(seedRestaurants(), nil)
	source.EXPECT().Name().Return("builtin").AnyTimes()

	svc := NewSessionService(source, newMemoryStore, testGeometry, nil, zerolog.Nop())
	sess, err := svc.Session(context.Background(), uuid.New())
	require.NoError(t, err)

	list := sess.Store().List()
	require.Len(t, list, 2)
	assert.Equal(t, "Café Central", list[0].Name)

	_, ok := sess.Store().Selected()
	assert.False(t, ok, "new sessions start without a selection")
	assert.Equal(t, domain.SliderIdle, sess.Controller().View().State)
}

func TestSessionService_ReusesSessionPerUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockRestaurantSource(ctrl)
	source.EXPECT().Load(gomock.Any()).Return(seedRestaurants(), nil).Times(2)
	source.EXPECT().Name().Return("builtin").AnyTimes()

	svc := NewSessionService(source, newMemoryStore, testGeometry, nil, zerolog.Nop())
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()

	a1, err := svc.Session(ctx, alice)
	require.NoError(t, err)
	require.NoError(t, a1.Store().SelectContext("1"))
	a1.Controller().SetAmount("50")
	a1.Controller().DragStart()
	a1.Controller().DragUpdate(220)
	_, err = a1.Controller().DragEnd()
	require.NoError(t, err)

	a2, err := svc.Session(ctx, alice)
	require.NoError(t, err)
	assert.Same(t, a1, a2)

	b, err := svc.Session(ctx, bob)
	require.NoError(t, err)
	assert.True(t, b.Store().GetBalance("1", domain.BucketWallet).Equal(dec("150.75")), "balances are per user")
	assert.True(t, a2.Store().GetBalance("1", domain.BucketWallet).Equal(dec("100.75")))
}

func TestSessionService_SeedFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockRestaurantSource(ctrl)
	source.EXPECT().Load(gomock.Any()).Return(nil, errors.New("db down"))
	source.EXPECT().Name().Return("postgres").AnyTimes()

	svc := NewSessionService(source, newMemoryStore, testGeometry, nil, zerolog.Nop())
	_, err := svc.Session(context.Background(), uuid.New())
	assertAppError(t, err, "SYS_002")
	assert.True(t, apperror.HasCode(err, "SYS_002"))
}

func TestSessionService_ConcurrentFirstUse(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockRestaurantSource(ctrl)
	source.EXPECT().Load(gomock.Any()).Return(seedRestaurants(), nil).MinTimes(1)
	source.EXPECT().Name().Return("builtin").AnyTimes()

	svc := NewSessionService(source, newMemoryStore, testGeometry, nil, zerolog.Nop())
	userID := uuid.New()

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		got = map[ports.PaymentSession]struct{}{}
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sess, err := svc.Session(context.Background(), userID)
			if err != nil {
				return
			}
			mu.Lock()
			got[sess] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, got, 1, "every caller sees the same session")
}
