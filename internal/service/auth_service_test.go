package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"loyalty-rewards/internal/adapter/storage/memory"
	"loyalty-rewards/internal/core/domain"
	"loyalty-rewards/internal/core/ports"
	"loyalty-rewards/internal/core/ports/mocks"
	"loyalty-rewards/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupAuthService(t *testing.T) (
	*AuthServiceImpl,
	*mocks.MockUserRepository,
	*mocks.MockHashService,
	*mocks.MockTokenService,
) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	hashSvc := mocks.NewMockHashService(ctrl)
	tokenSvc := mocks.NewMockTokenService(ctrl)

	return NewAuthService(userRepo, hashSvc, tokenSvc), userRepo, hashSvc, tokenSvc
}

func assertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()
	require.Error(t, err)
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T", err)
	assert.Equal(t, expectedCode, appErr.Code)
}

func existingUser(email string) *domain.User {
	return &domain.User{
		ID:           uuid.New(),
		Name:         "John Doe",
		Email:        email,
		PasswordHash: "$argon2id$hashed",
		AccountType:  domain.AccountTypeFor(email),
		Preferences:  domain.DefaultPreferences(),
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, userRepo, hashSvc, _ := setupAuthService(t)
	ctx := context.Background()

	userRepo.EXPECT().GetByEmail(ctx, "jane@example.com").Return(nil, nil)
	hashSvc.EXPECT().Hash("StrongP@ss123").Return("$argon2id$hashed", nil)
	userRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *domain.User) error {
		assert.Equal(t, "$argon2id$hashed", u.PasswordHash)
		return nil
	})

	user, err := svc.Register(ctx, ports.RegisterRequest{
		Name:     "Jane",
		Email:    "  Jane@Example.com ",
		Phone:    "+1 555 0100",
		Password: "StrongP@ss123",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "jane@example.com", user.Email)
	assert.Equal(t, "+1 555 0100", user.Phone)
	assert.Equal(t, domain.AccountTypeUser, user.AccountType)
	assert.Equal(t, domain.DefaultPreferences(), user.Preferences)
}

func TestAuthService_Register_RestaurantEmail(t *testing.T) {
	svc, userRepo, hashSvc, _ := setupAuthService(t)
	ctx := context.Background()

	userRepo.EXPECT().GetByEmail(ctx, "restaurant@example.com").Return(nil, nil)
	hashSvc.EXPECT().Hash(gomock.Any()).Return("h", nil)
	userRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	user, err := svc.Register(ctx, ports.RegisterRequest{Email: "restaurant@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, domain.AccountTypeRestaurant, user.AccountType)
	assert.Equal(t, "Restaurant Owner", user.Name)
}

func TestAuthService_Register_Validation(t *testing.T) {
	tests := []struct {
		name  string
		req   ports.RegisterRequest
		field string
	}{
		{"missing email", ports.RegisterRequest{Password: "secret1"}, "email"},
		{"bad email", ports.RegisterRequest{Email: "not-an-email", Password: "secret1"}, "email"},
		{"short password", ports.RegisterRequest{Email: "a@example.com", Password: "123"}, "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _, _ := setupAuthService(t)

			_, err := svc.Register(context.Background(), tt.req)
			assertAppError(t, err, "REQ_001")
			var appErr *apperror.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.field, appErr.Field)
		})
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, userRepo, _, _ := setupAuthService(t)
	ctx := context.Background()

	userRepo.EXPECT().GetByEmail(ctx, "john@example.com").Return(existingUser("john@example.com"), nil)

	user, err := svc.Register(ctx, ports.RegisterRequest{Email: "john@example.com", Password: "secret1"})
	assert.Nil(t, user)
	assertAppError(t, err, "AUTH_002")
}

func TestAuthService_Register_RepoError(t *testing.T) {
	svc, userRepo, hashSvc, _ := setupAuthService(t)
	ctx := context.Background()

	userRepo.EXPECT().GetByEmail(ctx, gomock.Any()).Return(nil, nil)
	hashSvc.EXPECT().Hash(gomock.Any()).Return("h", nil)
	userRepo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("boom"))

	_, err := svc.Register(ctx, ports.RegisterRequest{Email: "a@example.com", Password: "secret1"})
	assertAppError(t, err, "SYS_001")
}

func TestAuthService_Register_LosesEmailRace(t *testing.T) {
	svc, userRepo, hashSvc, _ := setupAuthService(t)
	ctx := context.Background()

	// Lookup sees no account, but a concurrent signup claims the email first.
	userRepo.EXPECT().GetByEmail(ctx, "a@example.com").Return(nil, nil)
	hashSvc.EXPECT().Hash(gomock.Any()).Return("h", nil)
	userRepo.EXPECT().Create(ctx, gomock.Any()).Return(fmt.Errorf("create a@example.com: %w", ports.ErrEmailTaken))

	user, err := svc.Register(ctx, ports.RegisterRequest{Email: "a@example.com", Password: "secret1"})
	assert.Nil(t, user)
	assertAppError(t, err, "AUTH_002")
}

func TestAuthService_Register_ConcurrentDuplicates(t *testing.T) {
	ctrl := gomock.NewController(t)
	hashSvc := mocks.NewMockHashService(ctrl)
	hashSvc.EXPECT().Hash(gomock.Any()).Return("h", nil).AnyTimes()
	svc := NewAuthService(memory.NewUserRepo(), hashSvc, mocks.NewMockTokenService(ctrl))

	const n = 16
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Register(context.Background(), ports.RegisterRequest{Email: "same@example.com", Password: "secret1"})
		}(i)
	}
	wg.Wait()

	created := 0
	for _, err := range errs {
		if err == nil {
			created++
			continue
		}
		assertAppError(t, err, "AUTH_002")
	}
	assert.Equal(t, 1, created)
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, userRepo, hashSvc, tokenSvc := setupAuthService(t)
	ctx := context.Background()
	user := existingUser("restaurant@example.com")
	expiry := time.Now().Add(24 * time.Hour)

	userRepo.EXPECT().GetByEmail(ctx, "restaurant@example.com").Return(user, nil)
	hashSvc.EXPECT().Verify("correct_password", "$argon2id$hashed").Return(true, nil)
	tokenSvc.EXPECT().Generate(user.ID, domain.AccountTypeRestaurant).Return("jwt_token_here", expiry, nil)

	token, exp, err := svc.Login(ctx, "restaurant@example.com", "correct_password")
	require.NoError(t, err)
	assert.Equal(t, "jwt_token_here", token)
	assert.Equal(t, expiry, exp)
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	svc, _, _, _ := setupAuthService(t)

	_, _, err := svc.Login(context.Background(), "", "password")
	assertAppError(t, err, "REQ_001")

	_, _, err = svc.Login(context.Background(), "john@example.com", "")
	assertAppError(t, err, "REQ_001")
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	svc, userRepo, _, _ := setupAuthService(t)
	ctx := context.Background()

	userRepo.EXPECT().GetByEmail(ctx, "nobody@example.com").Return(nil, nil)

	_, _, err := svc.Login(ctx, "nobody@example.com", "password")
	assertAppError(t, err, "AUTH_001")
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, userRepo, hashSvc, _ := setupAuthService(t)
	ctx := context.Background()

	userRepo.EXPECT().GetByEmail(ctx, "john@example.com").Return(existingUser("john@example.com"), nil)
	hashSvc.EXPECT().Verify("wrong_password", "$argon2id$hashed").Return(false, nil)

	_, _, err := svc.Login(ctx, "john@example.com", "wrong_password")
	assertAppError(t, err, "AUTH_001")
}

func TestAuthService_Profile_NotFound(t *testing.T) {
	svc, userRepo, _, _ := setupAuthService(t)
	ctx := context.Background()
	id := uuid.New()

	userRepo.EXPECT().GetByID(ctx, id).Return(nil, nil)

	_, err := svc.Profile(ctx, id)
	assertAppError(t, err, "AUTH_004")
}

func TestAuthService_UpdateProfile_RederivesAccountType(t *testing.T) {
	svc, userRepo, _, _ := setupAuthService(t)
	ctx := context.Background()
	user := existingUser("john@example.com")

	userRepo.EXPECT().GetByID(ctx, user.ID).Return(user, nil)
	userRepo.EXPECT().GetByEmail(ctx, "restaurant@example.com").Return(nil, nil)
	userRepo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	got, err := svc.UpdateProfile(ctx, user.ID, "Owner", "Restaurant@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Owner", got.Name)
	assert.Equal(t, "restaurant@example.com", got.Email)
	assert.Equal(t, domain.AccountTypeRestaurant, got.AccountType)
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestAuthService_UpdateProfile_EmailTaken(t *testing.T) {
	svc, userRepo, _, _ := setupAuthService(t)
	ctx := context.Background()
	user := existingUser("john@example.com")

	userRepo.EXPECT().GetByID(ctx, user.ID).Return(user, nil)
	userRepo.EXPECT().GetByEmail(ctx, "jane@example.com").Return(existingUser("jane@example.com"), nil)

	_, err := svc.UpdateProfile(ctx, user.ID, "John", "jane@example.com")
	assertAppError(t, err, "AUTH_002")
}

func TestAuthService_UpdateProfile_LosesEmailRace(t *testing.T) {
	svc, userRepo, _, _ := setupAuthService(t)
	ctx := context.Background()
	user := existingUser("john@example.com")

	userRepo.EXPECT().GetByID(ctx, user.ID).Return(user, nil)
	userRepo.EXPECT().GetByEmail(ctx, "jane@example.com").Return(nil, nil)
	userRepo.EXPECT().Update(ctx, gomock.Any()).Return(fmt.Errorf("update jane@example.com: %w", ports.ErrEmailTaken))

	_, err := svc.UpdateProfile(ctx, user.ID, "John", "jane@example.com")
	assertAppError(t, err, "AUTH_002")
}

func TestAuthService_UpdateProfile_SameEmailSkipsLookup(t *testing.T) {
	svc, userRepo, _, _ := setupAuthService(t)
	ctx := context.Background()
	user := existingUser("john@example.com")

	userRepo.EXPECT().GetByID(ctx, user.ID).Return(user, nil)
	userRepo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	got, err := svc.UpdateProfile(ctx, user.ID, "Johnny", "john@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Johnny", got.Name)
}

func TestAuthService_UpdateProfile_EmptyName(t *testing.T) {
	svc, _, _, _ := setupAuthService(t)

	_, err := svc.UpdateProfile(context.Background(), uuid.New(), "  ", "john@example.com")
	assertAppError(t, err, "REQ_001")
}

func TestAuthService_UpdatePhone(t *testing.T) {
	svc, userRepo, _, _ := setupAuthService(t)
	ctx := context.Background()
	user := existingUser("john@example.com")

	userRepo.EXPECT().GetByID(ctx, user.ID).Return(user, nil)
	userRepo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	got, err := svc.UpdatePhone(ctx, user.ID, " +213 555 12 34 ")
	require.NoError(t, err)
	assert.Equal(t, "+213 555 12 34", got.Phone)

	_, err = svc.UpdatePhone(ctx, user.ID, "")
	assertAppError(t, err, "REQ_001")
}

func TestAuthService_UpdatePreferences(t *testing.T) {
	svc, userRepo, _, _ := setupAuthService(t)
	ctx := context.Background()
	user := existingUser("john@example.com")

	userRepo.EXPECT().GetByID(ctx, user.ID).Return(user, nil)
	userRepo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	prefs := domain.Preferences{Theme: domain.ThemeDark, Language: "ar"}
	got, err := svc.UpdatePreferences(ctx, user.ID, prefs)
	require.NoError(t, err)
	assert.Equal(t, prefs, got.Preferences)
}

func TestAuthService_UpdatePreferences_Invalid(t *testing.T) {
	svc, _, _, _ := setupAuthService(t)
	ctx := context.Background()

	_, err := svc.UpdatePreferences(ctx, uuid.New(), domain.Preferences{Theme: "sepia", Language: "en"})
	assertAppError(t, err, "REQ_001")

	_, err = svc.UpdatePreferences(ctx, uuid.New(), domain.Preferences{Theme: domain.ThemeLight, Language: "de"})
	assertAppError(t, err, "REQ_001")
}
