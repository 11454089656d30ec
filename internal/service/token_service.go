package service

import (
	"errors"
	"fmt"
	"time"

	"loyalty-rewards/internal/core/domain"
	"loyalty-rewards/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// memberClaims is the JWT body: standard claims plus the account type the
// app uses to pick its home screen.
type memberClaims struct {
	AccountType domain.AccountType `json:"account_type"`
	jwt.RegisteredClaims
}

// JWTTokenService implements ports.TokenService using HS256 JWT.
type JWTTokenService struct {
	secret []byte
	expiry time.Duration
	issuer string
	parser *jwt.Parser
	now    func() time.Time
}

// NewJWTTokenService creates a new JWT token service.
func NewJWTTokenService(secret string, expiry time.Duration, issuer string) *JWTTokenService {
	return &JWTTokenService{
		secret: []byte(secret),
		expiry: expiry,
		issuer: issuer,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(issuer),
			jwt.WithExpirationRequired(),
		),
		now: time.Now,
	}
}

// Generate signs a token for the member. The expiry is returned so the
// client can schedule a re-login.
func (s *JWTTokenService) Generate(userID uuid.UUID, accountType domain.AccountType) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.expiry)

	claims := memberClaims{
		AccountType: accountType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing token: %w", err)
	}
	return signed, expiresAt, nil
}

// Validate checks signature, issuer and expiry and returns the member
// identity. Unknown account types read as a regular user.
func (s *JWTTokenService) Validate(tokenString string) (*ports.TokenClaims, error) {
	var claims memberClaims
	token, err := s.parser.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID in token: %w", err)
	}

	accountType := domain.AccountTypeUser
	if claims.AccountType == domain.AccountTypeRestaurant {
		accountType = domain.AccountTypeRestaurant
	}

	return &ports.TokenClaims{
		UserID:      userID,
		AccountType: accountType,
	}, nil
}
