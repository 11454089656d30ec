package dto

import (
	"time"

	"loyalty-rewards/internal/core/domain"

	"github.com/shopspring/decimal"
)

// ---- Auth ----

// RegisterRequest is the request body for sign-up. ConfirmPassword is
// optional; when sent it must match Password.
type RegisterRequest struct {
	Name            string `json:"name" binding:"max=100"`
	Email           string `json:"email" binding:"required,email,max=254"`
	Phone           string `json:"phone_number" binding:"max=32"`
	Password        string `json:"password" binding:"required,min=6,max=128" sanitize:"-"`
	ConfirmPassword string `json:"confirm_password" binding:"omitempty,eqfield=Password" sanitize:"-"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required" sanitize:"-"`
}

type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// ---- Account ----

type UserResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Email       string             `json:"email"`
	Phone       string             `json:"phone_number,omitempty"`
	AccountType domain.AccountType `json:"account_type"`
	Preferences domain.Preferences `json:"preferences"`
	CreatedAt   string             `json:"created_at"`
}

func NewUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:          u.ID.String(),
		Name:        u.Name,
		Email:       u.Email,
		Phone:       u.Phone,
		AccountType: u.AccountType,
		Preferences: u.Preferences,
		CreatedAt:   u.CreatedAt.Format(time.RFC3339),
	}
}

// ProfileResponse is returned by PUT /me. Changing the email can change the
// account type, so a token carrying the new claims is issued with it.
type ProfileResponse struct {
	UserResponse
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

type UpdateProfileRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Email string `json:"email" binding:"required,email,max=254"`
}

type UpdatePhoneRequest struct {
	Phone string `json:"phone_number" binding:"required,max=32"`
}

type UpdatePreferencesRequest struct {
	Theme    string `json:"theme" binding:"required,theme_mode"`
	Language string `json:"language" binding:"required,ui_language"`
}

// ---- Restaurants ----

type BalancesResponse struct {
	Wallet      decimal.Decimal `json:"wallet_balance"`
	DrinkPoints decimal.Decimal `json:"drink_points"`
	MealPoints  decimal.Decimal `json:"meal_points"`
}

type RestaurantResponse struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Address  string           `json:"address"`
	Balances BalancesResponse `json:"user_balance"`
	Selected bool             `json:"selected"`
}

func NewRestaurantResponse(r domain.Restaurant, selected bool) RestaurantResponse {
	return RestaurantResponse{
		ID:      r.ID,
		Name:    r.Name,
		Address: r.Address,
		Balances: BalancesResponse{
			Wallet:      r.Balances.Wallet,
			DrinkPoints: r.Balances.DrinkPoints,
			MealPoints:  r.Balances.MealPoints,
		},
		Selected: selected,
	}
}

type SelectRestaurantRequest struct {
	RestaurantID string `json:"restaurant_id" binding:"required,max=64,safe_id"`
}

// ---- Payment slider ----

type SelectBucketRequest struct {
	Bucket string `json:"bucket" binding:"required,bucket"`
}

// SetAmountRequest carries the amount exactly as typed; it is validated
// only when the slider is released.
type SetAmountRequest struct {
	Amount string `json:"amount" binding:"max=32" sanitize:"-"`
}

type DragUpdateRequest struct {
	DX *float64 `json:"dx" binding:"required"`
}

type BucketOptionResponse struct {
	Bucket  domain.BucketKind `json:"bucket"`
	Balance decimal.Decimal   `json:"balance"`
	Unit    string            `json:"unit"`
}

type SliderViewResponse struct {
	State        domain.SliderState     `json:"state"`
	Offset       float64                `json:"offset"`
	MaxTravel    float64                `json:"max_travel"`
	Cutoff       float64                `json:"cutoff"`
	Progress     float64                `json:"progress"` // offset / max_travel
	RestaurantID string                 `json:"restaurant_id,omitempty"`
	Bucket       domain.BucketKind      `json:"bucket"`
	Amount       string                 `json:"amount"`
	Insufficient bool                   `json:"insufficient"`
	Options      []BucketOptionResponse `json:"options"`
}

func NewSliderViewResponse(v domain.SliderView) SliderViewResponse {
	resp := SliderViewResponse{
		State:        v.State,
		Offset:       v.Offset,
		MaxTravel:    v.MaxTravel,
		Cutoff:       v.Cutoff,
		RestaurantID: v.RestaurantID,
		Bucket:       v.Bucket,
		Amount:       v.Amount,
		Insufficient: v.Insufficient,
		Options:      make([]BucketOptionResponse, 0, len(v.Options)),
	}
	if v.MaxTravel > 0 {
		resp.Progress = v.Offset / v.MaxTravel
	}
	for _, o := range v.Options {
		unit := "points"
		if o.Bucket.IsCurrency() {
			unit = "currency"
		}
		resp.Options = append(resp.Options, BucketOptionResponse{Bucket: o.Bucket, Balance: o.Balance, Unit: unit})
	}
	return resp
}

type DebitResponse struct {
	RestaurantID string            `json:"restaurant_id"`
	Bucket       domain.BucketKind `json:"bucket"`
	Amount       decimal.Decimal   `json:"amount"`
	BalanceAfter decimal.Decimal   `json:"balance_after"`
}

type ReleaseResponse struct {
	Outcome domain.ReleaseOutcome `json:"outcome"`
	Debit   *DebitResponse        `json:"debit,omitempty"`
	View    SliderViewResponse    `json:"view"`
}

func NewReleaseResponse(rel domain.Release, view domain.SliderView) ReleaseResponse {
	resp := ReleaseResponse{Outcome: rel.Outcome, View: NewSliderViewResponse(view)}
	if rel.Debit != nil {
		resp.Debit = &DebitResponse{
			RestaurantID: rel.Debit.RestaurantID,
			Bucket:       rel.Debit.Bucket,
			Amount:       rel.Debit.Amount,
			BalanceAfter: rel.Debit.After,
		}
	}
	return resp
}
