package domain

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount parse failures. Both are reported to members as an invalid amount.
var (
	ErrAmountNotNumber   = errors.New("amount is not a number")
	ErrAmountNotPositive = errors.New("amount must be greater than zero")
)

// Bounds on what ParseAmount accepts. Comparing a decimal against a balance
// rescales it to a common exponent, so an input like "1e2000000000" would
// otherwise build a gigantic big.Int.
const (
	minAmountExponent = -8
	maxAmountExponent = 12
	maxAmountDigits   = 20
)

// ParseAmount turns user input into a strictly positive decimal.
func ParseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, ErrAmountNotPositive
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, ErrAmountNotNumber
	}
	if exp := amount.Exponent(); exp < minAmountExponent || exp > maxAmountExponent || amount.NumDigits() > maxAmountDigits {
		return decimal.Zero, ErrAmountNotNumber
	}
	if !amount.IsPositive() {
		return decimal.Zero, ErrAmountNotPositive
	}
	return amount, nil
}

// PaymentIntent is the unconfirmed request formed while a member drags the
// slider. It is never stored.
type PaymentIntent struct {
	RestaurantID string
	Bucket       BucketKind
	Requested    decimal.Decimal
	Available    decimal.Decimal
}

// Confirmable reports whether the requested amount fits the available balance.
func (i PaymentIntent) Confirmable() bool {
	return i.Requested.IsPositive() && i.Requested.LessThanOrEqual(i.Available)
}

// Remaining is the balance left after the intent is applied.
func (i PaymentIntent) Remaining() decimal.Decimal {
	return i.Available.Sub(i.Requested)
}

// Debit records one applied payment.
type Debit struct {
	RestaurantID string          `json:"restaurant_id"`
	Bucket       BucketKind      `json:"bucket"`
	Amount       decimal.Decimal `json:"amount"`
	Before       decimal.Decimal `json:"balance_before"`
	After        decimal.Decimal `json:"balance_after"`
}
