package domain

import (
	"github.com/shopspring/decimal"
)

// BucketKind names one of the three balances a member holds at a restaurant.
type BucketKind string

const (
	BucketWallet BucketKind = "wallet" // currency balance
	BucketDrink  BucketKind = "drink"  // drink points
	BucketMeal   BucketKind = "meal"   // meal points
)

// Buckets lists every bucket in display order.
var Buckets = []BucketKind{BucketWallet, BucketDrink, BucketMeal}

// Valid reports whether k is one of the known buckets.
func (k BucketKind) Valid() bool {
	switch k {
	case BucketWallet, BucketDrink, BucketMeal:
		return true
	}
	return false
}

// IsCurrency reports whether the bucket holds money rather than points.
func (k BucketKind) IsCurrency() bool {
	return k == BucketWallet
}

// Balances holds a member's three buckets at one restaurant.
// Every field is expected to stay >= 0; the store itself does not enforce it.
type Balances struct {
	Wallet      decimal.Decimal `json:"wallet_balance" yaml:"wallet_balance"`
	DrinkPoints decimal.Decimal `json:"drink_points" yaml:"drink_points"`
	MealPoints  decimal.Decimal `json:"meal_points" yaml:"meal_points"`
}

// Get returns the value of one bucket, or zero for an unknown kind.
func (b Balances) Get(kind BucketKind) decimal.Decimal {
	switch kind {
	case BucketWallet:
		return b.Wallet
	case BucketDrink:
		return b.DrinkPoints
	case BucketMeal:
		return b.MealPoints
	}
	return decimal.Zero
}

// Set overwrites exactly one bucket. It returns false for an unknown kind
// and leaves b untouched.
func (b *Balances) Set(kind BucketKind, amount decimal.Decimal) bool {
	switch kind {
	case BucketWallet:
		b.Wallet = amount
	case BucketDrink:
		b.DrinkPoints = amount
	case BucketMeal:
		b.MealPoints = amount
	default:
		return false
	}
	return true
}

// NonNegative reports whether every bucket is >= 0.
func (b Balances) NonNegative() bool {
	return !b.Wallet.IsNegative() && !b.DrinkPoints.IsNegative() && !b.MealPoints.IsNegative()
}

// Restaurant is the merchant context balances are scoped to. ID is unique
// within a session.
type Restaurant struct {
	ID       string   `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Address  string   `json:"address" yaml:"address"`
	Balances Balances `json:"user_balance" yaml:"user_balance"`
}
