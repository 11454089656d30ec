// Package seed provides the restaurants every new payment session starts with.
package seed

import (
	"context"

	"loyalty-rewards/internal/core/domain"

	"github.com/shopspring/decimal"
)

// Builtin serves the demo restaurants compiled into the binary.
type Builtin struct{}

func NewBuiltin() Builtin { return Builtin{} }

func (Builtin) Name() string { return "builtin" }

func (Builtin) Load(_ context.Context) ([]domain.Restaurant, error) {
	return []domain.Restaurant{
		restaurant("1", "Café Central", "123 Coffee Street, Downtown", "150.75", "25", "12"),
		restaurant("2", "Pizza Palace", "456 Italian Avenue, City Center", "89.50", "18", "8"),
		restaurant("3", "Burger Barn", "789 Grill Road, Food District", "203.25", "32", "15"),
	}, nil
}

func restaurant(id, name, address, wallet, drink, meal string) domain.Restaurant {
	return domain.Restaurant{
		ID:      id,
		Name:    name,
		Address: address,
		Balances: domain.Balances{
			Wallet:      decimal.RequireFromString(wallet),
			DrinkPoints: decimal.RequireFromString(drink),
			MealPoints:  decimal.RequireFromString(meal),
		},
	}
}
