package postgres

import (
	"context"
	"fmt"

	"loyalty-rewards/internal/core/domain"

	"github.com/shopspring/decimal"
)

// RestaurantSource implements ports.RestaurantSource over a read-only
// restaurants table:
//
//	CREATE TABLE restaurants (
//	    id             TEXT PRIMARY KEY,
//	    name           TEXT NOT NULL,
//	    address        TEXT NOT NULL DEFAULT '',
//	    wallet_balance NUMERIC(12,2) NOT NULL DEFAULT 0,
//	    drink_points   NUMERIC(12,2) NOT NULL DEFAULT 0,
//	    meal_points    NUMERIC(12,2) NOT NULL DEFAULT 0
//	);
type RestaurantSource struct {
	pool Pool
}

func NewRestaurantSource(pool Pool) *RestaurantSource {
	return &RestaurantSource{pool: pool}
}

func (s *RestaurantSource) Name() string { return "postgres" }

// Load reads every restaurant ordered by id. Balances are selected as text
// and parsed as decimals so NUMERIC precision survives.
func (s *RestaurantSource) Load(ctx context.Context) ([]domain.Restaurant, error) {
	query := `SELECT id, name, address, wallet_balance::text, drink_points::text, meal_points::text
		FROM restaurants ORDER BY id`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query restaurants: %w", err)
	}
	defer rows.Close()

	var out []domain.Restaurant
	for rows.Next() {
		var (
			r                   domain.Restaurant
			wallet, drink, meal string
		)
		if err := rows.Scan(&r.ID, &r.Name, &r.Address, &wallet, &drink, &meal); err != nil {
			return nil, fmt.Errorf("scan restaurant: %w", err)
		}
		if r.Balances.Wallet, err = decimal.NewFromString(wallet); err != nil {
			return nil, fmt.Errorf("restaurant %s wallet_balance: %w", r.ID, err)
		}
		if r.Balances.DrinkPoints, err = decimal.NewFromString(drink); err != nil {
			return nil, fmt.Errorf("restaurant %s drink_points: %w", r.ID, err)
		}
		if r.Balances.MealPoints, err = decimal.NewFromString(meal); err != nil {
			return nil, fmt.Errorf("restaurant %s meal_points: %w", r.ID, err)
		}
		if !r.Balances.NonNegative() {
			return nil, fmt.Errorf("restaurant %s has a negative balance", r.ID)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate restaurants: %w", err)
	}
	return out, nil
}
