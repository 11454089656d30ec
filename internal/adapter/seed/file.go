package seed

import (
	"context"
	"fmt"
	"os"

	"loyalty-rewards/internal/core/domain"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// FileSource reads restaurants from a YAML document of the form:
//
//	restaurants:
//	  - id: "1"
//	    name: Café Central
//	    address: 123 Coffee Street, Downtown
//	    wallet_balance: 150.75
//	    drink_points: 25
//	    meal_points: 12
//
// The file is re-read on every Load.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Name() string { return "file:" + s.path }

type fileDoc struct {
	Restaurants []fileRestaurant `yaml:"restaurants"`
}

// Balances are decoded as text so no precision is lost to float64.
type fileRestaurant struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	Address string `yaml:"address"`
	Wallet  string `yaml:"wallet_balance"`
	Drink   string `yaml:"drink_points"`
	Meal    string `yaml:"meal_points"`
}

func (s *FileSource) Load(_ context.Context) ([]domain.Restaurant, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}
	return Parse(raw)
}

// Parse decodes and validates a seed document.
func Parse(raw []byte) ([]domain.Restaurant, error) {
	var doc fileDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decoding seed yaml: %w", err)
	}

	seen := make(map[string]struct{}, len(doc.Restaurants))
	out := make([]domain.Restaurant, 0, len(doc.Restaurants))
	for i, fr := range doc.Restaurants {
		if fr.ID == "" {
			return nil, fmt.Errorf("restaurant #%d: missing id", i+1)
		}
		if _, dup := seen[fr.ID]; dup {
			return nil, fmt.Errorf("restaurant %q: duplicate id", fr.ID)
		}
		seen[fr.ID] = struct{}{}

		var b domain.Balances
		for _, f := range []struct {
			name string
			raw  string
			dst  *decimal.Decimal
		}{
			{"wallet_balance", fr.Wallet, &b.Wallet},
			{"drink_points", fr.Drink, &b.DrinkPoints},
			{"meal_points", fr.Meal, &b.MealPoints},
		} {
			v, err := parseBalance(f.raw)
			if err != nil {
				return nil, fmt.Errorf("restaurant %q: %s: %w", fr.ID, f.name, err)
			}
			*f.dst = v
		}

		out = append(out, domain.Restaurant{
			ID:       fr.ID,
			Name:     fr.Name,
			Address:  fr.Address,
			Balances: b,
		})
	}
	return out, nil
}

func parseBalance(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, err
	}
	if v.IsNegative() {
		return decimal.Zero, fmt.Errorf("negative balance %s", raw)
	}
	return v, nil
}
