package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restaurantColumns() []string {
	return []string{"id", "name", "address", "wallet_balance", "drink_points", "meal_points"}
}

func TestRestaurantSource_Load(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	rows := pgxmock.NewRows(restaurantColumns()).
		AddRow("1", "Café Central", "123 Coffee Street, Downtown", "150.75", "25.00", "12.00").
		AddRow("2", "Pizza Palace", "456 Italian Avenue, City Center", "89.50", "18.00", "8.00")
	mock.ExpectQuery("SELECT id, name, address").WillReturnRows(rows)

	src := NewRestaurantSource(mock)
	assert.Equal(t, "postgres", src.Name())

	list, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Café Central", list[0].Name)
	assert.True(t, list[0].Balances.Wallet.Equal(decimal.RequireFromString("150.75")))
	assert.True(t, list[1].Balances.DrinkPoints.Equal(decimal.NewFromInt(18)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRestaurantSource_Empty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT id, name, address").WillReturnRows(pgxmock.NewRows(restaurantColumns()))

	list, err := NewRestaurantSource(mock).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRestaurantSource_QueryError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT id, name, address").WillReturnError(errors.New("connection refused"))

	_, err = NewRestaurantSource(mock).Load(context.Background())
	assert.ErrorContains(t, err, "query restaurants")
}

func TestRestaurantSource_BadValues(t *testing.T) {
	tests := []struct {
		name string
		row  []any
	}{
		{"unparsable", []any{"1", "A", "", "abc", "0", "0"}},
		{"negative", []any{"1", "A", "", "10", "-1", "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			mock.ExpectQuery("SELECT id, name, address").
				WillReturnRows(pgxmock.NewRows(restaurantColumns()).AddRow(tt.row...))

			_, err = NewRestaurantSource(mock).Load(context.Background())
			assert.Error(t, err)
		})
	}
}

func TestHealthCheck(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	hc := NewHealthCheck(mock)
	assert.Equal(t, "postgresql", hc.Name())

	countQuery := regexp.QuoteMeta(`SELECT count(*) FROM restaurants`)

	mock.ExpectQuery(countQuery).WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))
	assert.NoError(t, hc.Ping(context.Background()))

	mock.ExpectQuery(countQuery).WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))
	assert.ErrorContains(t, hc.Ping(context.Background()), "empty")

	mock.ExpectQuery(countQuery).WillReturnError(errors.New("down"))
	assert.ErrorContains(t, hc.Ping(context.Background()), "counting restaurants")

	assert.NoError(t, mock.ExpectationsWereMet())
}
