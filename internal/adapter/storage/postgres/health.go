package postgres

import (
	"context"
	"fmt"
	"time"
)

const healthTimeout = 2 * time.Second

// HealthCheck implements ports.HealthChecker for the seed database. A
// reachable server with no restaurants counts as unhealthy: new sessions
// would start empty.
type HealthCheck struct {
	pool Pool
}

func NewHealthCheck(pool Pool) *HealthCheck {
	return &HealthCheck{pool: pool}
}

func (h *HealthCheck) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	var n int64
	if err := h.pool.QueryRow(ctx, `SELECT count(*) FROM restaurants`).Scan(&n); err != nil {
		return fmt.Errorf("counting restaurants: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("restaurants table is empty")
	}
	return nil
}

func (h *HealthCheck) Name() string {
	return "postgresql"
}
