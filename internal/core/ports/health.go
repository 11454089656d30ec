package ports

import "context"

// HealthChecker reports whether an optional backing dependency (seed
// database, replay cache) is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
	Name() string
}
