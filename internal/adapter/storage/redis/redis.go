// Package redis holds the optional Redis-backed stores: the drag-end replay
// cache and the rate-limit counters. Both degrade to "allow" when Redis is
// unreachable at request time.
package redis

import (
	"context"
	"fmt"
	"time"

	"loyalty-rewards/config"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Short timeouts: every caller falls back to live processing on error.
const (
	dialTimeout = 2 * time.Second
	ioTimeout   = 500 * time.Millisecond
)

// NewClient creates a Redis client and verifies connectivity.
func NewClient(ctx context.Context, cfg config.RedisConfig, log zerolog.Logger) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  dialTimeout,
		ReadTimeout:  ioTimeout,
		WriteTimeout: ioTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis at %s: %w", cfg.Addr(), err)
	}

	log.Info().
		Str("addr", cfg.Addr()).
		Int("db", cfg.DB).
		Dur("io_timeout", ioTimeout).
		Msg("Redis connection established")

	return client, nil
}
