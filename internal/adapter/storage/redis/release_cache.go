package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// ReleaseCache implements ports.ReleaseCache. Keys are namespaced under
// "release:" and expire on their own.
type ReleaseCache struct {
	client *goredis.Client
	prefix string
}

func NewReleaseCache(client *goredis.Client) *ReleaseCache {
	return &ReleaseCache{
		client: client,
		prefix: "release:",
	}
}

// Get returns nil, nil for a key that was never stored or has expired.
func (c *ReleaseCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis release get: %w", err)
	}
	return val, nil
}

// Set stores the first response for key. A later Set for the same key is a
// no-op, so a retried gesture always replays the original outcome.
func (c *ReleaseCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := c.client.SetArgs(ctx, c.prefix+key, value, goredis.SetArgs{Mode: "NX", TTL: ttl}).Err()
	if err != nil && !errors.Is(err, goredis.Nil) {
		return fmt.Errorf("redis release set: %w", err)
	}
	return nil
}
