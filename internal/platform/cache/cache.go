package cache

import (
	"context"
	"time"
)

// Store is a minimal string cache used for response caching.
// Implementations must treat a miss as a normal outcome, not an error.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
