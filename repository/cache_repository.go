package repository

import (
	"context"
	"time"
)

// CacheRepository stores opaque payloads for a limited time. A miss is
// reported through the boolean, not as an error.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
