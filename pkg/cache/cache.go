package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss reports an absent or expired key. Callers treat a miss
// as "compute fresh", never as a failure.
var ErrCacheMiss = errors.New("cache: key not found")

// Service memoizes per-document tone analyses. Values round-trip
// through JSON so the in-memory and Redis backends behave identically.
type Service interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, keys ...string) error
	Exists(ctx context.Context, keys ...string) (bool, error)
	Close() error
}
