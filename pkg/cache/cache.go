package cache

import (
	"context"
	"time"
)

// Cache is the contract for the rendered-view cache layer.
// Implementations must treat a miss as (false, nil), not an error.
type Cache interface {
	// Get reads the value at key and unmarshals it into dest.
	// Returns false on a miss; dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key with a TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes the given keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error

	// Ping verifies the backing store is reachable.
	Ping(ctx context.Context) error
}
