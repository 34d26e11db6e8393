// Package metadata is the process-wide key/value client storage used by
// the session layer (current actor, session token). It sits outside the
// entity data-access path and talks to the store directly.
package metadata

import (
	"context"
)

type Repository interface {
	// Get returns the value for key, or nil when absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
