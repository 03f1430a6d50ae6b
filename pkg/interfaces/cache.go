package interfaces

import "context"

// CacheInvalidator drops cached menu reads. Stores backed by a cache layer
// implement it so editors can force a reload after out-of-band writes.
type CacheInvalidator interface {
	InvalidateCache(ctx context.Context) error
}
