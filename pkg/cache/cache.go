package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte payloads under string keys.
//
// Implementations must be safe for concurrent use. A miss is reported as
// (nil, false, nil); errors are reserved for backend failures.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Clearer is implemented by caches that can drop every entry they own.
type Clearer interface {
	Clear(ctx context.Context) (int, error)
}

// Default time-to-live values for Figma responses.
const (
	// TTLFile applies to file documents and node lookups. Files are cached
	// per version-independent request, so keep this short.
	TTLFile = time.Hour

	// TTLMetadata applies to variables and comments.
	TTLMetadata = 15 * time.Minute
)
