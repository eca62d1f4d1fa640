package cache

import (
	"context"
	"time"
)

// NoOpCache is a cache implementation that does nothing.
// Used when caching is disabled or Redis is unavailable: every lookup is a miss.
type NoOpCache struct{}

// NewNoOpCache creates a new no-op cache instance
func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

// GetInterpretation always returns nil (cache miss)
func (c *NoOpCache) GetInterpretation(ctx context.Context, key string) (*Interpretation, error) {
	return nil, nil
}

// SetInterpretation does nothing and always succeeds
func (c *NoOpCache) SetInterpretation(ctx context.Context, key string, entry *Interpretation, ttl time.Duration) error {
	return nil
}

func (c *NoOpCache) Close() error {
	return nil
}
