package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"strings"
	"time"

	"github.com/leonardotrapani/gptconsole/internal/filter"
)

// Cache stores query interpretations so repeated queries skip the model
type Cache interface {
	// GetInterpretation retrieves a cached interpretation by key.
	// Returns nil if not found
	GetInterpretation(ctx context.Context, key string) (*Interpretation, error)

	// SetInterpretation stores an interpretation with TTL
	SetInterpretation(ctx context.Context, key string, entry *Interpretation, ttl time.Duration) error

	// Close closes the cache connection
	Close() error
}

// Interpretation is a cached model answer for one query
type Interpretation struct {
	Constraints filter.Constraints `json:"constraints"`
	Criteria    string             `json:"criteria"`
}

// Config selects the cache backend
type Config struct {
	Enabled   bool
	RedisAddr string
	Password  string
	TTL       time.Duration
}

// Key derives the cache key from the catalog scope, the model and the
// normalized query text, so "Cheap  Shoes" and "cheap shoes" share an entry.
// scope identifies what the query was interpreted against; entries never
// cross scopes.
func Key(scope, model, query string) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(query)), " ")
	sum := sha256.Sum256([]byte(scope + "\x00" + model + "\x00" + normalized))
	return hex.EncodeToString(sum[:])
}

// Open returns a Redis cache when enabled and reachable, otherwise a no-op
// cache. It never fails: an unreachable Redis only disables caching.
func Open(cfg Config) Cache {
	if !cfg.Enabled || cfg.RedisAddr == "" {
		return NewNoOpCache()
	}

	c, err := NewRedisCache(cfg.RedisAddr, cfg.Password)
	if err != nil {
		log.Printf("Cache: %v, caching disabled", err)
		return NewNoOpCache()
	}

	log.Printf("Cache: using redis at %s", cfg.RedisAddr)
	return c
}
