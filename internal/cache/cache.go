// Package cache stores deterministic analysis responses in a key-value
// store. Task workflows are never cached; store failures degrade to a
// miss rather than failing the request.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/url"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/textwave/textwave-go/internal/db"
)

const keyPrefix = "textwave:analysis:"

// DefaultTTL bounds the lifetime of cached responses.
const DefaultTTL = 24 * time.Hour

// store is the consumer interface for the cache.
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Cache wraps a key-value store with JSON encoding and hit/miss metrics.
type Cache struct {
	store  store
	ttl    time.Duration
	total  *prometheus.CounterVec
	logger *zap.Logger
}

// New creates a cache. total is a counter vec with label "result"
// ("hit"/"miss"); nil disables counting.
func New(s store, ttl time.Duration, total *prometheus.CounterVec, logger *zap.Logger) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cache{store: s, ttl: ttl, total: total, logger: logger}
}

// Key derives a cache key from the request shape. body must be
// JSON-serializable; a marshal failure yields a key that never matches.
func Key(endpoint string, params url.Values, body any) string {
	h := sha256.New()
	h.Write([]byte(endpoint))
	h.Write([]byte{0})
	h.Write([]byte(params.Encode()))
	h.Write([]byte{0})
	if data, err := json.Marshal(body); err == nil {
		h.Write(data)
	}
	return keyPrefix + hex.EncodeToString(h.Sum(nil))
}

// Get loads a cached response into out. Returns false on miss or any
// store/decode problem.
func (c *Cache) Get(ctx context.Context, key string, out any) bool {
	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			c.logger.Warn("failed to read cached response", zap.String("key", key), zap.Error(err))
		}
		c.inc("miss")
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		c.logger.Warn("failed to parse cached response", zap.String("key", key), zap.Error(err))
		c.inc("miss")
		return false
	}
	c.inc("hit")
	return true
}

// Put stores a response. Failures are logged, not propagated.
func (c *Cache) Put(ctx context.Context, key string, val any) {
	data, err := json.Marshal(val)
	if err != nil {
		c.logger.Warn("failed to encode response for cache", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.store.SetWithTTL(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("failed to cache response", zap.String("key", key), zap.Error(err))
	}
}

func (c *Cache) inc(result string) {
	if c.total != nil {
		c.total.WithLabelValues(result).Inc()
	}
}
