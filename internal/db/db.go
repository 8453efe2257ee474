// Package db defines the key-value store facade backing the analysis
// response cache.
package db

import (
	"context"
	"time"
)

// Store is the database facade used by the cache layer. Ping doubles as
// the health probe surfaced by the gateway.
type Store interface {
	Pinger
	KVStore
	Close()
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// KVStore provides the key-value operations the cache needs. Entries
// always carry a TTL, so there is no unbounded Set.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
