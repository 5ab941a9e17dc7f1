// Package cache memoizes fitness scores by canonical tree rendering.
// Elitism and crossover recreate the same genomes constantly, so a run
// re-scores identical trees many times; a cache trades memory for those
// evaluations. Entries never expire: a score is valid for as long as the
// config that produced it.
package cache

import (
	"context"
	"time"
)

// Cache stores fitness scores keyed by a tree's canonical rendering.
type Cache interface {
	// Get retrieves a cached fitness. The second return reports a hit.
	Get(ctx context.Context, key string) (float64, bool, error)

	// Set stores a fitness score.
	Set(ctx context.Context, key string, fitness float64) error

	// Stats returns cache statistics.
	Stats() Stats

	// Close releases any resources held by the cache.
	Close() error
}

// Stats contains cache performance statistics.
type Stats struct {
	Hits       int64
	Misses     int64
	Sets       int64
	Size       int64
	MaxSize    int64
	LastAccess time.Time
}
