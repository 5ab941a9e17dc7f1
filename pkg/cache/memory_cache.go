package cache

import (
	"context"
	"sync"
	"time"
)

// MemoryCache is an in-process Cache bounded by entry count. Eviction is
// FIFO by insertion: GP populations churn fast enough that recency tracking
// buys little over plain rotation.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]float64
	order   []string
	maxSize int
	stats   Stats
}

// NewMemoryCache creates a cache holding at most maxSize entries.
// maxSize <= 0 means unbounded.
func NewMemoryCache(maxSize int) *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]float64),
		maxSize: maxSize,
		stats:   Stats{MaxSize: int64(maxSize)},
	}
}

func (c *MemoryCache) Get(_ context.Context, key string) (float64, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stats.LastAccess = time.Now()
	fitness, ok := c.entries[key]
	if ok {
		c.stats.Hits++
	} else {
		c.stats.Misses++
	}
	return fitness, ok, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, fitness float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists {
		if c.maxSize > 0 && len(c.entries) >= c.maxSize {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.entries, oldest)
		}
		c.order = append(c.order, key)
	}
	c.entries[key] = fitness
	c.stats.Sets++
	c.stats.Size = int64(len(c.entries))
	c.stats.LastAccess = time.Now()
	return nil
}

func (c *MemoryCache) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats
}

func (c *MemoryCache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]float64)
	c.order = nil
	c.stats.Size = 0
	return nil
}
