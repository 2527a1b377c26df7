package kvstore

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/RecipeBox_Go/internal/metrics"
)

// CachedStore fronts another Store with an expiring LRU.
// Reads fill the cache on hit in the backend; writes go to the backend first
// and only update the cache once they succeed. Absent keys are not cached.
type CachedStore struct {
	next Store
	lru  *expirable.LRU[string, string]
}

// NewCachedStore wraps next. Non-positive size or ttl fall back to the defaults.
func NewCachedStore(next Store, size int, ttl time.Duration) *CachedStore {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedStore{
		next: next,
		lru:  expirable.NewLRU[string, string](size, nil, ttl),
	}
}

// Get implements Store
func (c *CachedStore) Get(ctx context.Context, key string) (string, bool, error) {
	if v, ok := c.lru.Get(key); ok {
		metrics.StorageCacheLookups.WithLabelValues(metrics.ResultHit).Inc()
		return v, true, nil
	}
	metrics.StorageCacheLookups.WithLabelValues(metrics.ResultMiss).Inc()

	v, ok, err := c.next.Get(ctx, key)
	if err != nil || !ok {
		return v, ok, err
	}
	c.lru.Add(key, v)
	return v, true, nil
}

// Set implements Store
func (c *CachedStore) Set(ctx context.Context, key, value string) error {
	if err := c.next.Set(ctx, key, value); err != nil {
		c.lru.Remove(key)
		return err
	}
	c.lru.Add(key, value)
	return nil
}

// Invalidate drops key from the cache so the next read hits the backend
func (c *CachedStore) Invalidate(key string) {
	c.lru.Remove(key)
}

// Ping delegates to the wrapped store
func (c *CachedStore) Ping(ctx context.Context) error {
	return Ping(ctx, c.next)
}

// Close delegates to the wrapped store
func (c *CachedStore) Close() error {
	return Close(c.next)
}
