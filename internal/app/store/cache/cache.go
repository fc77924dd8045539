// Package cache is a small read-through cache over the content
// collections. Pages serve from it within a staleness window; every
// admin mutation invalidates the touched key so the next read reloads.
package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Staleness windows by how often the underlying data changes.
const (
	// TTLStatic never expires on its own; the entry lives until an
	// explicit Invalidate.
	TTLStatic = gocache.NoExpiration
	// TTLFrequent is for data edited routinely (events, news, member
	// profiles).
	TTLFrequent = 5 * time.Minute
	// TTLModerate is for data edited occasionally (gallery, leadership).
	TTLModerate = 10 * time.Minute
)

// Well-known cache keys. Mutating handlers must invalidate the key for
// every collection they touch.
const (
	KeyEvents     = "events"
	KeyNews       = "news"
	KeyGallery    = "gallery"
	KeyLeadership = "leadership"
	KeyDirectory  = "directory"
)

type Cache struct {
	c *gocache.Cache
}

func New() *Cache {
	return &Cache{c: gocache.New(gocache.NoExpiration, 10*time.Minute)}
}

// Invalidate drops the given keys. Missing keys are fine.
func (c *Cache) Invalidate(keys ...string) {
	for _, k := range keys {
		c.c.Delete(k)
	}
}

// GetOrLoad returns the cached value for key, calling load on a miss
// and storing the result for ttl. Concurrent misses may each call
// load; the writes are idempotent so last-write-wins is acceptable
// within the staleness window.
func GetOrLoad[T any](ctx context.Context, c *Cache, key string, ttl time.Duration, load func(context.Context) (T, error)) (T, error) {
	if v, ok := c.c.Get(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}

	v, err := load(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	c.c.Set(key, v, ttl)
	return v, nil
}
