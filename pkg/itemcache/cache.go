package itemcache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache is a small TTL cache in front of classroom item lookups. Items
// change rarely and every classroom ask hits the lookup, so a short TTL
// saves one query per turn without any staleness concern that matters.
type Cache[T any] struct {
	inner *gocache.Cache
}

func New[T any](ttl, cleanupInterval time.Duration) *Cache[T] {
	return &Cache[T]{
		inner: gocache.New(ttl, cleanupInterval),
	}
}

func (c *Cache[T]) Get(key string) (T, bool) {
	var zero T
	val, ok := c.inner.Get(key)
	if !ok {
		return zero, false
	}
	typed, ok := val.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

func (c *Cache[T]) Set(key string, value T) {
	c.inner.Set(key, value, gocache.DefaultExpiration)
}
