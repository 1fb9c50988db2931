// Package cache provides a small bounded cache keyed by raw query text.
package cache

import (
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
)

// Cache maps raw query strings to values computed from them, such as parsed
// trees. Entries are keyed by the xxhash of the query; the query text is kept
// alongside the value so that hash collisions are treated as misses.
//
// When the cache reaches its capacity the entire map is replaced rather than
// tracking individual entry ages. This suits a small number of distinct query
// templates repeated many times.
//
// All methods are safe for concurrent use. Stored values are shared between
// callers and must not be modified.
type Cache[V any] struct {
	mu     sync.RWMutex
	items  map[uint64]entry[V]
	max    int
	hits   atomic.Uint64
	misses atomic.Uint64
}

type entry[V any] struct {
	key   string
	value V
}

// New creates a cache holding at most size entries. A size below one yields
// a cache that stores nothing.
func New[V any](size int) *Cache[V] {
	if size < 0 {
		size = 0
	}
	return &Cache[V]{
		items: make(map[uint64]entry[V], size),
		max:   size,
	}
}

// Get returns the value stored for key.
func (c *Cache[V]) Get(key string) (V, bool) {
	h := xxhash.Sum64String(key)

	c.mu.RLock()
	e, ok := c.items[h]
	c.mu.RUnlock()

	if !ok || e.key != key {
		c.misses.Add(1)
		var zero V
		return zero, false
	}
	c.hits.Add(1)
	return e.value, true
}

// Put stores value for key, evicting everything first if the cache is full.
func (c *Cache[V]) Put(key string, value V) {
	if c.max == 0 {
		return
	}
	h := xxhash.Sum64String(key)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[h]; !exists && len(c.items) >= c.max {
		c.items = make(map[uint64]entry[V], c.max)
	}
	c.items[h] = entry[V]{key: key, value: value}
}

// GetOrCompute returns the cached value for key, calling compute and caching
// its result on a miss. Errors are returned without being cached. The second
// result reports whether the value came from the cache.
func (c *Cache[V]) GetOrCompute(key string, compute func(string) (V, error)) (V, bool, error) {
	if v, ok := c.Get(key); ok {
		return v, true, nil
	}

	v, err := compute(key)
	if err != nil {
		return v, false, err
	}
	c.Put(key, v)
	return v, false, nil
}

// Len returns the number of entries currently stored.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Stats returns the number of hits and misses observed by Get.
func (c *Cache[V]) Stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}
