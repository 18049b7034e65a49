package fetchcache

import (
	"context"
	"sync"
)

// Producer computes the value for a cache key. It is invoked at most once per
// in-flight key.
type Producer[V any] func(ctx context.Context) (V, error)

// Cache is a keyed single-flight store. The zero value is not usable; create
// one with New. The cache has no expiry: entries live until Invalidate or
// Clear, which the owning session calls on teardown.
type Cache[V any] struct {
	mu      sync.Mutex
	entries map[string]*entry[V]
}

type entry[V any] struct {
	ready chan struct{} // closed once value/err are set
	value V
	err   error
}

// New creates an empty cache.
func New[V any]() *Cache[V] {
	return &Cache[V]{
		entries: make(map[string]*entry[V]),
	}
}

// GetOrFetch returns the cached value for key, or runs produce to compute it.
//
// The pending entry is inserted before produce runs, so a concurrent call for
// the same key joins the in-flight fetch instead of starting its own. If
// produce fails, the entry is removed before the error is surfaced; a later
// call re-triggers a fresh fetch rather than returning a cached failure.
//
// The ctx only bounds this caller's wait on someone else's in-flight fetch;
// it does not cancel the producer, which other callers may be sharing.
func (c *Cache[V]) GetOrFetch(ctx context.Context, key string, produce Producer[V]) (V, error) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok {
		c.mu.Unlock()
		select {
		case <-e.ready:
			return e.value, e.err
		case <-ctx.Done():
			var zero V
			return zero, ctx.Err()
		}
	}

	e := &entry[V]{ready: make(chan struct{})}
	c.entries[key] = e
	c.mu.Unlock()

	e.value, e.err = produce(ctx)

	if e.err != nil {
		c.mu.Lock()
		if c.entries[key] == e {
			delete(c.entries, key)
		}
		c.mu.Unlock()
	}
	close(e.ready)

	return e.value, e.err
}

// Invalidate removes the entry for key, if any. An in-flight producer for the
// key is unaffected; its waiters still receive its result.
func (c *Cache[V]) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// Clear removes all entries.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]*entry[V])
	c.mu.Unlock()
}

// Len reports the number of stored entries, pending or resolved.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
