// Package rescache memoizes Resource creation per key for a bounded time.
//
//	GetOrCreate(key, make)
//	  ├─ Normalize key → reject empty identity with ErrEmptyKey
//	  ├─ Lock cache
//	  ├─ Entry exists and now-createdAt <= ttl → return the same Resource (hit)
//	  ├─ Entry exists but is older → drop it (expire)
//	  └─ make(key) → resource.New → store {resource, createdAt: now} (miss)
//
// Every step after normalization runs under one cache-scoped mutex, so concurrent callers for
// the same identity share a single operation and a stale entry is replaced exactly once.
// Staleness is checked lazily on access; there is no background sweep. Dropping an entry
// never cancels its operation, the result is simply no longer observed through the cache.
package rescache

import (
	"errors"
	"sync"
	"time"

	"github.com/IsaacDSC/pokecache/pkg/logs"
	"github.com/IsaacDSC/pokecache/pkg/resource"
)

// DefaultTTL is used when Options.TTL is zero or Configure receives a non-positive duration.
const DefaultTTL = 5 * time.Second

var (
	// ErrEmptyKey is returned when a key normalizes to its zero value. No operation is started.
	ErrEmptyKey = errors.New("rescache: empty key")
	// ErrNilOperation is returned when a MakeFunc returns nil. Nothing is cached.
	ErrNilOperation = errors.New("rescache: make returned a nil operation")
)

// MakeFunc starts the operation backing a fresh Resource. It receives the key as passed by the
// caller, before normalization.
//
// It runs while the cache lock is held: it must return promptly and must not call back into the
// same Cache, or it deadlocks. Long work belongs inside the returned operation. It must return a
// non-nil operation; nil is rejected with ErrNilOperation.
type MakeFunc[K comparable, T any] func(key K) resource.Operation[T]

type Options[K comparable] struct {
	// Name identifies the cache in logs.
	Name string
	// TTL is the maximum age of an entry before it is replaced on the next access.
	TTL time.Duration
	// Normalize maps cosmetic variants of a key to one identity. It must be pure.
	Normalize func(K) K
	// Now is the clock used for entry ages.
	Now     func() time.Time
	Metrics Metrics
	Logger  *logs.Logger
}

type entry[T any] struct {
	resource  *resource.Resource[T]
	createdAt time.Time
}

type Cache[K comparable, T any] struct {
	mu      sync.Mutex
	entries map[K]*entry[T]
	ttl     time.Duration

	name      string
	normalize func(K) K
	now       func() time.Time
	metrics   Metrics
	logger    *logs.Logger
}

func New[K comparable, T any](opts Options[K]) *Cache[K, T] {
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}

	if opts.Normalize == nil {
		opts.Normalize = func(k K) K { return k }
	}

	if opts.Now == nil {
		opts.Now = time.Now
	}

	if opts.Metrics == nil {
		opts.Metrics = NoopMetrics{}
	}

	if opts.Logger == nil {
		opts.Logger = logs.Default()
	}

	if opts.Name == "" {
		opts.Name = "resource_cache"
	}

	return &Cache[K, T]{
		entries:   make(map[K]*entry[T]),
		ttl:       opts.TTL,
		name:      opts.Name,
		normalize: opts.Normalize,
		now:       opts.Now,
		metrics:   opts.Metrics,
		logger:    opts.Logger.With("cache", opts.Name),
	}
}

// Configure sets the staleness window. A non-positive ttl restores DefaultTTL.
// Existing entries are judged against the new window on their next access.
func (c *Cache[K, T]) Configure(ttl time.Duration) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.ttl = ttl
}

func (c *Cache[K, T]) TTL() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ttl
}

// GetOrCreate returns the live Resource for key, or starts a new operation with mk when there is
// none or the existing one is older than the TTL.
func (c *Cache[K, T]) GetOrCreate(key K, mk MakeFunc[K, T]) (*resource.Resource[T], error) {
	id := c.normalize(key)

	var zero K
	if id == zero {
		return nil, ErrEmptyKey
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if e, ok := c.entries[id]; ok {
		if now.Sub(e.createdAt) <= c.ttl {
			c.metrics.Hit()
			return e.resource, nil
		}

		c.metrics.Expire()
		c.logger.Debug("cache entry expired", "key", id, "age", now.Sub(e.createdAt))
		delete(c.entries, id)
	}

	c.metrics.Miss()

	op := mk(key)
	if op == nil {
		return nil, ErrNilOperation
	}

	r := resource.New(op)
	c.entries[id] = &entry[T]{resource: r, createdAt: now}

	c.logger.Debug("cache entry created", "key", id)

	return r, nil
}

// Peek returns the live Resource for key without starting an operation.
func (c *Cache[K, T]) Peek(key K) (*resource.Resource[T], bool) {
	id := c.normalize(key)

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[id]
	if !ok || c.now().Sub(e.createdAt) > c.ttl {
		return nil, false
	}

	return e.resource, true
}

// Invalidate drops the entry for key so the next GetOrCreate starts a fresh operation.
// It reports whether an entry was present.
func (c *Cache[K, T]) Invalidate(key K) bool {
	id := c.normalize(key)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[id]; !ok {
		return false
	}

	delete(c.entries, id)
	c.metrics.Invalidate()
	c.logger.Debug("cache entry invalidated", "key", id)

	return true
}

func (c *Cache[K, T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := len(c.entries)
	c.entries = make(map[K]*entry[T])

	c.logger.Debug("cache cleared", "entries", n)
}

// Len counts stored entries, stale ones included until they are next accessed.
func (c *Cache[K, T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
