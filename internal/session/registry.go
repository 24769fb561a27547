// Package session keeps one resource cache per logical session. Sessions idle for longer than
// the configured window, or pushed out by the size bound, are dropped together with their cache.
package session

import (
	"strings"
	"sync"
	"time"

	"github.com/IsaacDSC/pokecache/internal/domain"
	"github.com/IsaacDSC/pokecache/pkg/logs"
	"github.com/IsaacDSC/pokecache/pkg/rescache"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// DefaultSession serves callers that do not name a session.
const DefaultSession = "default"

type PokemonCache = rescache.Cache[string, domain.Pokemon]

type Options struct {
	// MaxSessions bounds the number of live sessions. Zero means unbounded.
	MaxSessions int
	// IdleTTL drops sessions not used for this long. Zero keeps them until evicted by size.
	IdleTTL time.Duration
	// CacheTTL is the staleness window of every session cache.
	CacheTTL time.Duration
	Metrics  rescache.Metrics
	Logger   *logs.Logger
	Now      func() time.Time
}

type Registry struct {
	mu       sync.Mutex
	sessions *expirable.LRU[string, *PokemonCache]
	cacheTTL time.Duration
	opts     Options
	logger   *logs.Logger
}

func NewRegistry(opts Options) *Registry {
	if opts.Logger == nil {
		opts.Logger = logs.Default()
	}

	r := &Registry{
		cacheTTL: opts.CacheTTL,
		opts:     opts,
		logger:   opts.Logger.With("component", "session_registry"),
	}

	r.sessions = expirable.NewLRU(opts.MaxSessions, r.onEvict, opts.IdleTTL)

	return r
}

func (r *Registry) onEvict(id string, c *PokemonCache) {
	r.logger.Info("session dropped", "session_id", id, "entries", c.Len())
}

// Get returns the cache of session id, creating it on first use. Using a session restarts its
// idle window.
func (r *Registry) Get(id string) *PokemonCache {
	id = strings.TrimSpace(id)
	if id == "" {
		id = DefaultSession
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.sessions.Get(id); ok {
		r.sessions.Add(id, c)
		return c
	}

	c := rescache.New[string, domain.Pokemon](rescache.Options[string]{
		Name:      "session:" + id,
		TTL:       r.cacheTTL,
		Normalize: domain.NormalizeName,
		Now:       r.opts.Now,
		Metrics:   r.opts.Metrics,
		Logger:    r.opts.Logger.With("session_id", id),
	})
	r.sessions.Add(id, c)

	r.logger.Debug("session created", "session_id", id)

	return c
}

// Delete ends session id. In-flight operations of its cache run to completion unobserved.
func (r *Registry) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sessions.Remove(id)
}

// Configure sets the staleness window of every live session cache and of those created later.
func (r *Registry) Configure(ttl time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cacheTTL = ttl
	for _, c := range r.sessions.Values() {
		c.Configure(ttl)
	}
}

func (r *Registry) Len() int {
	return r.sessions.Len()
}
