package fetcher

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/IsaacDSC/pokecache/internal/domain"
	"github.com/IsaacDSC/pokecache/pkg/cachemanager"
	"github.com/IsaacDSC/pokecache/pkg/ctxlogger"
	"golang.org/x/sync/singleflight"
)

const cacheKeyPokemonPrefix = "pokemon"

// Layered answers from a shared store before asking its delegate. Concurrent loads of the
// same name from any session are collapsed into one delegate call.
type Layered struct {
	delegate Source
	cache    cachemanager.Cache
	ttl      time.Duration
	group    singleflight.Group
}

var _ Source = (*Layered)(nil)

// NewLayered stores results for ttl; a non-positive ttl uses the cache default.
func NewLayered(delegate Source, cache cachemanager.Cache, ttl time.Duration) *Layered {
	return &Layered{delegate: delegate, cache: cache, ttl: ttl}
}

func (l *Layered) GetPokemon(ctx context.Context, name string) (domain.Pokemon, error) {
	id := domain.NormalizeName(name)

	v, err, _ := l.group.Do(id, func() (any, error) {
		return l.load(ctx, id, name)
	})
	if err != nil {
		return domain.Pokemon{}, err
	}

	return v.(domain.Pokemon), nil
}

func (l *Layered) load(ctx context.Context, id, name string) (domain.Pokemon, error) {
	ttl := l.ttl
	if ttl <= 0 {
		ttl = l.cache.GetDefaultTTL()
	}

	var (
		pokemon     domain.Pokemon
		fresh       domain.Pokemon
		called      bool
		delegateErr error
	)

	key := l.cache.Key(cacheKeyPokemonPrefix, id)
	err := l.cache.Once(ctx, key, &pokemon, ttl, func(ctx context.Context) (any, error) {
		called = true
		fresh, delegateErr = l.delegate.GetPokemon(ctx, name)
		return fresh, delegateErr
	})

	logger := ctxlogger.GetLogger(ctx)

	switch {
	case err == nil:
		return pokemon, nil
	case delegateErr != nil:
		return domain.Pokemon{}, delegateErr
	case called:
		logger.Warn("failed to store pokemon", "key", key.String(), "error", err)
		return fresh, nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return domain.Pokemon{}, err
	}

	// The shared store could not be read: serve straight from the delegate.
	logger.Warn("pokemon cache unavailable", "key", key.String(), "error", err)
	p, derr := l.delegate.GetPokemon(ctx, name)
	if derr != nil {
		return domain.Pokemon{}, fmt.Errorf("%w (cache: %v)", derr, err)
	}

	return p, nil
}

// Forget drops the stored entry for name so the next load reaches the delegate.
func (l *Layered) Forget(ctx context.Context, name string) error {
	return l.cache.Remove(ctx, l.cache.Key(cacheKeyPokemonPrefix, domain.NormalizeName(name)))
}
