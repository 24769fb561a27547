package fetcher

import (
	"context"
	"fmt"
	"time"

	"github.com/IsaacDSC/pokecache/internal/domain"
	"github.com/IsaacDSC/pokecache/pkg/ctxlogger"
	"github.com/IsaacDSC/pokecache/pkg/resource"
)

// Async turns a blocking Source into operations that back cache resources.
type Async struct {
	source  Source
	timeout time.Duration
	delay   time.Duration
}

type AsyncOption func(*Async)

// WithTimeout bounds each fetch. Zero disables the bound.
func WithTimeout(d time.Duration) AsyncOption {
	return func(a *Async) {
		a.timeout = d
	}
}

// WithDelay holds every fetch back by d before the source is asked.
func WithDelay(d time.Duration) AsyncOption {
	return func(a *Async) {
		a.delay = d
	}
}

func NewAsync(source Source, opts ...AsyncOption) *Async {
	a := &Async{source: source}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Fetch starts loading name and returns at once. The operation keeps ctx values (such as the
// logger) but not its cancellation: it outlives the request that started it and is bounded by
// the configured timeout instead.
func (a *Async) Fetch(ctx context.Context, name string) resource.Operation[domain.Pokemon] {
	ctx = context.WithoutCancel(ctx)

	return resource.Go(ctx, func(ctx context.Context) (domain.Pokemon, error) {
		if a.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, a.timeout)
			defer cancel()
		}

		if a.delay > 0 {
			timer := time.NewTimer(a.delay)
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				return domain.Pokemon{}, fmt.Errorf("fetch %q: %w", name, ctx.Err())
			}
		}

		logger := ctxlogger.GetLogger(ctx)
		start := time.Now()

		p, err := a.source.GetPokemon(ctx, name)
		if err != nil {
			logger.Warn("pokemon fetch failed", "name", name, "error", err, "elapsed_time", time.Since(start))
			return domain.Pokemon{}, err
		}

		logger.Debug("pokemon fetched", "name", name, "elapsed_time", time.Since(start))
		return p, nil
	})
}
