package pokestore

import (
	"context"
	"errors"

	"github.com/IsaacDSC/pokecache/internal/domain"
	"github.com/IsaacDSC/pokecache/internal/fetcher"
	"github.com/IsaacDSC/pokecache/pkg/ctxlogger"
)

var errEmptyName = errors.New("empty pokemon name")

type Store interface {
	GetPokemon(ctx context.Context, name string) (domain.Pokemon, error)
	Save(ctx context.Context, pokemon domain.Pokemon) error
}

// ReadThrough answers from the store and fills it from upstream on a miss.
type ReadThrough struct {
	store    Store
	upstream fetcher.Source
}

var _ fetcher.Source = (*ReadThrough)(nil)

// NewReadThrough with a nil upstream serves the store alone.
func NewReadThrough(store Store, upstream fetcher.Source) *ReadThrough {
	return &ReadThrough{store: store, upstream: upstream}
}

func (r *ReadThrough) GetPokemon(ctx context.Context, name string) (domain.Pokemon, error) {
	p, err := r.store.GetPokemon(ctx, name)
	if err == nil || r.upstream == nil || !errors.Is(err, domain.ErrPokemonNotFound) {
		return p, err
	}

	p, err = r.upstream.GetPokemon(ctx, name)
	if err != nil {
		return domain.Pokemon{}, err
	}

	if err := r.store.Save(ctx, p); err != nil {
		ctxlogger.GetLogger(ctx).Warn("failed to keep fetched pokemon", "name", name, "error", err)
	}

	return p, nil
}
