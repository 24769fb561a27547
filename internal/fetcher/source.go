package fetcher

import (
	"context"

	"github.com/IsaacDSC/pokecache/internal/domain"
)

// Source loads a pokemon by name, blocking until it has an answer.
type Source interface {
	GetPokemon(ctx context.Context, name string) (domain.Pokemon, error)
}

type SourceFunc func(ctx context.Context, name string) (domain.Pokemon, error)

func (f SourceFunc) GetPokemon(ctx context.Context, name string) (domain.Pokemon, error) {
	return f(ctx, name)
}
