package pokeapp

import (
	"context"
	"time"

	"github.com/IsaacDSC/pokecache/internal/domain"
	"github.com/IsaacDSC/pokecache/internal/session"
	"github.com/IsaacDSC/pokecache/pkg/resource"
)

type Fetcher interface {
	Fetch(ctx context.Context, name string) resource.Operation[domain.Pokemon]
}

type Sessions interface {
	Get(id string) *session.PokemonCache
	Delete(id string) bool
	Configure(ttl time.Duration)
	Len() int
}

type Prefetcher interface {
	Enqueue(ctx context.Context, sessionID, name string) error
}

// Forgetter drops a pokemon from a store shared across sessions.
type Forgetter interface {
	Forget(ctx context.Context, name string) error
}
