package pokeapp

import "github.com/IsaacDSC/pokecache/pkg/httpadapter"

// Routes lists the API handles. forgetter may be nil when no store is shared between sessions.
func Routes(sessions Sessions, fetch Fetcher, prefetcher Prefetcher, forgetter Forgetter) []httpadapter.HttpHandle {
	return []httpadapter.HttpHandle{
		GetHealthCheckHandler(),
		GetPokemon(sessions, fetch),
		InvalidatePokemon(sessions, forgetter),
		PrefetchPokemon(prefetcher),
		GetCacheSettings(sessions),
		ConfigureCache(sessions),
		EndSession(sessions),
	}
}
