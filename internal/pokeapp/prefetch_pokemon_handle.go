package pokeapp

import (
	"net/http"

	"github.com/IsaacDSC/pokecache/internal/domain"
	"github.com/IsaacDSC/pokecache/pkg/ctxlogger"
	"github.com/IsaacDSC/pokecache/pkg/httpadapter"
)

// PrefetchPokemon schedules a background fetch into the session's cache.
func PrefetchPokemon(prefetcher Prefetcher) httpadapter.HttpHandle {
	return httpadapter.HttpHandle{
		Path: "POST /api/v1/pokemon/{name}/prefetch",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			id := sessionID(w, r)
			name := r.PathValue("name")
			if domain.NormalizeName(name) == "" {
				http.Error(w, "pokemon name is required", http.StatusBadRequest)
				return
			}

			if err := prefetcher.Enqueue(ctx, id, name); err != nil {
				ctxlogger.GetLogger(ctx).Error("failed to schedule prefetch", "name", name, "error", err)
				http.Error(w, "failed to schedule prefetch", http.StatusInternalServerError)
				return
			}

			httpadapter.WriteJSON(w, http.StatusAccepted, statusResponse{Status: "scheduled"})
		},
	}
}
