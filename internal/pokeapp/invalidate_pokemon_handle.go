package pokeapp

import (
	"net/http"

	"github.com/IsaacDSC/pokecache/internal/domain"
	"github.com/IsaacDSC/pokecache/pkg/ctxlogger"
	"github.com/IsaacDSC/pokecache/pkg/httpadapter"
)

// InvalidatePokemon drops the session's entry so the next read starts a fresh fetch. When a
// shared store sits behind the fetcher it is cleared too; failing to clear it is only logged.
func InvalidatePokemon(sessions Sessions, forgetter Forgetter) httpadapter.HttpHandle {
	return httpadapter.HttpHandle{
		Path: "DELETE /api/v1/pokemon/{name}",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			l := ctxlogger.GetLogger(ctx)

			id := sessionID(w, r)
			name := r.PathValue("name")
			if domain.NormalizeName(name) == "" {
				http.Error(w, "pokemon name is required", http.StatusBadRequest)
				return
			}

			if forgetter != nil {
				if err := forgetter.Forget(ctx, name); err != nil {
					l.Warn("failed to forget shared pokemon", "name", name, "error", err)
				}
			}

			removed := sessions.Get(id).Invalidate(name)
			l.Info("pokemon invalidated", "name", name, "removed", removed)

			w.WriteHeader(http.StatusNoContent)
		},
	}
}
