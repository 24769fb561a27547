package pokeapp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/IsaacDSC/pokecache/internal/domain"
	"github.com/IsaacDSC/pokecache/pkg/ctxlogger"
	"github.com/IsaacDSC/pokecache/pkg/httpadapter"
	"github.com/IsaacDSC/pokecache/pkg/queryparser"
	"github.com/IsaacDSC/pokecache/pkg/rescache"
	"github.com/IsaacDSC/pokecache/pkg/resource"
)

const retryAfterSeconds = 1

type getPokemonQuery struct {
	Wait    bool          `query:"wait"`
	MaxWait time.Duration `query:"max_wait"`
}

type statusResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
	Retry  string `json:"retry,omitempty"`
}

// GetPokemon answers with whatever the session's resource holds right now. With ?wait=true the
// request is held until the resource settles, the request ends or max_wait elapses.
func GetPokemon(sessions Sessions, fetch Fetcher) httpadapter.HttpHandle {
	return httpadapter.HttpHandle{
		Path: "GET /api/v1/pokemon/{name}",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			l := ctxlogger.GetLogger(ctx)

			id := sessionID(w, r)
			name := r.PathValue("name")
			if domain.NormalizeName(name) == "" {
				http.Error(w, "pokemon name is required", http.StatusBadRequest)
				return
			}

			var q getPokemonQuery
			if err := queryparser.Parse(r.URL.Query(), &q); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}

			res, err := sessions.Get(id).GetOrCreate(name, func(n string) resource.Operation[domain.Pokemon] {
				return fetch.Fetch(ctx, n)
			})
			if errors.Is(err, rescache.ErrEmptyKey) {
				http.Error(w, "pokemon name is required", http.StatusBadRequest)
				return
			}
			if err != nil {
				l.Error("could not start pokemon fetch", "name", name, "error", err)
				http.Error(w, "could not start fetch", http.StatusInternalServerError)
				return
			}

			if q.Wait {
				waitCtx, cancel := ctx, context.CancelFunc(func() {})
				if q.MaxWait > 0 {
					waitCtx, cancel = context.WithTimeout(ctx, q.MaxWait)
				}
				if _, err := resource.Await(waitCtx, res); err != nil && waitCtx.Err() != nil {
					l.Warn("stopped waiting before pokemon settled", "name", name, "error", err)
				}
				cancel()
			}

			result := res.Poll()
			switch result.State {
			case resource.Ready:
				httpadapter.WriteJSON(w, http.StatusOK, result.Value)
			case resource.Failed:
				status := http.StatusBadGateway
				if errors.Is(result.Err, domain.ErrPokemonNotFound) {
					status = http.StatusNotFound
				}

				httpadapter.WriteJSON(w, status, statusResponse{
					Status: result.State.String(),
					Error:  result.Err.Error(),
					Retry:  fmt.Sprintf("DELETE /api/v1/pokemon/%s", name),
				})
			default:
				w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds))
				httpadapter.WriteJSON(w, http.StatusAccepted, statusResponse{Status: result.State.String()})
			}
		},
	}
}
