package pokeapp

import (
	"encoding/json"
	"net/http"

	"github.com/IsaacDSC/pokecache/pkg/auth"
	"github.com/IsaacDSC/pokecache/pkg/ctxlogger"
	"github.com/IsaacDSC/pokecache/pkg/httpadapter"
	"github.com/IsaacDSC/pokecache/pkg/intertime"
	"github.com/IsaacDSC/pokecache/pkg/queryparser"
)

const (
	PathConfigureCache = "PUT /api/v1/cache"

	scopeSession = "session"
	scopeAll     = "all"
)

type cacheSettings struct {
	SessionID string             `json:"session_id"`
	Entries   int                `json:"entries"`
	TTL       intertime.Duration `json:"ttl"`
	Sessions  int                `json:"sessions"`
}

type configureCacheQuery struct {
	Scope string `query:"scope"`
}

func writeCacheSettings(w http.ResponseWriter, sessions Sessions, id string) {
	c := sessions.Get(id)
	httpadapter.WriteJSON(w, http.StatusOK, cacheSettings{
		SessionID: id,
		Entries:   c.Len(),
		TTL:       intertime.Duration(c.TTL()),
		Sessions:  sessions.Len(),
	})
}

func GetCacheSettings(sessions Sessions) httpadapter.HttpHandle {
	return httpadapter.HttpHandle{
		Path: "GET /api/v1/cache",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			writeCacheSettings(w, sessions, sessionID(w, r))
		},
	}
}

// ConfigureCache sets the staleness window of the caller's session, or of every session with
// ?scope=all. A non-positive ttl restores the default.
func ConfigureCache(sessions Sessions) httpadapter.HttpHandle {
	return httpadapter.HttpHandle{
		Path: PathConfigureCache,
		Handler: func(w http.ResponseWriter, r *http.Request) {
			id := sessionID(w, r)

			q := configureCacheQuery{Scope: scopeSession}
			if err := queryparser.Parse(r.URL.Query(), &q); err != nil || (q.Scope != scopeSession && q.Scope != scopeAll) {
				http.Error(w, "invalid scope parameter", http.StatusBadRequest)
				return
			}

			var payload struct {
				TTL intertime.Duration `json:"ttl"`
			}
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
				http.Error(w, "invalid payload", http.StatusBadRequest)
				return
			}

			if q.Scope == scopeAll {
				sessions.Configure(payload.TTL.Std())
			} else {
				sessions.Get(id).Configure(payload.TTL.Std())
			}

			l := ctxlogger.GetLogger(r.Context())
			if user, ok := auth.UserFromContext(r.Context()); ok {
				l = l.With("user", user)
			}
			l.Info("cache reconfigured", "session_id", id, "scope", q.Scope, "ttl", payload.TTL.String())

			writeCacheSettings(w, sessions, id)
		},
	}
}

// EndSession drops the caller's session together with its cache.
func EndSession(sessions Sessions) httpadapter.HttpHandle {
	return httpadapter.HttpHandle{
		Path: "DELETE /api/v1/cache",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			id := sessionID(w, r)
			removed := sessions.Delete(id)
			ctxlogger.GetLogger(r.Context()).Info("session ended", "session_id", id, "removed", removed)

			w.WriteHeader(http.StatusNoContent)
		},
	}
}
