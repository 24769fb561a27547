package pokeapp

import (
	"net/http"
	"strings"

	"github.com/IsaacDSC/pokecache/internal/session"
)

const HeaderSessionID = "X-Session-ID"

// sessionID reads the caller's session and echoes it on the response.
func sessionID(w http.ResponseWriter, r *http.Request) string {
	id := strings.TrimSpace(r.Header.Get(HeaderSessionID))
	if id == "" {
		id = session.DefaultSession
	}

	w.Header().Set(HeaderSessionID, id)
	return id
}
