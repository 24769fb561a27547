package setup

import (
	"errors"
	"net/http"
	"time"

	"github.com/IsaacDSC/pokecache/internal/cfg"
	"github.com/IsaacDSC/pokecache/internal/pokeapp"
	"github.com/IsaacDSC/pokecache/pkg/auth"
	"github.com/IsaacDSC/pokecache/pkg/httpadapter"
	"github.com/IsaacDSC/pokecache/pkg/logs"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewHandler(app *App) http.Handler {
	mux := http.NewServeMux()
	routes := pokeapp.Routes(app.Sessions, app.Fetcher, app.Enqueuer, app.Forgetter)
	httpadapter.Register(mux, guardAdmin(app.Config.Admin, routes)...)
	mux.Handle("GET /metrics", promhttp.HandlerFor(app.Metrics, promhttp.HandlerOpts{Registry: app.Metrics}))

	return CORSMiddleware(LoggerMiddleware(mux))
}

// guardAdmin puts basic auth in front of the cache settings writes when an admin user is configured.
func guardAdmin(admin cfg.Admin, routes []httpadapter.HttpHandle) []httpadapter.HttpHandle {
	if admin.User == "" {
		return routes
	}

	ba := auth.NewBasicAuth(AppName, map[string]string{admin.User: admin.Password})
	for i, route := range routes {
		if route.Path == pokeapp.PathConfigureCache {
			routes[i].Handler = ba.Middleware(route.Handler)
		}
	}

	return routes
}

// StartServer listens in the background; the caller owns shutdown.
func StartServer(app *App) *http.Server {
	server := &http.Server{
		Addr:              app.Config.ApiPort,
		Handler:           NewHandler(app),
		ReadHeaderTimeout: 5 * time.Second,
	}

	logs.Info("Starting API server", "addr", server.Addr)

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logs.Error("API server error", "error", err)
		}
	}()

	return server
}
