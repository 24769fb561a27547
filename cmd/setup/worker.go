package setup

import (
	"fmt"

	"github.com/IsaacDSC/pokecache/internal/prefetch"
	"github.com/IsaacDSC/pokecache/pkg/asynqsvc"
	"github.com/IsaacDSC/pokecache/pkg/logs"
	"github.com/hibiken/asynq"
)

func NewWorkerMux(app *App) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.Use(AsynqLogger)

	asynqsvc.Register(mux,
		prefetch.GetPrefetchHandle(app.Sessions, app.Fetcher),
	)

	return mux
}

// WarnIsolatedWorker reports, and logs, when a worker running without the API fills session
// caches nobody reads: with no shared store its prefetches never reach the server process.
func WarnIsolatedWorker(app *App, servesAPI bool) bool {
	if servesAPI || app.SharesStore() {
		return false
	}

	logs.Warn("worker prefetches stay in this process: enable the redis cache layer or run --service=all",
		"l2_enabled", app.Config.Cache.L2Enabled,
	)

	return true
}

// StartWorker processes tasks in the background; the caller owns Shutdown.
func StartWorker(app *App, redisOpt asynq.RedisConnOpt) (*asynq.Server, error) {
	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: app.Config.Worker.Concurrency,
		Queues: map[string]int{
			"default": 1,
		},
		ShutdownTimeout: app.Config.Fetcher.Timeout,
	})

	if err := srv.Start(NewWorkerMux(app)); err != nil {
		return nil, fmt.Errorf("could not start worker: %w", err)
	}

	logs.Info("Worker started", "concurrency", app.Config.Worker.Concurrency)

	return srv, nil
}
