package setup

import (
	"context"
	"fmt"

	"github.com/IsaacDSC/pokecache/internal/cfg"
	"github.com/IsaacDSC/pokecache/internal/fetcher"
	"github.com/IsaacDSC/pokecache/internal/pokeapp"
	"github.com/IsaacDSC/pokecache/internal/pokestore"
	"github.com/IsaacDSC/pokecache/internal/prefetch"
	"github.com/IsaacDSC/pokecache/internal/session"
	"github.com/IsaacDSC/pokecache/pkg/cachemanager"
	"github.com/IsaacDSC/pokecache/pkg/httpclient"
	"github.com/IsaacDSC/pokecache/pkg/logs"
	"github.com/IsaacDSC/pokecache/pkg/publisher"
	"github.com/IsaacDSC/pokecache/pkg/rescache"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

const AppName = "pokecache"

// App holds what the server and the worker share. Running both in one process makes prefetches
// land in the same session caches the API reads from; split processes share only the Redis layer.
type App struct {
	Config   cfg.Config
	Sessions *session.Registry
	Fetcher  *fetcher.Async
	Enqueuer *prefetch.Enqueuer
	Metrics  *prometheus.Registry
	// Forgetter clears the store shared across sessions and processes. Nil without one.
	Forgetter pokeapp.Forgetter
}

type Clients struct {
	Redis redis.UniversalClient
	Mongo *mongo.Client
	Queue publisher.Enqueuer
}

func NewApp(ctx context.Context, conf cfg.Config, clients Clients) (*App, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	metrics, err := rescache.NewPrometheusMetrics(reg)
	if err != nil {
		return nil, fmt.Errorf("register cache metrics: %w", err)
	}

	source, shared, err := newSource(ctx, conf, clients)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: conf,
		Sessions: session.NewRegistry(session.Options{
			MaxSessions: conf.Session.Max,
			IdleTTL:     conf.Session.IdleTTL,
			CacheTTL:    conf.Cache.TTL,
			Metrics:     metrics.For("session"),
			Logger:      logs.Default(),
		}),
		Fetcher: fetcher.NewAsync(source,
			fetcher.WithTimeout(conf.Fetcher.Timeout),
			fetcher.WithDelay(conf.Fetcher.Delay),
		),
		Enqueuer: prefetch.NewEnqueuer(publisher.NewPublisher(clients.Queue), conf.Cache.TTL),
		Metrics:  reg,
	}
	if shared != nil {
		app.Forgetter = shared
	}

	return app, nil
}

// SharesStore reports whether loads go through a store other processes also read.
func (a *App) SharesStore() bool {
	return a.Forgetter != nil
}

func newSource(ctx context.Context, conf cfg.Config, clients Clients) (fetcher.Source, *fetcher.Layered, error) {
	var source fetcher.Source = fetcher.NewPokeAPI(conf.Fetcher.URL, httpclient.New(conf.Fetcher.Timeout))

	switch conf.Fetcher.Source {
	case cfg.SourcePokeAPI:
	case cfg.SourceMongo:
		if clients.Mongo == nil {
			return nil, nil, fmt.Errorf("fetcher source %q needs a mongo client", conf.Fetcher.Source)
		}

		store := pokestore.NewMongoStore(clients.Mongo)
		if err := store.EnsureIndexes(ctx); err != nil {
			return nil, nil, err
		}
		source = pokestore.NewReadThrough(store, source)
	default:
		return nil, nil, fmt.Errorf("unknown fetcher source %q", conf.Fetcher.Source)
	}

	if !conf.Cache.L2Enabled || clients.Redis == nil {
		return source, nil, nil
	}

	strategy := cachemanager.NewStrategy(AppName, conf.Cache.L2TTL, clients.Redis)
	layered := fetcher.NewLayered(source, strategy, conf.Cache.L2TTL)

	return layered, layered, nil
}
