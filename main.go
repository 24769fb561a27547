package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IsaacDSC/pokecache/cmd/setup"
	"github.com/IsaacDSC/pokecache/internal/cfg"
	"github.com/IsaacDSC/pokecache/pkg/logs"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// go run . --service=server
// go run . --service=worker
// go run . --service=all
// go run . --config=config.yaml
func main() {
	service := flag.String("service", "all", "service to run: server, worker or all")
	configPath := flag.String("config", "", "optional yaml/json/toml/env config file")
	flag.Parse()

	switch *service {
	case "server", "worker", "all":
	default:
		logs.Error("unknown service", "service", *service)
		os.Exit(2)
	}

	conf := cfg.Get()
	if *configPath != "" {
		loaded, err := cfg.Load(*configPath)
		if err != nil {
			logs.Error("could not load config", "path", *configPath, "error", err)
			os.Exit(1)
		}
		conf = loaded
	}

	logs.SetDefault(logs.New(logs.WithLevel(logs.ParseLevel(conf.LogLevel))))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	redisClient := redis.NewClient(&redis.Options{Addr: conf.Cache.CacheAddr})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logs.Error("could not reach redis", "addr", conf.Cache.CacheAddr, "error", err)
		os.Exit(1)
	}

	var mongoClient *mongo.Client
	if conf.Fetcher.Source == cfg.SourceMongo {
		client, err := mongo.Connect(options.Client().ApplyURI(conf.ConfigDatabase.DbConn))
		if err != nil {
			logs.Error("could not connect to mongo", "error", err)
			os.Exit(1)
		}
		defer client.Disconnect(context.Background())
		mongoClient = client
	}

	redisOpt := asynq.RedisClientOpt{Addr: conf.Cache.CacheAddr}
	asynqClient := asynq.NewClient(redisOpt)
	defer asynqClient.Close()

	app, err := setup.NewApp(ctx, conf, setup.Clients{
		Redis: redisClient,
		Mongo: mongoClient,
		Queue: asynqClient,
	})
	if err != nil {
		logs.Error("could not build app", "error", err)
		os.Exit(1)
	}

	var worker *asynq.Server
	if *service == "worker" || *service == "all" {
		setup.WarnIsolatedWorker(app, *service == "all")

		worker, err = setup.StartWorker(app, redisOpt)
		if err != nil {
			logs.Error("could not start worker", "error", err)
			os.Exit(1)
		}
	}

	if *service == "server" || *service == "all" {
		server := setup.StartServer(app)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				logs.Error("API server shutdown", "error", err)
			}
		}()
	}

	<-ctx.Done()
	logs.Info("shutting down", "service", *service)

	if worker != nil {
		worker.Shutdown()
	}
}
