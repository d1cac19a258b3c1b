package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/mirror520/users"
	"github.com/mirror520/users/conf"
	"github.com/mirror520/users/persistent"
	"github.com/mirror520/users/pubsub/nats"

	graphqltransport "github.com/mirror520/users/transport/graphql"
	grpctransport "github.com/mirror520/users/transport/grpc"
	httptransport "github.com/mirror520/users/transport/http"
)

func main() {
	app := &cli.App{
		Name:  "users",
		Usage: "User CRUD service over REST, GraphQL and gRPC",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "path",
				Usage:   "working directory",
				EnvVars: []string{"USERS_PATH"},
			},
			&cli.IntFlag{
				Name:    "port",
				Usage:   "REST listener port",
				Value:   3000,
				EnvVars: []string{"PORT"},
			},
		},
		Before: conf.LoadEnv,
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err.Error())
	}
}

func run(cli *cli.Context) error {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer logger.Sync()

	zap.ReplaceGlobals(logger)

	cfg, err := conf.LoadConfig(conf.Path)
	if err != nil {
		return err
	}

	// Store readiness is a startup precondition: a repository that
	// cannot reach its store aborts the process instead of serving
	// listeners that fail on first request.
	repo, err := persistent.NewUserRepository(cfg.Persistent)
	if err != nil {
		return err
	}

	svc := users.NewService(repo)
	svc = users.LoggingMiddleware(logger)(svc)

	if cfg.EventBus.Enabled {
		ps, err := nats.NewPubSub()
		if err != nil {
			return err
		}
		defer ps.Close()

		if err := users.ListenEvents(ps, logger); err != nil {
			return err
		}

		svc = users.EventPublishingMiddleware(ps)(svc)
	}

	endpoints := users.MakeEndpoints(svc)

	// A failed listener is logged and does not take its siblings down;
	// callers must not assume all three transports are up together.
	if cfg.Transports.HTTP.Enabled {
		gin.SetMode(gin.ReleaseMode)

		r := gin.New()
		r.Use(ginzap.Ginzap(logger, time.RFC3339, true))
		r.Use(ginzap.RecoveryWithZap(logger, true))
		r.Use(cors.Default())

		httptransport.SetRouter(r, endpoints)

		go func() {
			addr := fmt.Sprintf(":%d", cfg.Transports.HTTP.Port)
			logger.Info("http listening", zap.String("address", addr))

			if err := r.Run(addr); err != nil {
				logger.Error(err.Error(), zap.String("transport", "http"))
			}
		}()
	}

	if cfg.Transports.GRPC.Enabled {
		go func() {
			addr := cfg.Transports.GRPC.Address
			logger.Info("grpc listening", zap.String("address", addr))

			if err := grpctransport.Run(addr, endpoints); err != nil {
				logger.Error(err.Error(), zap.String("transport", "grpc"))
			}
		}()
	}

	if cfg.Transports.GraphQL.Enabled {
		schema, err := graphqltransport.NewSchema(endpoints)
		if err != nil {
			return err
		}

		mux := http.NewServeMux()
		mux.Handle("/graphql", graphqltransport.NewHandler(schema))

		go func() {
			addr := fmt.Sprintf(":%d", cfg.Transports.GraphQL.Port)
			logger.Info("graphql listening", zap.String("address", addr))

			if err := http.ListenAndServe(addr, mux); err != nil {
				logger.Error(err.Error(), zap.String("transport", "graphql"))
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	return repo.Close()
}
