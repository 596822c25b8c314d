package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"arclean_orcamentos/internal/adapter/http/routes"
	"arclean_orcamentos/internal/adapter/persistence/repository"
	"arclean_orcamentos/internal/config"
	"arclean_orcamentos/internal/infrastructure/database"
	"arclean_orcamentos/internal/infrastructure/logger"
	"arclean_orcamentos/internal/infrastructure/metrics"
	"arclean_orcamentos/internal/usecase"
	"arclean_orcamentos/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// @title           ArClean Orçamentos API
// @version         1.0
// @description     Local data layer of the ArClean quoting tool: service catalog, quotes, OS numbering and backups.

// @host localhost:8080

// @BasePath  /v1

const shutdownTimeout = 10 * time.Second

func main() {
	configPath := flag.String("config", "config.yaml", "path to an optional config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}

	root := logger.New(cfg.App.Env, cfg.Log.Level)
	if cfg.App.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := openStore(ctx, cfg, logger.Component(root, "store"))
	defer func() {
		if err := store.Close(); err != nil {
			root.WithError(err).Warn("failed to close record store")
		}
	}()

	opts := []usecase.AppStateOption{}
	var metricsHandler http.Handler
	if cfg.Metrics.Enabled {
		opts = append(opts, usecase.WithMetrics(metrics.NewPrometheus(prometheus.DefaultRegisterer)))
		metricsHandler = promhttp.Handler()
	}

	app := usecase.NewAppState(store, logger.Component(root, "app_state"), opts...)
	if err := app.Init(ctx); err != nil {
		root.WithError(err).Warn("serving defaults; changes will fail until the store recovers")
	}

	router := routes.NewRouter(routes.Dependencies{
		AppState: app,
		Log:      logger.Component(root, "http"),
		Metrics:  metricsHandler,
	})

	srv := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}
	go func() {
		root.WithField("addr", cfg.HTTP.Addr).Info("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			root.WithError(err).Fatal("failed to start the application")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		root.WithError(err).Error("graceful shutdown failed")
	}
}

// openStore opens the configured record store. When the durable medium cannot
// be reached the process keeps running on the in-memory store.
func openStore(ctx context.Context, cfg config.Config, log *logrus.Entry) interfaces.IRecordStore {
	log = log.WithField("driver", cfg.Store.Driver)

	var (
		store interfaces.IRecordStore
		err   error
	)
	switch cfg.Store.Driver {
	case config.DriverMemory:
		return repository.NewMemoryRecordStore()
	case config.DriverDynamoDB:
		store, err = openDynamo(ctx, cfg.Store.TablePrefix)
	default:
		store, err = openSQLite(ctx, cfg.Store.Path, log)
	}
	if err != nil {
		log.WithError(err).Error("record store unavailable; falling back to memory, nothing will persist")
		return repository.NewMemoryRecordStore()
	}
	log.Info("record store opened")
	return store
}

func openSQLite(ctx context.Context, path string, log *logrus.Entry) (interfaces.IRecordStore, error) {
	db, err := database.OpenSQLite(ctx, path, log)
	if err != nil {
		return nil, err
	}
	return repository.NewSQLiteRecordStore(db), nil
}

func openDynamo(ctx context.Context, prefix string) (interfaces.IRecordStore, error) {
	ddb, err := database.ConnectDynamoDB(ctx)
	if err != nil {
		return nil, err
	}
	store, err := repository.NewDynamoRecordStore(ctx, ddb, prefix)
	if err != nil {
		return nil, err
	}
	return store, nil
}
