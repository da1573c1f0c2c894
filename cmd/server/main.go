package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"charter-ops/hangar/internal/api"
	"charter-ops/hangar/internal/common"
	"charter-ops/hangar/internal/config"
	"charter-ops/hangar/internal/db"
	"charter-ops/hangar/internal/logging"
	"charter-ops/hangar/internal/metrics"
	"charter-ops/hangar/internal/routes"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
)

// @title Hangar API
// @version 1.0
// @description Charter flight operations: fleet, crew, trips and cost estimates.
// @host localhost:8080
// @BasePath /
func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Initialize structured logging
	if err := logging.Init(logging.Options{
		AppEnv:    cfg.AppEnv,
		Level:     cfg.Log.Level,
		File:      cfg.Log.File,
		MaxSizeMB: cfg.Log.MaxSizeMB,
	}); err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Hangar starting up",
		"environment", cfg.AppEnv,
		"db_driver", cfg.DB.Driver,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	database, err := db.Open(cfg.DB)
	if err != nil {
		logging.Fatal("Failed to connect to database", "driver", cfg.DB.Driver, "error", err.Error())
	}
	defer database.Close()

	if err := database.Migrate(); err != nil {
		logging.Fatal("Failed to migrate database", "error", err.Error())
	}
	logging.Info("Database ready", "driver", cfg.DB.Driver)

	catalog, err := common.LoadAirportCatalog(cfg.Airports.Path)
	if err != nil {
		logging.Fatal("Failed to load airport catalog", "path", cfg.Airports.Path, "error", err.Error())
	}

	cache := common.NewCacheService(cfg.Cache.SearchTTL, 10*time.Minute)

	var revoked common.RevokedTokenStore = common.NewMemoryTokenStore(cache)
	if cfg.Redis.Addr != "" {
		redisClient := common.NewRedisClient(cfg.Redis)
		defer redisClient.Close()
		revoked = common.NewRedisTokenStore(redisClient)
	} else {
		logging.Warn("Redis not configured, revoked tokens are kept in memory")
	}

	metricsReg := metrics.NewMetricsRegistry(prometheus.DefaultRegisterer)

	deps, err := api.InitDependencies(cfg, api.Infrastructure{
		DB:      database,
		Catalog: catalog,
		Cache:   cache,
		Revoked: revoked,
		Metrics: metricsReg,
	})
	if err != nil {
		logging.Fatal("Failed to initialize dependencies", "error", err.Error())
	}

	upSince := time.Now()
	router := routes.RegisterRoutes(cfg, deps, prometheus.DefaultGatherer, upSince)

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logging.Info("Server starting", "addr", cfg.HTTP.Addr, "environment", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logging.Info("Shutting down server", "timeout", cfg.HTTP.ShutdownTimeout.String())

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logging.Error("Server stopped with error", "error", err.Error())
		return
	}
	logging.Info("Server stopped")
}
