// Copyright (c) 2026 GVDB. All rights reserved.

// Command api is the entry point for the GVDB HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis (optional).
//  5. Run database migrations (idempotent).
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"gvdb/internal/api"
	"gvdb/internal/catalog/actor"
	"gvdb/internal/catalog/production"
	"gvdb/internal/catalog/reference"
	"gvdb/internal/catalog/studio"
	"gvdb/internal/platform/config"
	"gvdb/internal/platform/constants"
	"gvdb/internal/platform/migration"
	pgstore "gvdb/internal/platform/postgres"
	redisstore "gvdb/internal/platform/redis"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "gvdb"))
	slog.SetDefault(log)

	log.Info("[GVDB] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "gvdb"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis (optional) ───────────────────────────────────────────────
	// The catalog runs without Redis; filter-option reads just skip the cache.
	var rdb *goredis.Client
	if cfg.RedisURL != "" {
		rdb, err = redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing redis client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis close error", slog.Any("error", cerr))
			}
		}()
	} else {
		log.Info("redis not configured, filter-options caching disabled")
	}

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Health handlers (wired with real dependency checkers) ──────────
	healthDeps := api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
	}
	if rdb != nil {
		healthDeps.CheckCache = func() error {
			return redisstore.Ping(context.Background(), rdb)
		}
	}
	liveness, readiness := api.NewHealthHandlers(healthDeps, log)

	// ── 7. Domain Wiring ──────────────────────────────────────────────────
	productionRepository := production.NewPostgresRepository(pool)
	productionService := production.NewService(productionRepository, log)
	productionHandler := production.NewHandler(productionService)

	actorRepository := actor.NewPostgresRepository(pool)
	actorService := actor.NewService(actorRepository, log)
	actorHandler := actor.NewHandler(actorService)

	studioRepository := studio.NewPostgresRepository(pool)
	studioService := studio.NewService(studioRepository, rdb, log)
	studioHandler := studio.NewHandler(studioService)

	referenceRepository := reference.NewPostgresRepository(pool)
	referenceService := reference.NewService(referenceRepository, rdb, log)
	referenceHandler := reference.NewHandler(referenceService)

	// ── 8. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Production: productionHandler,
		Actor:      actorHandler,
		Studio:     studioHandler,
		Reference:  referenceHandler,
	}

	// The server context outlives startup; it bounds the rate limiter's
	// cleanup goroutine.
	server := api.NewServer(context.Background(), cfg, log, handlers)

	// ── 9. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
