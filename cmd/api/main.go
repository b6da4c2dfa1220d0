// @title        Storefront API
// @version      1.0
// @description  Product catalog and user/admin authentication service.
// @BasePath     /
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dropshipping/storefront-api/internal/api"
	"github.com/dropshipping/storefront-api/internal/core/service"
	"github.com/dropshipping/storefront-api/internal/infrastructure/config"
	mongostore "github.com/dropshipping/storefront-api/internal/infrastructure/db/mongo"
	redisstore "github.com/dropshipping/storefront-api/internal/infrastructure/db/redis"
	"github.com/dropshipping/storefront-api/internal/infrastructure/queue"
	"github.com/dropshipping/storefront-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Development(),
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Store connection retries in the background; data routes answer 503
	// until the first successful ping.
	store := mongostore.NewConnector(mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	}, log)
	store.Start(ctx)

	// Redis is a cache only: run without it when unreachable.
	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, catalog cache disabled")
		rdb = nil
	}

	auditRepo := mongostore.NewAuditRepository(store)
	auditService := service.NewAuditService(auditRepo, log)
	dispatcher := queue.NewDispatcher(0, auditService, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(api.Deps{
		Config: cfg,
		Store:  store,
		Redis:  rdb,
		Audit:  dispatcher,
		Logger: log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("http server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server listening")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	if rdb != nil {
		_ = rdb.Close()
	}
	if err := store.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("mongo disconnect failed")
	}
	os.Exit(0)
}
