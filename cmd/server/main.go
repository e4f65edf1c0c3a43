package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/accessgate/rbac-system/internal/api"
	"github.com/accessgate/rbac-system/internal/infrastructure/bootstrap"
	"github.com/accessgate/rbac-system/internal/infrastructure/config"
	mongodb "github.com/accessgate/rbac-system/internal/infrastructure/db/mongo"
	redisdb "github.com/accessgate/rbac-system/internal/infrastructure/db/redis"
	"github.com/accessgate/rbac-system/internal/infrastructure/queue"
	"github.com/accessgate/rbac-system/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("load configuration: %v", err)
	}

	zlog := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.IsDevelopment(),
	})

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		zlog.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		zlog.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	users := mongodb.NewUserRepository(db)
	if cfg.SeedDemoUsers {
		if err := bootstrap.EnsureUsers(ctx, users, bootstrap.DemoUsers(), zlog); err != nil {
			zlog.Fatal().Err(err).Msg("demo user seeding failed")
		}
	}

	audit := queue.NewAuditDispatcher(0, mongodb.NewAuditRepository(db), zlog)
	audit.Start(ctx)

	e := api.NewRouter(db, rdb, cfg, audit, zlog)

	go func() {
		zlog.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	zlog.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		zlog.Error().Err(err).Msg("graceful shutdown failed")
	}
}
