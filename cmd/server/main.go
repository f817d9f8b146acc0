package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"smat.com/campusapi/internal/bootstrap"
	"smat.com/campusapi/internal/config"
	searchService "smat.com/campusapi/internal/modules/search/service"
	"smat.com/campusapi/internal/server"
	"smat.com/campusapi/pkg/database"
	"smat.com/campusapi/pkg/logger"
	"smat.com/campusapi/pkg/redis"
	"smat.com/campusapi/pkg/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()
	zap.ReplaceGlobals(zl)

	if err := validator.Register(); err != nil {
		zl.Fatal("failed to register validators", zap.Error(err))
	}

	db, err := database.Open(&cfg.Database, zl)
	if err != nil {
		zl.Fatal("failed to open database", zap.Error(err))
	}
	if err := bootstrap.Migrate(db); err != nil {
		zl.Fatal("migration failed", zap.Error(err))
	}

	redisClient, err := redis.NewClient(cfg.RedisURL, zl)
	if err != nil {
		// The service runs without Redis; only the seed lock and health probe use it.
		zl.Warn("Redis unavailable, continuing without it", zap.Error(err))
		redisClient = nil
	}

	index := searchService.NewMeiliSearchService(cfg.MeiliSearchHost, cfg.MeiliMasterKey, zl)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.SeedOnStart {
		loc := cfg.Location()
		seeder := bootstrap.NewSeeder(db, redisClient, index, func() time.Time { return time.Now().In(loc) }, zl)
		if _, err := seeder.Run(ctx); err != nil {
			zl.Fatal("failed to seed initial data", zap.Error(err))
		}
	}

	srv := server.NewServer(cfg, db, redisClient, index, zl)
	if err := srv.Run(ctx, cfg.Addr()); err != nil {
		zl.Fatal("server exited with error", zap.Error(err))
	}
	zl.Info("Server stopped")
}
