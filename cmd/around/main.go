package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/around-labs/around"
	fiberadapter "github.com/around-labs/around/adapters/fiber"
	pgxadapter "github.com/around-labs/around/adapters/pgx"
	"github.com/around-labs/around/pkg/config"
	"github.com/around-labs/around/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config.Load: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger.New: %v", err)
	}
	defer zlog.Sync()

	// A pool that cannot be built is a fatal process condition, not a
	// per-request error.
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal("pgxpool.New", zap.Error(err))
	}
	defer pool.Close()

	storage := pgxadapter.New(pool)

	app := fiber.New()
	app.Use(fiberadapter.RequestLogger(zlog))

	api := fiberadapter.New(app, around.NewUserService(storage), around.NewEventService(storage))
	api.RegisterRoutes()

	zlog.Info("listening", zap.String("addr", cfg.Addr))
	if err := app.Listen(cfg.Addr); err != nil {
		zlog.Fatal("app.Listen", zap.Error(err))
	}
}
