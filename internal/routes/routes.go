// Package routes wires middleware, services and handlers onto the Fiber app.
package routes

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"

	"github.com/payflow/payflow/internal/account"
	"github.com/payflow/payflow/internal/alert"
	"github.com/payflow/payflow/internal/config"
	"github.com/payflow/payflow/internal/events"
	"github.com/payflow/payflow/internal/middleware"
	"github.com/payflow/payflow/internal/snapshot"
)

// Deps aggregates shared dependencies required to wire routes. DB, Cache and
// Bus may be nil; in-memory or no-op implementations take their place.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Bus    *nats.Conn
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Audit(d.Logger))
	if d.Cache != nil {
		app.Use(middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger))
	}

	RegisterHealthRoutes(app, d)

	var snapshots snapshot.Repository
	if d.DB != nil {
		snapshots = snapshot.NewPostgresRepository(d.DB)
	} else {
		snapshots = snapshot.NewMemoryRepository()
	}

	var publisher events.Publisher
	if d.Bus != nil {
		publisher = events.NewNATSPublisher(d.Bus)
	} else {
		publisher = events.NewMemoryPublisher()
	}

	notifier := alert.NewLoggerNotifier(d.Logger)
	svc := account.NewService(snapshots, publisher, notifier, d.Logger)
	handler := account.NewHandler(svc)

	api := app.Group("/api/v1")
	api.Post("/transactions", handler.Submit)
	api.Get("/accounts", handler.List)
	api.Get("/accounts/:clientId", handler.Get)
	api.Post("/snapshots", handler.Snapshot)

	return nil
}
