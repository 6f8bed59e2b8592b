package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/1vor/fulltruck-challenge/docs"
	"github.com/1vor/fulltruck-challenge/internal/config"
	"github.com/1vor/fulltruck-challenge/internal/database"
	"github.com/1vor/fulltruck-challenge/internal/database/migration"
	"github.com/1vor/fulltruck-challenge/internal/events"
	handlers "github.com/1vor/fulltruck-challenge/internal/http/handler"
	"github.com/1vor/fulltruck-challenge/internal/http/middleware"
	"github.com/1vor/fulltruck-challenge/internal/matching"
	tracing "github.com/1vor/fulltruck-challenge/internal/otel"
	"github.com/1vor/fulltruck-challenge/internal/repository/postgres"
	"github.com/1vor/fulltruck-challenge/internal/service"
	"github.com/1vor/fulltruck-challenge/internal/storage"
)

const shutdownTimeout = 10 * time.Second

// @title Freight Matching API
// @version 1.0
// @description Matches freights against saved freight searches.
// @BasePath /
func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	shutdownTracing, err := tracing.Init(ctx)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, cfg.Database.Host); err != nil {
		return err
	}

	var objStore storage.Storage
	if cfg.MinIO.Enabled() {
		if objStore, err = storage.NewMinIO(ctx, cfg.MinIO); err != nil {
			return err
		}
	} else {
		slog.Info("object storage not configured, match export disabled")
	}

	var publisher events.Publisher = events.Noop{}
	if cfg.AMQP.URL != "" {
		publisher = events.NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.Queue, cfg.AMQP.DialTimeout)
	}

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		// The limiter fails open, so an unreachable Redis at startup is not fatal.
		if rdb, err = database.NewRedis(ctx, cfg.Redis); err != nil {
			slog.Warn("rate limiting disabled", "error", err)
		} else {
			defer rdb.Close()
		}
	}

	promMW, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}
	matchMetrics, err := service.NewMatchMetrics(prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}

	// Initialize repositories and services
	userRepo := postgres.NewUserPostgres(db)
	freightRepo := postgres.NewFreightPostgres(db)
	searchRepo := postgres.NewFreightSearchPostgres(db)
	engine := matching.NewEngine(searchRepo, cfg.Matching.MaxLimit)

	matchSvc := service.NewMatchService(freightRepo, engine, objStore, matchMetrics, service.MatchOptions{
		ExportPageSize:  cfg.Matching.ExportPageSize,
		ExportURLExpiry: cfg.Matching.ExportURLExpiry,
	})

	deps := handlers.Deps{
		DB:       db,
		Users:    service.NewUserService(userRepo),
		Freights: service.NewFreightService(freightRepo),
		Searches: service.NewFreightSearchService(userRepo, searchRepo, publisher),
		Matches:  matchSvc,
		Matching: cfg.Matching,
	}
	if rdb != nil {
		deps.MatchLimiter = middleware.RateLimit(cfg.RateLimit, rdb)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == "/metrics" || strings.HasPrefix(c.Path(), "/health")
	})))
	app.Use(middleware.LoggerWithWriter(os.Stdout, cfg.Location()))
	app.Use(promMW.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	handlers.RegisterRoutes(app, deps)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(":" + cfg.Port)
	}()
	slog.Info("server started", "port", cfg.Port, "host", cfg.AppHost)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}
