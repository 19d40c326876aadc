package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/office-admin-service/internal/api/http"
	"github.com/spec-kit/office-admin-service/internal/api/http/handlers"
	"github.com/spec-kit/office-admin-service/internal/auth"
	"github.com/spec-kit/office-admin-service/internal/config"
	"github.com/spec-kit/office-admin-service/internal/events"
	"github.com/spec-kit/office-admin-service/internal/observability"
	"github.com/spec-kit/office-admin-service/internal/persistence"
	"github.com/spec-kit/office-admin-service/internal/service"
	"github.com/spec-kit/office-admin-service/internal/session"
	"github.com/spec-kit/office-admin-service/internal/upstream"
	"github.com/spec-kit/office-admin-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()
	if err := redis.Ping(ctx); err != nil {
		logger.Warn("redis unreachable, session revival disabled", zap.Error(err))
	}

	metrics := observability.NewMetrics()
	upstreamClient := upstream.New(cfg.Upstream, logger)
	sessions := session.NewManager(redis, cfg.Auth.TokenCacheTTL(), logger)
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.SessionTTL())
	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(upstreamClient, sessions, tokens, logger)
	departmentService := service.NewDepartmentService(upstreamClient, dispatcher, logger)
	catalogService := service.NewCatalogService(upstreamClient, dispatcher, logger)
	staffService := service.NewStaffService(upstreamClient, dispatcher, logger)
	auditService := service.NewAuditService(dispatcher, logger)
	worker.StartAuditWorker(auditService)

	authMiddleware := auth.NewAuthMiddleware(tokens, sessions)

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, redis, upstreamClient),
		Metrics:        handlers.NewMetricsHandler(metrics),
		Auth:           handlers.NewAuthHandler(authService),
		Departments:    handlers.NewDepartmentsHandler(departmentService),
		Services:       handlers.NewServicesHandler(catalogService),
		Staff:          handlers.NewStaffHandler(staffService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
