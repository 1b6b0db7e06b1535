package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	httptransport "github.com/spec-kit/developer-service/internal/api/http"
	"github.com/spec-kit/developer-service/internal/api/http/handlers"
	"github.com/spec-kit/developer-service/internal/api/validation"
	"github.com/spec-kit/developer-service/internal/auth"
	"github.com/spec-kit/developer-service/internal/config"
	"github.com/spec-kit/developer-service/internal/events"
	"github.com/spec-kit/developer-service/internal/observability"
	"github.com/spec-kit/developer-service/internal/persistence"
	"github.com/spec-kit/developer-service/internal/repository"
	"github.com/spec-kit/developer-service/internal/service"
	"github.com/spec-kit/developer-service/internal/worker"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.App, cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), cfg.Postgres.MigrationsDir, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer redis.Close()

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()
	notifications, err := worker.StartNotificationWorker(cfg.Events, dispatcher, redis.ClientHandle(), metrics, logger)
	if err != nil {
		logger.Fatal("failed to start notification worker", zap.Error(err))
	}
	defer notifications.Close() //nolint:errcheck

	developerService := service.NewDeveloperService(service.DeveloperDependencies{
		Store:      repository.NewTransactor(pg.PoolHandle()),
		Dispatcher: dispatcher,
		Logger:     logger,
	})

	requestValidator := validation.NewRequestValidator()
	routes := httptransport.RouteConfig{
		Health: handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, map[string]handlers.Pinger{
			"postgres": pg,
			"redis":    redis,
		}),
		Metrics:    handlers.NewMetricsHandler(metrics),
		Developers: handlers.NewDevelopersHandler(developerService, requestValidator),
	}
	if cfg.Auth.Enabled {
		authService := service.NewAuthService(cfg.Auth, logger)
		routes.Auth = handlers.NewAuthHandler(authService, requestValidator)
		routes.AuthMiddleware = auth.NewAuthMiddleware(authService.TokenManager())
		logger.Info("operator authentication enabled", zap.String("operator", cfg.Auth.OperatorUsername))
	}

	app := httptransport.NewServer(httptransport.ServerOptions{
		AppName:        cfg.App.Name,
		RequestTimeout: cfg.App.RequestTimeout(),
		Logger:         logger,
		Metrics:        metrics,
		Routes:         routes,
	})

	group, gctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		logger.Info("http server listening", zap.String("addr", cfg.App.Addr()))
		return app.Listen(cfg.App.Addr())
	})

	group.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		return app.ShutdownWithTimeout(shutdownTimeout)
	})

	if err := group.Wait(); err != nil {
		logger.Error("server stopped with error", zap.Error(err))
	}
}
