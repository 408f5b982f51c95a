package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/office-hours-service/internal/api/http"
	"github.com/spec-kit/office-hours-service/internal/api/http/handlers"
	"github.com/spec-kit/office-hours-service/internal/config"
	"github.com/spec-kit/office-hours-service/internal/directory"
	"github.com/spec-kit/office-hours-service/internal/events"
	"github.com/spec-kit/office-hours-service/internal/observability"
	"github.com/spec-kit/office-hours-service/internal/resolver"
	"github.com/spec-kit/office-hours-service/internal/search"
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

	index, err := directory.Load(cfg.Directory.Path, logger)
	if err != nil {
		logger.Fatal("failed to load directory", zap.Error(err))
	}

	matcher := search.NewMatcher(index.People())
	queryResolver := resolver.New(index, matcher)

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()
	dispatcher.Subscribe(events.EventQueryResolved, observability.CountIntents(metrics))

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health: handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, index),
		Query:  handlers.NewQueryHandler(queryResolver, dispatcher),
		Search: handlers.NewSearchHandler(matcher, dispatcher),
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
