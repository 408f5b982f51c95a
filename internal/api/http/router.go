package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/office-hours-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health *handlers.HealthHandler
	Query  *handlers.QueryHandler
	Search *handlers.SearchHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Get("/query", cfg.Query.Handle)
	app.Get("/search", cfg.Search.Handle)
}
