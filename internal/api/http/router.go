package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/developer-service/internal/api/http/handlers"
	"github.com/spec-kit/developer-service/internal/auth"
	"github.com/spec-kit/developer-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration. Auth and AuthMiddleware are
// nil when operator authentication is disabled.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Metrics        *handlers.MetricsHandler
	Developers     *handlers.DevelopersHandler
	Auth           *handlers.AuthHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", cfg.Metrics.Metrics)

	var read, write []fiber.Handler
	if cfg.AuthMiddleware != nil {
		app.Post("/auth/login", cfg.Auth.Login)
		read = append(read, cfg.AuthMiddleware.Handle, auth.RequireRole())
		write = append(write, cfg.AuthMiddleware.Handle, auth.RequireRole(domain.OperatorRoleAdmin))
	}

	d := cfg.Developers
	app.Get("/developers", chain(read, d.ListDevelopers)...)
	app.Get("/developer/:memberId", chain(read, d.GetDeveloperDetail)...)
	app.Get("/retired-developers", chain(read, d.ListRetiredDevelopers)...)
	app.Post("/create-developer", chain(write, d.CreateDeveloper)...)
	app.Put("/developer/:memberId", chain(write, d.EditDeveloper)...)
	app.Delete("/developer/:memberId", chain(write, d.RetireDeveloper)...)
}

func chain(middlewares []fiber.Handler, handler fiber.Handler) []fiber.Handler {
	out := make([]fiber.Handler, 0, len(middlewares)+1)
	out = append(out, middlewares...)
	return append(out, handler)
}
