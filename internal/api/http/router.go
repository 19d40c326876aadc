package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/office-admin-service/internal/api/http/handlers"
	"github.com/spec-kit/office-admin-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Metrics        *handlers.MetricsHandler
	Auth           *handlers.AuthHandler
	Departments    *handlers.DepartmentsHandler
	Services       *handlers.ServicesHandler
	Staff          *handlers.StaffHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", cfg.Metrics.Snapshot)

	app.Post("/auth/login", cfg.Auth.Login)

	protected := app.Group("", cfg.AuthMiddleware.Handle)
	protected.Post("/auth/logout", cfg.Auth.Logout)
	protected.Post("/auth/refresh", cfg.Auth.Refresh)

	departments := protected.Group("/departments")
	departments.Get("/", cfg.Departments.Overview)
	departments.Post("/editors", cfg.Departments.OpenEditor)
	departments.Put("/editors/:id", cfg.Departments.UpdateDraft)
	departments.Post("/editors/:id/save", cfg.Departments.Save)
	departments.Post("/editors/:id/commit", cfg.Departments.SaveAndClose)
	departments.Post("/editors/:id/delete", cfg.Departments.RequestDelete)
	departments.Post("/editors/:id/delete/confirm", cfg.Departments.ConfirmDelete)
	departments.Delete("/editors/:id", cfg.Departments.Cancel)
	departments.Post("/bulk-delete", cfg.Departments.BulkDelete)

	services := protected.Group("/services")
	services.Get("/", cfg.Services.Overview)
	services.Post("/editors", cfg.Services.OpenEditor)
	services.Put("/editors/:id", cfg.Services.UpdateDraft)
	services.Post("/editors/:id/save", cfg.Services.Save)
	services.Post("/editors/:id/commit", cfg.Services.SaveAndClose)
	services.Post("/editors/:id/delete", cfg.Services.RequestDelete)
	services.Post("/editors/:id/delete/confirm", cfg.Services.ConfirmDelete)
	services.Delete("/editors/:id", cfg.Services.Cancel)
	services.Post("/bulk-delete", cfg.Services.BulkDelete)

	staff := protected.Group("/staff")
	staff.Get("/", cfg.Staff.Overview)
	staff.Post("/editors", cfg.Staff.OpenEditor)
	staff.Put("/editors/:id", cfg.Staff.UpdateDraft)
	staff.Post("/editors/:id/save", cfg.Staff.Save)
	staff.Post("/editors/:id/commit", cfg.Staff.SaveAndClose)
	staff.Post("/editors/:id/delete", cfg.Staff.RequestDelete)
	staff.Post("/editors/:id/delete/confirm", cfg.Staff.ConfirmDelete)
	staff.Delete("/editors/:id", cfg.Staff.Cancel)
	staff.Post("/bulk-delete", cfg.Staff.BulkDelete)
}
