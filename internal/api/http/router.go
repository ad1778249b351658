package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/salon-booking/internal/api/http/handlers"
	"github.com/spec-kit/salon-booking/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Inquiries *handlers.InquiriesHandler
	Slots     *handlers.SlotsHandler
	Messages  *handlers.ContactMessagesHandler
	Catalog   *handlers.CatalogHandler
	AdminKey  *auth.AdminKeyMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	api.Get("/services", cfg.Catalog.ListServices)
	api.Get("/services/:id", cfg.Catalog.GetService)
	api.Get("/gallery/featured", cfg.Catalog.FeaturedGallery)
	api.Get("/gallery", cfg.Catalog.ListGallery)
	api.Get("/testimonials", cfg.Catalog.ListTestimonials)

	api.Post("/inquiries", cfg.Inquiries.Submit)
	api.Get("/slots/available", cfg.Slots.Available)

	// stats before :id so the literal segment wins
	api.Get("/inquiries/stats", cfg.AdminKey.Handle, cfg.Inquiries.Stats)
	api.Get("/inquiries", cfg.AdminKey.Handle, cfg.Inquiries.List)
	api.Get("/inquiries/:id", cfg.AdminKey.Handle, cfg.Inquiries.Get)
	api.Put("/inquiries/:id/status", cfg.AdminKey.Handle, cfg.Inquiries.UpdateStatus)

	api.Post("/contact-messages", cfg.Messages.Submit)
	api.Get("/contact-messages/stats", cfg.AdminKey.Handle, cfg.Messages.Stats)
	api.Get("/contact-messages", cfg.AdminKey.Handle, cfg.Messages.List)
	api.Put("/contact-messages/:id/status", cfg.AdminKey.Handle, cfg.Messages.UpdateStatus)
}
