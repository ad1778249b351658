package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/salon-booking/internal/persistence"
)

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	store       *persistence.FileStore
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, store *persistence.FileStore) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, store: store}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports service readiness by checking the document store.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	if err := h.store.Ping(); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "not ready",
			"dependencies": fiber.Map{
				"store": err.Error(),
			},
		})
	}
	return c.JSON(fiber.Map{
		"status": "ready",
		"dependencies": fiber.Map{
			"store": "ok",
		},
	})
}
