package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/salon-booking/internal/repository"
	apperrors "github.com/spec-kit/salon-booking/pkg/util"
)

// CatalogHandler serves the read-only service and gallery catalogs.
type CatalogHandler struct {
	catalog *repository.CatalogRepository
}

// NewCatalogHandler constructs handler.
func NewCatalogHandler(catalog *repository.CatalogRepository) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListServices GET /api/services.
func (h *CatalogHandler) ListServices(c *fiber.Ctx) error {
	services, categories := h.catalog.Services(c.Query("category"))
	return c.JSON(fiber.Map{
		"services":   services,
		"categories": categories,
	})
}

// GetService GET /api/services/:id.
func (h *CatalogHandler) GetService(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return apperrors.NewNotFound("Service")
	}
	svc, err := h.catalog.ServiceByID(id)
	if err != nil {
		return err
	}
	return c.JSON(svc)
}

// ListGallery GET /api/gallery.
func (h *CatalogHandler) ListGallery(c *fiber.Ctx) error {
	gallery, categories := h.catalog.Gallery(c.Query("category"))
	return c.JSON(fiber.Map{
		"gallery":    gallery,
		"categories": categories,
	})
}

// FeaturedGallery GET /api/gallery/featured.
func (h *CatalogHandler) FeaturedGallery(c *fiber.Ctx) error {
	return c.JSON(h.catalog.FeaturedGallery(4))
}

// ListTestimonials GET /api/testimonials.
func (h *CatalogHandler) ListTestimonials(c *fiber.Ctx) error {
	return c.JSON(h.catalog.Testimonials())
}
