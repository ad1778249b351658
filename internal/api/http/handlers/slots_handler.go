package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/salon-booking/internal/api/dto"
	"github.com/spec-kit/salon-booking/internal/service"
	apperrors "github.com/spec-kit/salon-booking/pkg/util"
)

// SlotsHandler serves slot availability queries.
type SlotsHandler struct {
	service *service.InquiryService
}

// NewSlotsHandler constructs handler.
func NewSlotsHandler(inquiryService *service.InquiryService) *SlotsHandler {
	return &SlotsHandler{service: inquiryService}
}

// Available GET /api/slots/available?date=YYYY-MM-DD&service=Name.
func (h *SlotsHandler) Available(c *fiber.Ctx) error {
	date := c.Query("date")
	if date == "" {
		return apperrors.NewValidationError("Date parameter required")
	}
	serviceName := c.Query("service")

	available, booked := h.service.AvailableSlots(date, serviceName)

	label := serviceName
	if label == "" {
		label = "all"
	}
	return c.JSON(dto.AvailableSlotsResponse{
		Date:           date,
		Service:        label,
		AvailableSlots: available,
		BookedSlots:    booked,
	})
}
