package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/salon-booking/internal/api/dto"
	"github.com/spec-kit/salon-booking/internal/service"
	apperrors "github.com/spec-kit/salon-booking/pkg/util"
)

// InquiriesHandler manages booking inquiry endpoints.
type InquiriesHandler struct {
	service *service.InquiryService
}

// NewInquiriesHandler constructs handler.
func NewInquiriesHandler(inquiryService *service.InquiryService) *InquiriesHandler {
	return &InquiriesHandler{service: inquiryService}
}

// Submit POST /api/inquiries.
func (h *InquiriesHandler) Submit(c *fiber.Ctx) error {
	var req dto.CreateInquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Service) == "" || req.PreferredDate == "" || req.PreferredTime == "" {
		return apperrors.NewValidationError("name, email, service, preferredDate and preferredTime are required")
	}

	inquiry, err := h.service.Submit(service.InquirySubmitInput{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Service:        req.Service,
		PreferredDate:  req.PreferredDate,
		PreferredTime:  req.PreferredTime,
		Message:        req.Message,
		NumberOfPeople: req.NumberOfPeople,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(dto.SubmitInquiryResponse{
		Success:   true,
		Message:   "Booking inquiry submitted successfully!",
		InquiryID: inquiry.ID,
		Data: dto.InquirySubmitData{
			Name:    inquiry.Name,
			Service: inquiry.Service,
			Date:    inquiry.PreferredDate,
			Time:    inquiry.PreferredTime,
		},
	})
}

// List GET /api/inquiries.
func (h *InquiriesHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.service.List())
}

// Get GET /api/inquiries/:id.
func (h *InquiriesHandler) Get(c *fiber.Ctx) error {
	inquiry, err := h.service.Get(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(inquiry)
}

// UpdateStatus PUT /api/inquiries/:id/status.
func (h *InquiriesHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateInquiryStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if !req.Status.Valid() {
		return apperrors.NewInvalidStatus("Invalid status. Must be: accepted, rejected, or pending")
	}

	inquiry, err := h.service.SetStatus(c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(dto.UpdateInquiryStatusResponse{
		Success: true,
		Message: "Booking " + string(inquiry.Status) + " successfully",
		Inquiry: *inquiry,
	})
}

// Stats GET /api/inquiries/stats.
func (h *InquiriesHandler) Stats(c *fiber.Ctx) error {
	return c.JSON(h.service.Stats())
}
