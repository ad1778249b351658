package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/salon-booking/internal/api/dto"
	"github.com/spec-kit/salon-booking/internal/service"
	apperrors "github.com/spec-kit/salon-booking/pkg/util"
)

// ContactMessagesHandler manages contact-form endpoints.
type ContactMessagesHandler struct {
	service *service.ContactService
}

// NewContactMessagesHandler constructs handler.
func NewContactMessagesHandler(contactService *service.ContactService) *ContactMessagesHandler {
	return &ContactMessagesHandler{service: contactService}
}

// Submit POST /api/contact-messages.
func (h *ContactMessagesHandler) Submit(c *fiber.Ctx) error {
	var req dto.CreateContactMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Subject) == "" || strings.TrimSpace(req.Message) == "" {
		return apperrors.NewValidationError("Name, email, subject, and message are required.")
	}

	msg, err := h.service.Submit(service.ContactSubmitInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(dto.SubmitContactMessageResponse{
		Success:   true,
		Message:   "Your message has been sent successfully! We will get back to you soon.",
		MessageID: msg.ID,
	})
}

// List GET /api/contact-messages.
func (h *ContactMessagesHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.service.List())
}

// UpdateStatus PUT /api/contact-messages/:id/status.
func (h *ContactMessagesHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateMessageStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if !req.Status.Valid() {
		return apperrors.NewInvalidStatus(`Invalid status. Use "unread" or "replied".`)
	}

	msg, err := h.service.SetStatus(c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(dto.UpdateMessageStatusResponse{
		Success:        true,
		Message:        "Contact message marked as " + string(msg.Status),
		ContactMessage: *msg,
	})
}

// Stats GET /api/contact-messages/stats.
func (h *ContactMessagesHandler) Stats(c *fiber.Ctx) error {
	return c.JSON(h.service.Stats())
}
