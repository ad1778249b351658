package dto

import "github.com/spec-kit/salon-booking/internal/domain"

// CreateContactMessageRequest payload.
type CreateContactMessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// SubmitContactMessageResponse is the 201 envelope for a new message.
type SubmitContactMessageResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	MessageID string `json:"messageId"`
}

// UpdateMessageStatusRequest payload.
type UpdateMessageStatusRequest struct {
	Status domain.MessageStatus `json:"status"`
}

// UpdateMessageStatusResponse is the envelope for a status change.
type UpdateMessageStatusResponse struct {
	Success        bool                  `json:"success"`
	Message        string                `json:"message"`
	ContactMessage domain.ContactMessage `json:"contactMessage"`
}
