package events

import (
	"time"

	"github.com/spec-kit/salon-booking/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventInquiryReceived      EventType = "inquiry_received"
	EventInquiryStatusChanged EventType = "inquiry_status_changed"
	EventMessageReceived      EventType = "contact_message_received"
	EventMessageStatusChanged EventType = "contact_message_status_changed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// InquiryReceivedPayload carries the full inquiry so notification handlers
// can compose the admin email without a read back through the repository.
type InquiryReceivedPayload struct {
	Inquiry domain.Inquiry `json:"inquiry"`
}

// InquiryStatusChangedPayload payload.
type InquiryStatusChangedPayload struct {
	InquiryID string               `json:"inquiry_id"`
	OldStatus domain.InquiryStatus `json:"old_status"`
	NewStatus domain.InquiryStatus `json:"new_status"`
}

// MessageReceivedPayload payload.
type MessageReceivedPayload struct {
	MessageID string `json:"message_id"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
}

// MessageStatusChangedPayload payload.
type MessageStatusChangedPayload struct {
	MessageID string               `json:"message_id"`
	OldStatus domain.MessageStatus `json:"old_status"`
	NewStatus domain.MessageStatus `json:"new_status"`
}
