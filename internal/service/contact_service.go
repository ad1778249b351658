package service

import (
	"strings"

	"github.com/google/uuid"

	"github.com/spec-kit/salon-booking/internal/clock"
	"github.com/spec-kit/salon-booking/internal/domain"
	"github.com/spec-kit/salon-booking/internal/events"
	"github.com/spec-kit/salon-booking/internal/repository"
)

// ContactService coordinates contact-form messages.
type ContactService struct {
	messages   *repository.MessageRepository
	clock      clock.Clock
	dispatcher events.Dispatcher
}

// ContactDependencies bundles collaborators for the contact service.
type ContactDependencies struct {
	MessageRepo *repository.MessageRepository
	Clock       clock.Clock
	Dispatcher  events.Dispatcher
}

// ContactSubmitInput describes an incoming contact message.
type ContactSubmitInput struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// NewContactService constructs the service.
func NewContactService(deps ContactDependencies) *ContactService {
	return &ContactService{
		messages:   deps.MessageRepo,
		clock:      deps.Clock,
		dispatcher: deps.Dispatcher,
	}
}

// Submit stores a new unread contact message.
func (s *ContactService) Submit(input ContactSubmitInput) (*domain.ContactMessage, error) {
	now := s.clock.Now()
	msg := domain.ContactMessage{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(input.Name),
		Email:     strings.TrimSpace(input.Email),
		Phone:     strings.TrimSpace(input.Phone),
		Subject:   strings.TrimSpace(input.Subject),
		Message:   strings.TrimSpace(input.Message),
		Status:    domain.MessageStatusUnread,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.messages.Create(msg); err != nil {
		return nil, err
	}

	s.publishEvent(events.Event{
		Type: events.EventMessageReceived,
		Payload: events.MessageReceivedPayload{
			MessageID: msg.ID,
			Email:     msg.Email,
			Subject:   msg.Subject,
		},
	})
	return &msg, nil
}

// SetStatus transitions a message between unread and replied.
func (s *ContactService) SetStatus(id string, status domain.MessageStatus) (*domain.ContactMessage, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	updated, oldStatus, err := s.messages.UpdateStatus(id, status, s.clock.Now())
	if err != nil {
		return nil, err
	}

	s.publishEvent(events.Event{
		Type: events.EventMessageStatusChanged,
		Payload: events.MessageStatusChangedPayload{
			MessageID: updated.ID,
			OldStatus: oldStatus,
			NewStatus: updated.Status,
		},
	})
	return updated, nil
}

// List returns all contact messages, newest first.
func (s *ContactService) List() []domain.ContactMessage {
	return s.messages.List()
}

// Stats returns the aggregate counters.
func (s *ContactService) Stats() domain.MessageStats {
	return s.messages.Stats()
}

func (s *ContactService) publishEvent(event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.clock.Now()
	}
	s.dispatcher.Publish(event)
}
