package service

import (
	"strings"

	"github.com/google/uuid"

	"github.com/spec-kit/salon-booking/internal/clock"
	"github.com/spec-kit/salon-booking/internal/domain"
	"github.com/spec-kit/salon-booking/internal/events"
	"github.com/spec-kit/salon-booking/internal/repository"
)

// InquiryService coordinates the booking inquiry workflow: slot-conflict
// checked submission, status transitions and slot availability queries.
type InquiryService struct {
	inquiries  *repository.InquiryRepository
	clock      clock.Clock
	dispatcher events.Dispatcher
}

// InquiryDependencies bundles collaborators for the inquiry service.
type InquiryDependencies struct {
	InquiryRepo *repository.InquiryRepository
	Clock       clock.Clock
	Dispatcher  events.Dispatcher
}

// InquirySubmitInput describes a candidate booking inquiry.
type InquirySubmitInput struct {
	Name           string
	Email          string
	Phone          string
	Service        string
	PreferredDate  string
	PreferredTime  string
	Message        string
	NumberOfPeople int
}

// NewInquiryService constructs the service.
func NewInquiryService(deps InquiryDependencies) *InquiryService {
	return &InquiryService{
		inquiries:  deps.InquiryRepo,
		clock:      deps.Clock,
		dispatcher: deps.Dispatcher,
	}
}

// Submit creates a pending inquiry unless an accepted inquiry already holds
// the requested slot. The inquiry is durably saved before the notification
// event is dispatched; notification failures never affect the result.
func (s *InquiryService) Submit(input InquirySubmitInput) (*domain.Inquiry, error) {
	now := s.clock.Now()
	inquiry := domain.Inquiry{
		ID:             uuid.NewString(),
		Name:           strings.TrimSpace(input.Name),
		Email:          strings.TrimSpace(input.Email),
		Phone:          strings.TrimSpace(input.Phone),
		Service:        strings.TrimSpace(input.Service),
		PreferredDate:  input.PreferredDate,
		PreferredTime:  input.PreferredTime,
		Message:        strings.TrimSpace(input.Message),
		NumberOfPeople: input.NumberOfPeople,
		Status:         domain.InquiryStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if inquiry.NumberOfPeople <= 0 {
		inquiry.NumberOfPeople = 1
	}

	if err := s.inquiries.Create(inquiry); err != nil {
		return nil, err
	}

	s.publishEvent(events.Event{
		Type:    events.EventInquiryReceived,
		Payload: events.InquiryReceivedPayload{Inquiry: inquiry},
	})
	return &inquiry, nil
}

// SetStatus transitions an inquiry between pending, accepted and rejected.
func (s *InquiryService) SetStatus(id string, status domain.InquiryStatus) (*domain.Inquiry, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	updated, oldStatus, err := s.inquiries.UpdateStatus(id, status, s.clock.Now())
	if err != nil {
		return nil, err
	}

	s.publishEvent(events.Event{
		Type: events.EventInquiryStatusChanged,
		Payload: events.InquiryStatusChangedPayload{
			InquiryID: updated.ID,
			OldStatus: oldStatus,
			NewStatus: updated.Status,
		},
	})
	return updated, nil
}

// Get returns a single inquiry by id.
func (s *InquiryService) Get(id string) (*domain.Inquiry, error) {
	return s.inquiries.GetByID(id)
}

// List returns all inquiries, newest first.
func (s *InquiryService) List() []domain.Inquiry {
	return s.inquiries.List()
}

// Stats returns the aggregate counters.
func (s *InquiryService) Stats() domain.InquiryStats {
	return s.inquiries.Stats()
}

// AvailableSlots derives the free and booked time slots for a date,
// optionally narrowed to one service. Pure read, no side effects.
func (s *InquiryService) AvailableSlots(date, service string) (available, booked []string) {
	booked = s.inquiries.BookedTimes(date, service)

	taken := make(map[string]bool, len(booked))
	for _, slot := range booked {
		taken[slot] = true
	}
	available = []string{}
	for _, slot := range domain.AllSlots() {
		if !taken[slot] {
			available = append(available, slot)
		}
	}
	return available, booked
}

func (s *InquiryService) publishEvent(event events.Event) {
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
