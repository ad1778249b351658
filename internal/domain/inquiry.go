package domain

import "time"

// InquiryStatus enumerates lifecycle states for booking inquiries.
type InquiryStatus string

const (
	InquiryStatusPending  InquiryStatus = "pending"
	InquiryStatusAccepted InquiryStatus = "accepted"
	InquiryStatusRejected InquiryStatus = "rejected"
)

// Valid reports whether the status is a known inquiry status.
func (s InquiryStatus) Valid() bool {
	switch s {
	case InquiryStatusPending, InquiryStatusAccepted, InquiryStatusRejected:
		return true
	}
	return false
}

// slotUniverse lists the bookable hourly marks, in display order.
var slotUniverse = []string{
	"09:00", "10:00", "11:00", "12:00", "13:00",
	"14:00", "15:00", "16:00", "17:00", "18:00",
}

// AllSlots returns a copy of the fixed hourly slot universe (09:00 to 18:00).
func AllSlots() []string {
	slots := make([]string, len(slotUniverse))
	copy(slots, slotUniverse)
	return slots
}

// Inquiry is a booking request submitted by a prospective client.
type Inquiry struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Email          string        `json:"email"`
	Phone          string        `json:"phone"`
	Service        string        `json:"service"`
	PreferredDate  string        `json:"preferredDate"`
	PreferredTime  string        `json:"preferredTime"`
	Message        string        `json:"message,omitempty"`
	NumberOfPeople int           `json:"numberOfPeople"`
	Status         InquiryStatus `json:"status"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

// OccupiesSlot reports whether an accepted inquiry holds the given slot.
// An empty service matches any service.
func (i Inquiry) OccupiesSlot(service, date, slot string) bool {
	if i.Status != InquiryStatusAccepted {
		return false
	}
	if i.PreferredDate != date || i.PreferredTime != slot {
		return false
	}
	return service == "" || i.Service == service
}

// InquiryStats tracks aggregate counts per status bucket. The counters are
// maintained incrementally on every mutation and must stay consistent with
// the inquiry list.
type InquiryStats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
}

func (s *InquiryStats) bucket(status InquiryStatus) *int {
	switch status {
	case InquiryStatusPending:
		return &s.Pending
	case InquiryStatusAccepted:
		return &s.Accepted
	case InquiryStatusRejected:
		return &s.Rejected
	}
	return nil
}

// Record accounts for a newly created inquiry.
func (s *InquiryStats) Record(status InquiryStatus) {
	s.Total++
	if b := s.bucket(status); b != nil {
		*b++
	}
}

// Move shifts one inquiry between status buckets, clamping at zero.
func (s *InquiryStats) Move(from, to InquiryStatus) {
	if b := s.bucket(from); b != nil && *b > 0 {
		*b--
	}
	if b := s.bucket(to); b != nil {
		*b++
	}
}
