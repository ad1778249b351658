package domain

import "time"

// MessageStatus enumerates lifecycle states for contact messages.
type MessageStatus string

const (
	MessageStatusUnread  MessageStatus = "unread"
	MessageStatusReplied MessageStatus = "replied"
)

// Valid reports whether the status is a known message status.
func (s MessageStatus) Valid() bool {
	return s == MessageStatusUnread || s == MessageStatusReplied
}

// ContactMessage is a message submitted through the contact form.
type ContactMessage struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone"`
	Subject   string        `json:"subject"`
	Message   string        `json:"message"`
	Status    MessageStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// MessageStats tracks aggregate counts per message status bucket.
type MessageStats struct {
	Total   int `json:"total"`
	Unread  int `json:"unread"`
	Replied int `json:"replied"`
}

func (s *MessageStats) bucket(status MessageStatus) *int {
	switch status {
	case MessageStatusUnread:
		return &s.Unread
	case MessageStatusReplied:
		return &s.Replied
	}
	return nil
}

// Record accounts for a newly received message.
func (s *MessageStats) Record(status MessageStatus) {
	s.Total++
	if b := s.bucket(status); b != nil {
		*b++
	}
}

// Move shifts one message between status buckets, clamping at zero.
func (s *MessageStats) Move(from, to MessageStatus) {
	if b := s.bucket(from); b != nil && *b > 0 {
		*b--
	}
	if b := s.bucket(to); b != nil {
		*b++
	}
}
