package domain

import "errors"

var (
	// ErrSlotUnavailable signals that an accepted inquiry already occupies
	// the requested (service, date, time) slot.
	ErrSlotUnavailable = errors.New("time slot already booked")

	ErrInquiryNotFound = errors.New("inquiry not found")
	ErrMessageNotFound = errors.New("contact message not found")
	ErrServiceNotFound = errors.New("service not found")
	ErrInvalidStatus   = errors.New("invalid status")
)
