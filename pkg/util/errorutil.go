package util

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/spec-kit/salon-booking/internal/domain"
)

// DomainError standardizes application errors surfaced over HTTP.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status}
}

func NewValidationError(message string) error {
	return NewDomainError("VALIDATION_FAILED", message, http.StatusBadRequest)
}

func NewSlotUnavailable() error {
	return NewDomainError("SLOT_UNAVAILABLE",
		"This time slot is already booked. Please select a different time.",
		http.StatusConflict)
}

func NewNotFound(resource string) error {
	return NewDomainError("NOT_FOUND", fmt.Sprintf("%s not found", resource), http.StatusNotFound)
}

func NewInvalidStatus(message string) error {
	return NewDomainError("INVALID_STATUS", message, http.StatusBadRequest)
}

func NewUnauthorized(message string) error {
	return NewDomainError("UNAUTHORIZED", message, http.StatusUnauthorized)
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic and domain-level errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	switch {
	case errors.Is(err, domain.ErrSlotUnavailable):
		domainErr, _ = NewSlotUnavailable().(*DomainError)
	case errors.Is(err, domain.ErrInquiryNotFound):
		domainErr, _ = NewNotFound("Inquiry").(*DomainError)
	case errors.Is(err, domain.ErrMessageNotFound):
		domainErr, _ = NewNotFound("Contact message").(*DomainError)
	case errors.Is(err, domain.ErrServiceNotFound):
		domainErr, _ = NewNotFound("Service").(*DomainError)
	case errors.Is(err, domain.ErrInvalidStatus):
		domainErr, _ = NewInvalidStatus(err.Error()).(*DomainError)
	default:
		domainErr, _ = NewInternalError(err).(*DomainError)
	}
	return domainErr
}
