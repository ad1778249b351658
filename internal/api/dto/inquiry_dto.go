package dto

import "github.com/spec-kit/salon-booking/internal/domain"

// CreateInquiryRequest payload.
type CreateInquiryRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Service        string `json:"service"`
	PreferredDate  string `json:"preferredDate"`
	PreferredTime  string `json:"preferredTime"`
	Message        string `json:"message"`
	NumberOfPeople int    `json:"numberOfPeople"`
}

// UpdateInquiryStatusRequest payload.
type UpdateInquiryStatusRequest struct {
	Status domain.InquiryStatus `json:"status"`
}

// InquirySubmitData echoes the key booking fields back to the caller.
type InquirySubmitData struct {
	Name    string `json:"name"`
	Service string `json:"service"`
	Date    string `json:"date"`
	Time    string `json:"time"`
}

// SubmitInquiryResponse is the 201 envelope for a new inquiry.
type SubmitInquiryResponse struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	InquiryID string            `json:"inquiryId"`
	Data      InquirySubmitData `json:"data"`
}

// UpdateInquiryStatusResponse is the envelope for a status change.
type UpdateInquiryStatusResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Inquiry domain.Inquiry `json:"inquiry"`
}

// AvailableSlotsResponse is the slot availability envelope.
type AvailableSlotsResponse struct {
	Date           string   `json:"date"`
	Service        string   `json:"service"`
	AvailableSlots []string `json:"availableSlots"`
	BookedSlots    []string `json:"bookedSlots"`
}
