package models

import (
	"time"

	"github.com/google/uuid"
)

type RequestType string

const (
	RequestInspection   RequestType = "inspection"
	RequestConsultation RequestType = "consultation"
	RequestClass        RequestType = "class"
)

func (t RequestType) Valid() bool {
	switch t {
	case RequestInspection, RequestConsultation, RequestClass:
		return true
	}
	return false
}

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestConfirmed RequestStatus = "confirmed"
	RequestDeclined RequestStatus = "declined"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestPending, RequestConfirmed, RequestDeclined:
		return true
	}
	return false
}

// ServiceRequest covers inspection bookings, consultations and class
// enrollments. Same lifecycle shape as Order but a separate number sequence.
type ServiceRequest struct {
	ID            uuid.UUID        `json:"id"`
	RequestNumber string           `json:"request_number"`
	Type          RequestType      `json:"type"`
	OptionID      string           `json:"option_id"`
	OptionLabel   string           `json:"option_label"`
	Price         float64          `json:"price"`
	Status        RequestStatus    `json:"status"`
	Customer      CustomerSnapshot `json:"customer"`
	Notes         string           `json:"notes,omitempty"`
	ProofURL      string           `json:"proof_url,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	ConfirmedAt   *time.Time       `json:"confirmed_at,omitempty"`
	DeclinedAt    *time.Time       `json:"declined_at,omitempty"`
}

type UpdateRequestStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed declined"`
}
