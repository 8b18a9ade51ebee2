package entity

import (
	"time"

	"github.com/google/uuid"
)

// ServiceRequestStatus is the lifecycle state of a service request.
type ServiceRequestStatus string

const (
	ServiceRequestPending    ServiceRequestStatus = "pending"
	ServiceRequestAccepted   ServiceRequestStatus = "accepted"
	ServiceRequestInProgress ServiceRequestStatus = "in_progress"
	ServiceRequestCompleted  ServiceRequestStatus = "completed"
	ServiceRequestCancelled  ServiceRequestStatus = "cancelled"
)

// IsValid checks if the status is a known value.
func (s ServiceRequestStatus) IsValid() bool {
	switch s {
	case ServiceRequestPending, ServiceRequestAccepted, ServiceRequestInProgress,
		ServiceRequestCompleted, ServiceRequestCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is possible.
func (s ServiceRequestStatus) IsTerminal() bool {
	return s == ServiceRequestCompleted || s == ServiceRequestCancelled
}

// serviceRequestFlow lists the forward transitions. Cancellation is handled separately.
var serviceRequestFlow = map[ServiceRequestStatus]ServiceRequestStatus{
	ServiceRequestPending:    ServiceRequestAccepted,
	ServiceRequestAccepted:   ServiceRequestInProgress,
	ServiceRequestInProgress: ServiceRequestCompleted,
}

// ServiceRequest is a client-initiated job with a category, location and status lifecycle.
type ServiceRequest struct {
	ID                  uuid.UUID            `json:"id"`
	ClientID            uuid.UUID            `json:"client_id"`
	TechnicianID        *uuid.UUID           `json:"technician_id"`
	CategoryID          uuid.UUID            `json:"category_id"`
	Status              ServiceRequestStatus `json:"status"`
	Description         string               `json:"description"`
	Address             string               `json:"address"`
	Latitude            *float64             `json:"latitude,omitempty"`
	Longitude           *float64             `json:"longitude,omitempty"`
	EstimatedPrice      int64                `json:"estimated_price"`
	FinalPrice          *int64               `json:"final_price,omitempty"`
	CommissionAmount    int64                `json:"commission_amount"`
	CancellationReason  string               `json:"cancellation_reason,omitempty"`
	CancelledBy         *uuid.UUID           `json:"cancelled_by,omitempty"`
	CancelledByRole     Role                 `json:"cancelled_by_role,omitempty"`
	CancellationFee     int64                `json:"cancellation_fee"`
	TechnicianArrivedAt *time.Time           `json:"technician_arrived_at,omitempty"`
	AcceptedAt          *time.Time           `json:"accepted_at,omitempty"`
	StartedAt           *time.Time           `json:"started_at,omitempty"`
	CompletedAt         *time.Time           `json:"completed_at,omitempty"`
	CancelledAt         *time.Time           `json:"cancelled_at,omitempty"`
	CreatedAt           time.Time            `json:"created_at"`
	UpdatedAt           time.Time            `json:"updated_at"`
}

// TechnicianArrived reports whether the assigned technician has marked arrival.
func (r *ServiceRequest) TechnicianArrived() bool {
	return r.TechnicianArrivedAt != nil
}

// IsAssignedTo reports whether the technician is assigned to the request.
func (r *ServiceRequest) IsAssignedTo(technicianID uuid.UUID) bool {
	return r.TechnicianID != nil && *r.TechnicianID == technicianID
}

// CanAdvanceTo reports whether the forward transition from the current status to next is allowed.
func (r *ServiceRequest) CanAdvanceTo(next ServiceRequestStatus) bool {
	allowed, ok := serviceRequestFlow[r.Status]

	return ok && allowed == next
}

// CanBeCancelledBy reports whether an actor with the role may cancel the request in its current status.
func (r *ServiceRequest) CanBeCancelledBy(role Role) bool {
	switch r.Status {
	case ServiceRequestPending, ServiceRequestAccepted:
		return true
	case ServiceRequestInProgress:
		return role == RoleAdmin
	default:
		return false
	}
}

// CancellationQuote is the server-computed fee shown before a cancellation is confirmed.
type CancellationQuote struct {
	Fee               int64     `json:"fee"`
	Currency          string    `json:"currency"`
	Message           string    `json:"message"`
	ActionLabel       string    `json:"action_label"`
	TechnicianArrived bool      `json:"technician_arrived"`
	ServerTime        time.Time `json:"server_time"`
}
