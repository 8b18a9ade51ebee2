package repository

import (
	"context"

	"servihub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrServiceRequestNotFound is returned when a service request is not found.
	ErrServiceRequestNotFound = errors.New("service request not found")
	// ErrServiceRequestStatusChanged is returned when a conditional update found the request in another status.
	ErrServiceRequestStatusChanged = errors.New("service request status changed")
)

// ServiceRequestFilter narrows service request listings. Nil fields are ignored.
type ServiceRequestFilter struct {
	ClientID     *uuid.UUID
	TechnicianID *uuid.UUID
	Status       *entity.ServiceRequestStatus
	CategoryIDs  []uuid.UUID
	Unassigned   bool
}

// ServiceRequestRepository defines service request persistence.
type ServiceRequestRepository interface {
	// Create persists a new service request.
	Create(ctx context.Context, request *entity.ServiceRequest) error

	// FindByID retrieves a service request by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ServiceRequest, error)

	// List retrieves service requests matching the filter, newest first.
	List(ctx context.Context, filter ServiceRequestFilter) ([]*entity.ServiceRequest, error)

	// UpdateIfStatus saves the request only if its stored status still equals expected.
	// It returns ErrServiceRequestStatusChanged when no row matched.
	UpdateIfStatus(ctx context.Context, request *entity.ServiceRequest, expected entity.ServiceRequestStatus) error
}
