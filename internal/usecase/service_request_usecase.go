package usecase

import (
	"context"

	"servihub/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateServiceRequestInput defines the data a client submits for a new job.
type CreateServiceRequestInput struct {
	CategoryID     uuid.UUID
	Description    string
	Address        string
	Latitude       *float64
	Longitude      *float64
	EstimatedPrice int64
}

// ServiceRequestUsecase drives the service request lifecycle.
type ServiceRequestUsecase interface {
	Create(ctx context.Context, actor Actor, input *CreateServiceRequestInput) (*entity.ServiceRequest, error)

	// List returns the requests visible to the actor: own for clients, assigned for technicians, all for admins.
	List(ctx context.Context, actor Actor, status *entity.ServiceRequestStatus) ([]*entity.ServiceRequest, error)

	// ListAvailable returns pending requests in the technician's specialties.
	ListAvailable(ctx context.Context, actor Actor) ([]*entity.ServiceRequest, error)

	Get(ctx context.Context, actor Actor, id uuid.UUID) (*entity.ServiceRequest, error)
	Accept(ctx context.Context, actor Actor, id uuid.UUID) (*entity.ServiceRequest, error)
	MarkArrived(ctx context.Context, actor Actor, id uuid.UUID) (*entity.ServiceRequest, error)
	Start(ctx context.Context, actor Actor, id uuid.UUID) (*entity.ServiceRequest, error)

	// Complete records the final price and deducts the platform commission from the technician wallet.
	Complete(ctx context.Context, actor Actor, id uuid.UUID, finalPrice int64) (*entity.ServiceRequest, error)

	// CancellationQuote computes the fee the actor would be charged for cancelling now.
	CancellationQuote(ctx context.Context, actor Actor, id uuid.UUID) (*entity.CancellationQuote, error)
	Cancel(ctx context.Context, actor Actor, id uuid.UUID, reason string) (*entity.ServiceRequest, error)
}
