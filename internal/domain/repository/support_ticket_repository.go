package repository

import (
	"context"

	"servihub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrSupportTicketNotFound is returned when a support ticket is not found.
var ErrSupportTicketNotFound = errors.New("support ticket not found")

// SupportTicketFilter narrows ticket listings. TechnicianID selects tickets about requests assigned to the technician.
type SupportTicketFilter struct {
	ClientID     *uuid.UUID
	TechnicianID *uuid.UUID
	Status       *entity.SupportTicketStatus
}

// SupportTicketRepository defines support ticket persistence.
type SupportTicketRepository interface {
	Create(ctx context.Context, ticket *entity.SupportTicket) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SupportTicket, error)
	List(ctx context.Context, filter SupportTicketFilter) ([]*entity.SupportTicket, error)
	Update(ctx context.Context, ticket *entity.SupportTicket) error
}
