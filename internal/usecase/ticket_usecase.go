package usecase

import (
	"context"

	"servihub/internal/domain/entity"

	"github.com/google/uuid"
)

// OpenTicketInput defines a dispute raised by a client.
type OpenTicketInput struct {
	ServiceRequestID *uuid.UUID
	OrderID          *uuid.UUID
	Subject          string
	Description      string
}

// TicketUsecase manages support tickets. Every view carries the server-evaluated deadline state.
type TicketUsecase interface {
	Open(ctx context.Context, actor Actor, input *OpenTicketInput) (*entity.SupportTicketView, error)
	List(ctx context.Context, actor Actor, status *entity.SupportTicketStatus) ([]*entity.SupportTicketView, error)
	Get(ctx context.Context, actor Actor, id uuid.UUID) (*entity.SupportTicketView, error)
	Respond(ctx context.Context, actor Actor, id uuid.UUID, response string) (*entity.SupportTicketView, error)
	Resolve(ctx context.Context, actor Actor, id uuid.UUID) (*entity.SupportTicketView, error)
	UploadAttachment(ctx context.Context, actor Actor, id uuid.UUID, upload *FileUpload) (*entity.SupportTicketView, error)
}
