package usecase

import (
	"context"

	"servihub/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateDeliveryInput defines the route of a delivery.
type CreateDeliveryInput struct {
	OrderID uuid.UUID
	Pickup  entity.Coordinates
	Dropoff entity.Coordinates
}

// DeliveryUsecase drives deliveries from pickup to drop-off.
type DeliveryUsecase interface {
	CreateForOrder(ctx context.Context, actor Actor, input *CreateDeliveryInput) (*entity.Delivery, error)
	List(ctx context.Context, actor Actor, status *entity.DeliveryStatus) ([]*entity.Delivery, error)
	ListAvailable(ctx context.Context, actor Actor) ([]*entity.Delivery, error)
	Get(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Delivery, error)
	Accept(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Delivery, error)

	// PickupQR renders the pickup code of the delivery as a PNG for the vendor.
	PickupQR(ctx context.Context, actor Actor, id uuid.UUID) ([]byte, error)

	// ConfirmPickup accepts the six-digit code or the scanned QR payload.
	ConfirmPickup(ctx context.Context, actor Actor, id uuid.UUID, code string) (*entity.Delivery, error)
	StartTransit(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Delivery, error)

	// Complete marks the delivery and its order delivered.
	Complete(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Delivery, error)

	// ReportPosition applies a position report. Geolocation errors leave the stored position untouched.
	ReportPosition(ctx context.Context, actor Actor, id uuid.UUID, report entity.PositionReport) (*entity.PositionResult, error)
}
