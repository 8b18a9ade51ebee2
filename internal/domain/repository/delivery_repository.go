package repository

import (
	"context"

	"servihub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrDeliveryNotFound is returned when a delivery is not found.
	ErrDeliveryNotFound = errors.New("delivery not found")
	// ErrDuplicateDelivery is returned when the order already has a delivery.
	ErrDuplicateDelivery = errors.New("delivery already exists for order")
	// ErrDeliveryStatusChanged is returned when a conditional update matched no row.
	ErrDeliveryStatusChanged = errors.New("delivery status changed")
)

// DeliveryFilter narrows delivery listings.
type DeliveryFilter struct {
	VendorID         *uuid.UUID
	DeliveryPersonID *uuid.UUID
	Status           *entity.DeliveryStatus
}

// DeliveryRepository defines delivery persistence.
type DeliveryRepository interface {
	Create(ctx context.Context, delivery *entity.Delivery) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Delivery, error)
	List(ctx context.Context, filter DeliveryFilter) ([]*entity.Delivery, error)

	// UpdateIfStatus saves the delivery only if its stored status still equals expected.
	UpdateIfStatus(ctx context.Context, delivery *entity.Delivery, expected entity.DeliveryStatus) error

	// UpdatePosition stores the current coordinates of the delivery person.
	UpdatePosition(ctx context.Context, id uuid.UUID, position entity.Coordinates) error
}
