package usecase

import (
	"context"

	"servihub/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderItemInput is one product line requested by a client.
type OrderItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CreateOrderInput defines an order placed with one vendor.
type CreateOrderInput struct {
	VendorID        uuid.UUID
	DeliveryAddress string
	Items           []OrderItemInput
}

// OrderUsecase manages product orders.
type OrderUsecase interface {
	// Create reserves stock and prices the items from the current product prices.
	Create(ctx context.Context, actor Actor, input *CreateOrderInput) (*entity.Order, error)
	List(ctx context.Context, actor Actor, status *entity.OrderStatus) ([]*entity.Order, error)
	Get(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Order, error)

	// UpdateStatus lets the vendor confirm an order and mark it ready.
	UpdateStatus(ctx context.Context, actor Actor, id uuid.UUID, status entity.OrderStatus) (*entity.Order, error)

	// Cancel returns the reserved stock.
	Cancel(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Order, error)
}
