package repository

import (
	"context"

	"servihub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderStatusChanged is returned when a conditional status update matched no row.
	ErrOrderStatusChanged = errors.New("order status changed")
)

// OrderFilter narrows order listings.
type OrderFilter struct {
	ClientID *uuid.UUID
	VendorID *uuid.UUID
	Status   *entity.OrderStatus
}

// OrderRepository defines order persistence.
type OrderRepository interface {
	// Create persists the order with its items.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order with its items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// List retrieves orders with items, newest first.
	List(ctx context.Context, filter OrderFilter) ([]*entity.Order, error)

	// UpdateStatus moves the order from one status to another, failing with ErrOrderStatusChanged
	// when the stored status is no longer from.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.OrderStatus) error
}
