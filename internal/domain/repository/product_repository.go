package repository

import (
	"context"

	"servihub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrInsufficientStock is returned when a stock decrement would go negative.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ProductFilter narrows product listings.
type ProductFilter struct {
	VendorID   *uuid.UUID
	ActiveOnly bool
}

// ProductRepository defines product persistence.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)

	// AdjustStock adds delta to the stock. A negative delta fails with ErrInsufficientStock
	// when the stock would drop below zero.
	AdjustStock(ctx context.Context, id uuid.UUID, delta int) error
}
