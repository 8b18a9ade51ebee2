package repository

import (
	"context"

	"servihub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrDuplicateCategory is returned when a category name is taken.
	ErrDuplicateCategory = errors.New("category already exists")
	// ErrServiceOfferingNotFound is returned when a service offering is not found.
	ErrServiceOfferingNotFound = errors.New("service offering not found")
	// ErrSpecialtyNotFound is returned when removing a specialty that does not exist.
	ErrSpecialtyNotFound = errors.New("specialty not found")
)

// CategoryRepository defines category persistence.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	List(ctx context.Context, activeOnly bool) ([]*entity.Category, error)
}

// SpecialtyRepository defines technician specialty persistence.
type SpecialtyRepository interface {
	// Add links a technician to a category. Adding an existing link is a no-op.
	Add(ctx context.Context, specialty *entity.Specialty) error
	Remove(ctx context.Context, technicianID, categoryID uuid.UUID) error
	ListByTechnician(ctx context.Context, technicianID uuid.UUID) ([]*entity.Specialty, error)
}

// ServiceOfferingFilter narrows service offering listings.
type ServiceOfferingFilter struct {
	TechnicianID *uuid.UUID
	CategoryID   *uuid.UUID
	ActiveOnly   bool
}

// ServiceOfferingRepository defines service offering persistence.
type ServiceOfferingRepository interface {
	Create(ctx context.Context, offering *entity.ServiceOffering) error
	Update(ctx context.Context, offering *entity.ServiceOffering) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ServiceOffering, error)
	List(ctx context.Context, filter ServiceOfferingFilter) ([]*entity.ServiceOffering, error)
}
