package usecase

import (
	"context"

	"servihub/internal/domain/entity"

	"github.com/google/uuid"
)

// CategoryInput defines the fields of a category.
type CategoryInput struct {
	Name        string
	Description string
	Icon        string
}

// ServiceOfferingInput defines the fields of a service offering.
type ServiceOfferingInput struct {
	CategoryID  uuid.UUID
	Title       string
	Description string
	BasePrice   int64
	Active      *bool
}

// ServiceListInput narrows service offering listings.
type ServiceListInput struct {
	TechnicianID *uuid.UUID
	CategoryID   *uuid.UUID
}

// CatalogUsecase manages categories, technician specialties and service offerings.
type CatalogUsecase interface {
	ListCategories(ctx context.Context, includeInactive bool) ([]*entity.Category, error)
	CreateCategory(ctx context.Context, actor Actor, input *CategoryInput) (*entity.Category, error)
	UpdateCategory(ctx context.Context, actor Actor, id uuid.UUID, input *CategoryInput) (*entity.Category, error)
	DeactivateCategory(ctx context.Context, actor Actor, id uuid.UUID) error

	ListSpecialties(ctx context.Context, technicianID uuid.UUID) ([]*entity.Specialty, error)
	AddSpecialty(ctx context.Context, actor Actor, categoryID uuid.UUID) (*entity.Specialty, error)
	RemoveSpecialty(ctx context.Context, actor Actor, categoryID uuid.UUID) error

	ListServices(ctx context.Context, input *ServiceListInput) ([]*entity.ServiceOffering, error)
	CreateService(ctx context.Context, actor Actor, input *ServiceOfferingInput) (*entity.ServiceOffering, error)
	UpdateService(ctx context.Context, actor Actor, id uuid.UUID, input *ServiceOfferingInput) (*entity.ServiceOffering, error)
	DeleteService(ctx context.Context, actor Actor, id uuid.UUID) error
}
