package repository

import (
	"context"

	"servihub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrTechnicianNotFound is returned when a technician is not found.
	ErrTechnicianNotFound = errors.New("technician not found")
	// ErrVersionConflict is returned when an optimistic balance update lost the race.
	ErrVersionConflict = errors.New("technician version conflict")
)

// TechnicianFilter narrows technician listings.
type TechnicianFilter struct {
	ActiveOnly bool
	CategoryID *uuid.UUID
}

// TechnicianRepository defines the interface for technician-related database operations.
type TechnicianRepository interface {
	// Create persists a new technician record.
	Create(ctx context.Context, technician *entity.Technician) error

	// FindByID retrieves a technician with its profile.
	FindByID(ctx context.Context, profileID uuid.UUID) (*entity.Technician, error)

	// List retrieves technicians matching the filter.
	List(ctx context.Context, filter TechnicianFilter) ([]*entity.Technician, error)

	// ListBelowBalance retrieves technicians whose balance is lower than minBalance.
	ListBelowBalance(ctx context.Context, minBalance int64) ([]*entity.Technician, error)

	// SetActive toggles whether the technician takes new requests.
	SetActive(ctx context.Context, profileID uuid.UUID, active bool) error

	// UpdateBalance stores balance and bumps the version when the stored version still equals expectedVersion.
	// It returns ErrVersionConflict when no row matched.
	UpdateBalance(ctx context.Context, profileID uuid.UUID, balance int64, expectedVersion int64) error
}
