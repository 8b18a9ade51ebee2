// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"servihub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for profile persistence.
var (
	// ErrProfileNotFound is returned when a profile is not found.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrDuplicateEmail is returned when an e-mail is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrCredentialNotFound is returned when no credential matches an e-mail.
	ErrCredentialNotFound = errors.New("credential not found")
)

// ProfileFilter narrows profile listings.
type ProfileFilter struct {
	Role   entity.Role
	Limit  int
	Offset int
}

// ProfileRepository defines the interface for profile-related database operations.
type ProfileRepository interface {
	// Create persists a new profile.
	Create(ctx context.Context, profile *entity.Profile) error

	// FindByID retrieves a profile by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// FindByEmail retrieves a profile by e-mail.
	FindByEmail(ctx context.Context, email string) (*entity.Profile, error)

	// Update saves the mutable profile fields.
	Update(ctx context.Context, profile *entity.Profile) error

	// List retrieves profiles matching the filter, newest first.
	List(ctx context.Context, filter ProfileFilter) ([]*entity.Profile, error)
}

// CredentialRepository stores password credentials.
type CredentialRepository interface {
	// Create persists a credential.
	Create(ctx context.Context, credential *entity.Credential) error

	// FindByEmail retrieves the credential registered for an e-mail.
	FindByEmail(ctx context.Context, email string) (*entity.Credential, error)
}
