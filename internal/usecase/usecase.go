// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"io"

	"servihub/internal/domain/entity"

	"github.com/google/uuid"
)

// Actor is the authenticated caller of a use case.
type Actor struct {
	ID   uuid.UUID
	Role entity.Role
}

// Is reports whether the actor has one of the roles.
func (a Actor) Is(roles ...entity.Role) bool {
	for _, r := range roles {
		if a.Role == r {
			return true
		}
	}

	return false
}

// FileUpload is a file received from a client.
type FileUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}
