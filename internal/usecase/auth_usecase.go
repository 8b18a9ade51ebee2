package usecase

import (
	"context"

	"servihub/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to sign up.
type RegisterInput struct {
	Name        string
	Email       string
	Phone       string
	Password    string
	Role        entity.Role
	ClientType  entity.ClientType
	CompanyName string
	NIF         string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateProfileInput carries the profile fields a user may change. Nil fields are left untouched.
type UpdateProfileInput struct {
	Name        *string
	Phone       *string
	ClientType  *entity.ClientType
	CompanyName *string
	NIF         *string
}

// ProfileListInput narrows the admin profile listing.
type ProfileListInput struct {
	Role   entity.Role
	Limit  int
	Offset int
}

// --- Output DTOs ---

// AuthOutput returns the issued tokens with the authenticated profile.
type AuthOutput struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	Profile      *entity.Profile `json:"profile"`
}

// AuthUsecase defines sign up, log in and token refresh.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	Refresh(ctx context.Context, refreshToken string) (*AuthOutput, error)
}

// ProfileUsecase defines profile and technician account operations.
type ProfileUsecase interface {
	GetMe(ctx context.Context, actor Actor) (*entity.Profile, error)
	UpdateMe(ctx context.Context, actor Actor, input *UpdateProfileInput) (*entity.Profile, error)
	CompleteOnboarding(ctx context.Context, actor Actor) (*entity.Profile, error)

	// ListProfiles is restricted to admins.
	ListProfiles(ctx context.Context, actor Actor, input *ProfileListInput) ([]*entity.Profile, error)

	// GetTechnician returns a technician to the technician itself, admins and clients browsing.
	GetTechnician(ctx context.Context, actor Actor, technicianID uuid.UUID) (*entity.Technician, error)

	// ListTechnicians returns every technician to admins and only active ones to other roles.
	ListTechnicians(ctx context.Context, actor Actor, categoryID *uuid.UUID) ([]*entity.Technician, error)

	SetTechnicianActive(ctx context.Context, actor Actor, technicianID uuid.UUID, active bool) (*entity.Technician, error)
}
