package entity

import (
	"time"

	"github.com/google/uuid"
)

// ClientType distinguishes private clients from companies.
type ClientType string

const (
	ClientTypeIndividual ClientType = "individual"
	ClientTypeCompany    ClientType = "company"
)

// IsValid checks if the ClientType is a valid value.
func (t ClientType) IsValid() bool {
	return t == ClientTypeIndividual || t == ClientTypeCompany
}

// Profile is the identity record of an authenticated account. There is one profile per account.
type Profile struct {
	ID                  uuid.UUID  `json:"id"`
	UserID              uuid.UUID  `json:"user_id"` // Same value as ID; kept for clients that key on user_id.
	Name                string     `json:"name"`
	Email               string     `json:"email"`
	Phone               string     `json:"phone"`
	Role                Role       `json:"role"`
	ClientType          ClientType `json:"client_type,omitempty"`
	CompanyName         string     `json:"company_name,omitempty"`
	NIF                 string     `json:"nif,omitempty"` // Tax identification number, required for companies.
	OnboardingCompleted bool       `json:"onboarding_completed"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// IsCompany reports whether the profile belongs to a company client.
func (p *Profile) IsCompany() bool {
	return p.Role == RoleClient && p.ClientType == ClientTypeCompany
}

// Credential stores the password hash of a profile.
type Credential struct {
	ProfileID    uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Technician carries the service-provider side of a technician profile,
// including the denormalised wallet balance.
type Technician struct {
	ProfileID uuid.UUID `json:"profile_id"`
	Active    bool      `json:"active"`
	Balance   int64     `json:"balance"`
	Version   int64     `json:"version"` // Optimistic lock for balance updates.
	Rating    float64   `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Profile *Profile `json:"profile,omitempty"`
}
