package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel mirrors the 'profiles' table. PostgreSQL generates UUIDs via gen_random_uuid().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type ProfileModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name                string    `gorm:"type:varchar(150);not null"`
	Email               string    `gorm:"type:varchar(255);unique;not null"`
	Phone               string    `gorm:"type:varchar(50)"`
	Role                string    `gorm:"type:varchar(20);not null;index"`
	ClientType          string    `gorm:"type:varchar(20)"`
	CompanyName         string    `gorm:"type:varchar(200)"`
	NIF                 string    `gorm:"column:nif;type:varchar(50)"`
	OnboardingCompleted bool      `gorm:"not null;default:false"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}

// CredentialModel mirrors the 'credentials' table.
type CredentialModel struct {
	ProfileID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (CredentialModel) TableName() string {
	return "credentials"
}

// TechnicianModel mirrors the 'technicians' table. Version guards balance updates.
type TechnicianModel struct {
	ProfileID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Active    bool      `gorm:"not null"`
	Balance   int64     `gorm:"not null;default:0"`
	Version   int64     `gorm:"not null;default:0"`
	Rating    float64   `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Profile *ProfileModel `gorm:"foreignKey:ProfileID;references:ID"`
}

// TableName explicitly sets the table name for GORM.
func (TechnicianModel) TableName() string {
	return "technicians"
}
