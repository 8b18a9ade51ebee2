package model

import (
	"time"

	"github.com/google/uuid"
)

// SupportTicketModel mirrors the 'support_tickets' table.
type SupportTicketModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ClientID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	ServiceRequestID *uuid.UUID `gorm:"type:uuid;index"`
	OrderID          *uuid.UUID `gorm:"type:uuid"`
	Subject          string     `gorm:"type:varchar(200);not null"`
	Description      string     `gorm:"type:text;not null"`
	Status           string     `gorm:"type:varchar(20);not null;index"`
	Response         string     `gorm:"type:text"`
	RespondedBy      *uuid.UUID `gorm:"type:uuid"`
	ResponseDeadline time.Time  `gorm:"not null"`
	RespondedAt      *time.Time
	ResolvedAt       *time.Time
	AttachmentKey    string `gorm:"type:varchar(255)"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (SupportTicketModel) TableName() string {
	return "support_tickets"
}

// PlatformSettingsModel mirrors the single-row 'platform_settings' table.
type PlatformSettingsModel struct {
	ID                   int     `gorm:"primaryKey"`
	CancellationFee      int64   `gorm:"not null"`
	CommissionRate       float64 `gorm:"not null"`
	DisputeWindowHours   int     `gorm:"not null"`
	MinTechnicianBalance int64   `gorm:"not null"`
	Currency             string  `gorm:"type:varchar(3);not null"`
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (PlatformSettingsModel) TableName() string {
	return "platform_settings"
}
