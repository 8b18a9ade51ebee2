package model

import (
	"time"

	"github.com/google/uuid"
)

// ServiceRequestModel mirrors the 'service_requests' table.
type ServiceRequestModel struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ClientID            uuid.UUID  `gorm:"type:uuid;not null;index"`
	TechnicianID        *uuid.UUID `gorm:"type:uuid;index"`
	CategoryID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	Status              string     `gorm:"type:varchar(20);not null;index"`
	Description         string     `gorm:"type:text"`
	Address             string     `gorm:"type:varchar(255);not null"`
	Latitude            *float64
	Longitude           *float64
	EstimatedPrice      int64 `gorm:"not null;default:0"`
	FinalPrice          *int64
	CommissionAmount    int64      `gorm:"not null;default:0"`
	CancellationReason  string     `gorm:"type:text"`
	CancelledBy         *uuid.UUID `gorm:"type:uuid"`
	CancelledByRole     string     `gorm:"type:varchar(20)"`
	CancellationFee     int64      `gorm:"not null;default:0"`
	TechnicianArrivedAt *time.Time
	AcceptedAt          *time.Time
	StartedAt           *time.Time
	CompletedAt         *time.Time
	CancelledAt         *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (ServiceRequestModel) TableName() string {
	return "service_requests"
}
