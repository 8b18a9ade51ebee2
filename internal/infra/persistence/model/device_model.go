package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfileDeviceModel is the GORM-specific struct for the 'profile_devices' table.
// It represents a profile's device registered for push notifications.
type ProfileDeviceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ProfileID uuid.UUID `gorm:"type:uuid;not null;index"`
	FCMToken  string    `gorm:"column:fcm_token;type:varchar(255);not null"`
	DeviceID  string    `gorm:"type:varchar(255);not null"`
	Platform  string    `gorm:"type:varchar(50);not null"`
	IsActive  bool      `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ProfileDeviceModel) TableName() string {
	return "profile_devices"
}
