package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProfileDevice is a device registered for push notifications.
type ProfileDevice struct {
	ID        uuid.UUID `json:"id"`
	ProfileID uuid.UUID `json:"profile_id"` // Owner of the device.
	FCMToken  string    `json:"fcm_token"`  // Firebase Cloud Messaging token.
	DeviceID  string    `json:"device_id"`  // Client-side device identifier.
	Platform  string    `json:"platform"`   // ios, android or web.
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
