package usecase

import (
	"context"

	"servihub/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo represents device information for registration
type DeviceInfo struct {
	FCMToken string `json:"fcm_token"`
	DeviceID string `json:"device_id"`
	Platform string `json:"platform"`
}

// DeviceUsecase defines the interface for device management use cases
type DeviceUsecase interface {
	// RegisterDevice registers a new device or updates an existing one
	RegisterDevice(ctx context.Context, profileID uuid.UUID, deviceInfo *DeviceInfo) (*entity.ProfileDevice, error)

	// UpdateFCMToken updates the FCM token for a specific device
	UpdateFCMToken(ctx context.Context, profileID, deviceID uuid.UUID, fcmToken string) error

	// GetProfileDevices retrieves all active devices of a profile
	GetProfileDevices(ctx context.Context, profileID uuid.UUID) ([]*entity.ProfileDevice, error)

	// DeactivateDevice deactivates a device (soft delete)
	DeactivateDevice(ctx context.Context, profileID, deviceID uuid.UUID) error
}
