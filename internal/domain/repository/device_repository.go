package repository

import (
	"context"

	"servihub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when trying to create a device that already exists.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// CreateDevice persists a new device for a profile.
	CreateDevice(ctx context.Context, device *entity.ProfileDevice) error

	// FindDeviceByID retrieves a device by its unique ID.
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.ProfileDevice, error)

	// FindDevicesByProfile retrieves all devices of a profile (including inactive).
	FindDevicesByProfile(ctx context.Context, profileID uuid.UUID) ([]*entity.ProfileDevice, error)

	// FindActiveTokens retrieves the FCM tokens of the active devices of the given profiles.
	FindActiveTokens(ctx context.Context, profileIDs []uuid.UUID) ([]string, error)

	// UpdateFCMToken updates the FCM token for a specific device.
	UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error

	// DeactivateByTokens marks every device holding one of the tokens inactive.
	DeactivateByTokens(ctx context.Context, tokens []string) error

	// DeleteDevice removes a device by its ID (soft delete).
	DeleteDevice(ctx context.Context, id uuid.UUID) error
}
