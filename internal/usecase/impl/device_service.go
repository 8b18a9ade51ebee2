package impl

import (
	"context"
	"log/slog"
	"strings"

	"servihub/internal/cache"
	"servihub/internal/domain/entity"
	domainerrors "servihub/internal/domain/errors"
	"servihub/internal/domain/repository"
	"servihub/internal/errors"
	"servihub/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
	notifier   *changeNotifier
	cache      *cache.Store
	now        clock
	logger     *slog.Logger
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In
	CommonParams

	DeviceRepo repository.DeviceRepository
}

// NewDeviceService creates a new device service instance
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: params.DeviceRepo,
		notifier:   newChangeNotifier(params.CommonParams),
		cache:      params.Cache,
		logger:     params.Logger,
	}
}

// RegisterDevice registers a new device or refreshes the token of a known one
func (srv *deviceService) RegisterDevice(ctx context.Context, profileID uuid.UUID, deviceInfo *usecase.DeviceInfo) (*entity.ProfileDevice, error) {
	if strings.TrimSpace(deviceInfo.FCMToken) == "" || strings.TrimSpace(deviceInfo.DeviceID) == "" {
		return nil, validationError("fcm_token and device_id are required")
	}

	devices, err := srv.deviceRepo.FindDevicesByProfile(ctx, profileID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by profile")
	}

	// Look for existing device with same device_id
	for _, device := range devices {
		if device.DeviceID != deviceInfo.DeviceID {
			continue
		}

		if err := srv.deviceRepo.UpdateFCMToken(ctx, device.ID, deviceInfo.FCMToken); err != nil {
			return nil, errors.Wrap(err, "failed to update FCM token")
		}

		updated, err := srv.deviceRepo.FindDeviceByID(ctx, device.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find device by ID")
		}
		srv.published(ctx, entity.ChangeUpdate, updated)

		return updated, nil
	}

	now := srv.now.now()
	device := &entity.ProfileDevice{
		ID:        uuid.New(),
		ProfileID: profileID,
		FCMToken:  deviceInfo.FCMToken,
		DeviceID:  deviceInfo.DeviceID,
		Platform:  deviceInfo.Platform,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := srv.deviceRepo.CreateDevice(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to create device")
	}
	srv.published(ctx, entity.ChangeInsert, device)

	return device, nil
}

// UpdateFCMToken updates the FCM token for a specific device
func (srv *deviceService) UpdateFCMToken(ctx context.Context, profileID, deviceID uuid.UUID, fcmToken string) error {
	if strings.TrimSpace(fcmToken) == "" {
		return validationError("fcm_token is required")
	}

	device, err := srv.owned(ctx, profileID, deviceID)
	if err != nil {
		return err
	}

	if err := srv.deviceRepo.UpdateFCMToken(ctx, device.ID, fcmToken); err != nil {
		return errors.Wrap(err, "failed to update FCM token")
	}
	device.FCMToken = fcmToken
	device.IsActive = true
	srv.published(ctx, entity.ChangeUpdate, device)

	return nil
}

// GetProfileDevices retrieves the active devices of a profile
func (srv *deviceService) GetProfileDevices(ctx context.Context, profileID uuid.UUID) ([]*entity.ProfileDevice, error) {
	return cache.Fetch(ctx, srv.cache, cache.Scoped(cache.Devices, profileID.String()), func(ctx context.Context) ([]*entity.ProfileDevice, error) {
		devices, err := srv.deviceRepo.FindDevicesByProfile(ctx, profileID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find devices by profile")
		}

		active := make([]*entity.ProfileDevice, 0, len(devices))
		for _, device := range devices {
			if device.IsActive {
				active = append(active, device)
			}
		}

		return active, nil
	})
}

// DeactivateDevice removes a device so it no longer receives pushes
func (srv *deviceService) DeactivateDevice(ctx context.Context, profileID, deviceID uuid.UUID) error {
	device, err := srv.owned(ctx, profileID, deviceID)
	if err != nil {
		return err
	}

	if err := srv.deviceRepo.DeleteDevice(ctx, device.ID); err != nil {
		return errors.Wrap(err, "failed to delete device")
	}
	srv.published(ctx, entity.ChangeDelete, device)

	return nil
}

func (srv *deviceService) owned(ctx context.Context, profileID, deviceID uuid.UUID) (*entity.ProfileDevice, error) {
	device, err := srv.deviceRepo.FindDeviceByID(ctx, deviceID)
	if errors.Is(err, repository.ErrDeviceNotFound) {
		return nil, domainerrors.ErrDeviceNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	if device.ProfileID != profileID {
		return nil, domainerrors.ErrForbidden
	}

	return device, nil
}

func (srv *deviceService) published(ctx context.Context, changeType entity.ChangeType, device *entity.ProfileDevice) {
	srv.notifier.committed(ctx, cache.MutationDeviceWrite,
		srv.notifier.rowChange(ctx, entity.TableDevices, changeType, device.ID, device),
	)
}
