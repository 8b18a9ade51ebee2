package impl

import (
	"context"
	"testing"

	"servihub/internal/domain/entity"
	domainerrors "servihub/internal/domain/errors"
	"servihub/internal/domain/repository"
	"servihub/internal/errors"
	mockRepo "servihub/internal/mocks/repository"
	"servihub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
	publisher  *recordingPublisher
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	t.Helper()

	common, publisher := newTestCommon(newTestConfig())
	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	return deviceServiceFixtures{
		service:    NewDeviceService(DeviceServiceParams{CommonParams: common, DeviceRepo: deviceRepo}),
		deviceRepo: deviceRepo,
		publisher:  publisher,
	}
}

func TestDeviceService_RegisterDevice_NewDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	profileID := uuid.New()
	deviceInfo := &usecase.DeviceInfo{
		FCMToken: "test-fcm-token",
		DeviceID: "device-123",
		Platform: "android",
	}

	fx.deviceRepo.EXPECT().
		FindDevicesByProfile(ctx, profileID).
		Return([]*entity.ProfileDevice{}, nil)

	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.ProfileDevice")).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, profileID, deviceInfo)
	require.NoError(t, err)
	assert.Equal(t, profileID, device.ProfileID)
	assert.Equal(t, deviceInfo.FCMToken, device.FCMToken)
	assert.Equal(t, deviceInfo.Platform, device.Platform)
	assert.True(t, device.IsActive)
	assert.Equal(t, []string{entity.TableDevices}, fx.publisher.tables())
}

func TestDeviceService_RegisterDevice_UpdateExisting(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	profileID := uuid.New()
	existing := &entity.ProfileDevice{
		ID:        uuid.New(),
		ProfileID: profileID,
		FCMToken:  "old-token",
		DeviceID:  "device-123",
		IsActive:  true,
	}
	refreshed := *existing
	refreshed.FCMToken = "new-token"

	fx.deviceRepo.EXPECT().FindDevicesByProfile(ctx, profileID).Return([]*entity.ProfileDevice{existing}, nil)
	fx.deviceRepo.EXPECT().UpdateFCMToken(ctx, existing.ID, "new-token").Return(nil)
	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, existing.ID).Return(&refreshed, nil)

	device, err := fx.service.RegisterDevice(ctx, profileID, &usecase.DeviceInfo{FCMToken: "new-token", DeviceID: "device-123"})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, device.ID)
	assert.Equal(t, "new-token", device.FCMToken)
}

func TestDeviceService_RegisterDevice_Validation(t *testing.T) {
	fx := createTestDeviceService(t)

	_, err := fx.service.RegisterDevice(context.Background(), uuid.New(), &usecase.DeviceInfo{DeviceID: "device-123"})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDeviceService_RegisterDevice_RepositoryError(t *testing.T) {
	fx := createTestDeviceService(t)
	profileID := uuid.New()
	fx.deviceRepo.EXPECT().FindDevicesByProfile(mock.Anything, profileID).Return(nil, errors.New("database error"))

	_, err := fx.service.RegisterDevice(context.Background(), profileID, &usecase.DeviceInfo{FCMToken: "t", DeviceID: "d"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find devices by profile")
}

func TestDeviceService_GetProfileDevices_ActiveOnly(t *testing.T) {
	fx := createTestDeviceService(t)
	profileID := uuid.New()
	active := &entity.ProfileDevice{ID: uuid.New(), ProfileID: profileID, IsActive: true}
	inactive := &entity.ProfileDevice{ID: uuid.New(), ProfileID: profileID}
	fx.deviceRepo.EXPECT().FindDevicesByProfile(mock.Anything, profileID).Return([]*entity.ProfileDevice{active, inactive}, nil)

	devices, err := fx.service.GetProfileDevices(context.Background(), profileID)

	require.NoError(t, err)
	assert.Equal(t, []*entity.ProfileDevice{active}, devices)
}

func TestDeviceService_UpdateFCMToken(t *testing.T) {
	profileID := uuid.New()
	device := &entity.ProfileDevice{ID: uuid.New(), ProfileID: profileID, FCMToken: "old"}

	tests := []struct {
		name      string
		profileID uuid.UUID
		token     string
		setup     func(repo *mockRepo.MockDeviceRepository)
		want      error
	}{
		{
			name:      "owner",
			profileID: profileID,
			token:     "fresh",
			setup: func(repo *mockRepo.MockDeviceRepository) {
				repo.EXPECT().FindDeviceByID(mock.Anything, device.ID).Return(device, nil)
				repo.EXPECT().UpdateFCMToken(mock.Anything, device.ID, "fresh").Return(nil)
			},
		},
		{
			name:      "another profile",
			profileID: uuid.New(),
			token:     "fresh",
			setup: func(repo *mockRepo.MockDeviceRepository) {
				repo.EXPECT().FindDeviceByID(mock.Anything, device.ID).Return(device, nil)
			},
			want: domainerrors.ErrForbidden,
		},
		{
			name:      "unknown device",
			profileID: profileID,
			token:     "fresh",
			setup: func(repo *mockRepo.MockDeviceRepository) {
				repo.EXPECT().FindDeviceByID(mock.Anything, device.ID).Return(nil, repository.ErrDeviceNotFound)
			},
			want: domainerrors.ErrDeviceNotFound,
		},
		{
			name:      "blank token",
			profileID: profileID,
			token:     " ",
			setup:     func(*mockRepo.MockDeviceRepository) {},
			want:      domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDeviceService(t)
			tt.setup(fx.deviceRepo)

			err := fx.service.UpdateFCMToken(context.Background(), tt.profileID, device.ID, tt.token)

			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
				assert.Empty(t, fx.publisher.tables())

				return
			}
			require.NoError(t, err)
			assert.Equal(t, []string{entity.TableDevices}, fx.publisher.tables())
		})
	}
}

func TestDeviceService_DeactivateDevice(t *testing.T) {
	fx := createTestDeviceService(t)
	profileID := uuid.New()
	device := &entity.ProfileDevice{ID: uuid.New(), ProfileID: profileID, IsActive: true}
	fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, device.ID).Return(device, nil)
	fx.deviceRepo.EXPECT().DeleteDevice(mock.Anything, device.ID).Return(nil)

	require.NoError(t, fx.service.DeactivateDevice(context.Background(), profileID, device.ID))
	assert.Equal(t, []string{entity.TableDevices}, fx.publisher.tables())
}
