package impl

import (
	"context"
	"testing"

	"servihub/internal/domain/entity"
	domainerrors "servihub/internal/domain/errors"
	"servihub/internal/domain/repository"
	"servihub/internal/errors"
	mockRepo "servihub/internal/mocks/repository"
	mockService "servihub/internal/mocks/service"
	"servihub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type deliveryFixtures struct {
	service      usecase.DeliveryUsecase
	txManager    *mockRepo.MockTransactionManager
	deliveryRepo *mockRepo.MockDeliveryRepository
	orderRepo    *mockRepo.MockOrderRepository
	qrService    *mockService.MockQRCodeService
	publisher    *recordingPublisher
	courier      usecase.Actor
	vendor       usecase.Actor
}

func createTestDeliveryService(t *testing.T) deliveryFixtures {
	t.Helper()

	common, publisher := newTestCommon(newTestConfig())
	f := deliveryFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		deliveryRepo: mockRepo.NewMockDeliveryRepository(t),
		orderRepo:    mockRepo.NewMockOrderRepository(t),
		qrService:    mockService.NewMockQRCodeService(t),
		publisher:    publisher,
		courier:      usecase.Actor{ID: uuid.New(), Role: entity.RoleDelivery},
		vendor:       usecase.Actor{ID: uuid.New(), Role: entity.RoleVendor},
	}
	f.service = NewDeliveryService(DeliveryServiceParams{
		CommonParams: common,
		TxManager:    f.txManager,
		DeliveryRepo: f.deliveryRepo,
		OrderRepo:    f.orderRepo,
		QRService:    f.qrService,
	})

	return f
}

func (f deliveryFixtures) delivery(status entity.DeliveryStatus) *entity.Delivery {
	delivery := &entity.Delivery{
		ID:         uuid.New(),
		OrderID:    uuid.New(),
		VendorID:   f.vendor.ID,
		Status:     status,
		PickupCode: "042137",
	}
	if status != entity.DeliveryPending {
		delivery.DeliveryPersonID = &f.courier.ID
	}

	return delivery
}

func TestDeliveryService_ReportPositionStoresCoordinates(t *testing.T) {
	f := createTestDeliveryService(t)
	delivery := f.delivery(entity.DeliveryInTransit)
	position := entity.Coordinates{Latitude: -8.8383, Longitude: 13.2344}

	f.deliveryRepo.EXPECT().FindByID(mock.Anything, delivery.ID).Return(delivery, nil)
	f.deliveryRepo.EXPECT().UpdatePosition(mock.Anything, delivery.ID, position).Return(nil)

	result, err := f.service.ReportPosition(context.Background(), f.courier, delivery.ID, entity.PositionReport{Coordinates: &position})

	require.NoError(t, err)
	assert.True(t, result.Updated)
	assert.Equal(t, &position, result.Coordinates)
	assert.Empty(t, result.ErrorMessage)
	assert.Equal(t, []string{entity.TableDeliveries}, f.publisher.tables())
}

func TestDeliveryService_ReportPositionErrorCodes(t *testing.T) {
	codes := []entity.GeolocationErrorCode{
		entity.GeolocationUnsupported,
		entity.GeolocationPermissionDenied,
		entity.GeolocationPositionUnavailable,
		entity.GeolocationTimeout,
	}

	for _, code := range codes {
		t.Run(code.Message(), func(t *testing.T) {
			f := createTestDeliveryService(t)
			delivery := f.delivery(entity.DeliveryAccepted)
			f.deliveryRepo.EXPECT().FindByID(mock.Anything, delivery.ID).Return(delivery, nil)

			// coordinates sent together with an error code are ignored
			result, err := f.service.ReportPosition(context.Background(), f.courier, delivery.ID, entity.PositionReport{
				ErrorCode:   &code,
				Coordinates: &entity.Coordinates{Latitude: 1, Longitude: 1},
			})

			require.NoError(t, err)
			assert.False(t, result.Updated)
			assert.Nil(t, result.Coordinates)
			assert.Equal(t, code.Message(), result.ErrorMessage)
			assert.Empty(t, f.publisher.tables())
		})
	}
}

func TestDeliveryService_ReportPositionRejectsBadInput(t *testing.T) {
	unknown := entity.GeolocationErrorCode(9)

	tests := []struct {
		name   string
		status entity.DeliveryStatus
		report entity.PositionReport
		want   error
	}{
		{
			name:   "unknown error code",
			status: entity.DeliveryInTransit,
			report: entity.PositionReport{ErrorCode: &unknown},
			want:   domainerrors.ErrValidationFailed,
		},
		{
			name:   "latitude out of range",
			status: entity.DeliveryPickedUp,
			report: entity.PositionReport{Coordinates: &entity.Coordinates{Latitude: 91}},
			want:   domainerrors.ErrValidationFailed,
		},
		{
			name:   "delivered",
			status: entity.DeliveryDelivered,
			report: entity.PositionReport{Coordinates: &entity.Coordinates{}},
			want:   domainerrors.ErrInvalidStatusTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestDeliveryService(t)
			delivery := f.delivery(tt.status)
			f.deliveryRepo.EXPECT().FindByID(mock.Anything, delivery.ID).Return(delivery, nil)

			_, err := f.service.ReportPosition(context.Background(), f.courier, delivery.ID, tt.report)

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDeliveryService_ReportPositionForbidsOtherCourier(t *testing.T) {
	f := createTestDeliveryService(t)
	delivery := f.delivery(entity.DeliveryInTransit)
	f.deliveryRepo.EXPECT().FindByID(mock.Anything, delivery.ID).Return(delivery, nil)

	stranger := usecase.Actor{ID: uuid.New(), Role: entity.RoleDelivery}
	_, err := f.service.ReportPosition(context.Background(), stranger, delivery.ID, entity.PositionReport{})

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestDeliveryService_AcceptRace(t *testing.T) {
	f := createTestDeliveryService(t)
	delivery := f.delivery(entity.DeliveryPending)

	f.deliveryRepo.EXPECT().FindByID(mock.Anything, delivery.ID).Return(delivery, nil)
	f.deliveryRepo.EXPECT().
		UpdateIfStatus(mock.Anything, mock.Anything, entity.DeliveryPending).
		Return(repository.ErrDeliveryStatusChanged)

	_, err := f.service.Accept(context.Background(), f.courier, delivery.ID)

	assert.ErrorIs(t, err, domainerrors.ErrDeliveryAlreadyTaken)
	assert.Empty(t, f.publisher.tables())
}

func TestDeliveryService_ConfirmPickupChecksCode(t *testing.T) {
	f := createTestDeliveryService(t)
	delivery := f.delivery(entity.DeliveryAccepted)
	f.deliveryRepo.EXPECT().FindByID(mock.Anything, delivery.ID).Return(delivery, nil)

	_, err := f.service.ConfirmPickup(context.Background(), f.courier, delivery.ID, "000000")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPickupCode)

	f.deliveryRepo.EXPECT().UpdateIfStatus(mock.Anything, delivery, entity.DeliveryAccepted).Return(nil)

	updated, err := f.service.ConfirmPickup(context.Background(), f.courier, delivery.ID, "042137")

	require.NoError(t, err)
	assert.Equal(t, entity.DeliveryPickedUp, updated.Status)
	assert.NotNil(t, updated.PickedUpAt)
}

func TestDeliveryService_CompleteMarksOrderDelivered(t *testing.T) {
	f := createTestDeliveryService(t)
	delivery := f.delivery(entity.DeliveryInTransit)
	repos := mockRepo.NewMockRepositoryFactory(t)

	f.deliveryRepo.EXPECT().FindByID(mock.Anything, delivery.ID).Return(delivery, nil)
	f.txManager.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(repos)
		})
	repos.EXPECT().DeliveryRepo().Return(f.deliveryRepo)
	repos.EXPECT().OrderRepo().Return(f.orderRepo)
	f.deliveryRepo.EXPECT().UpdateIfStatus(mock.Anything, delivery, entity.DeliveryInTransit).Return(nil)
	f.orderRepo.EXPECT().UpdateStatus(mock.Anything, delivery.OrderID, entity.OrderReady, entity.OrderDelivered).Return(nil)

	updated, err := f.service.Complete(context.Background(), f.courier, delivery.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.DeliveryDelivered, updated.Status)
	assert.Equal(t, []string{entity.TableDeliveries, entity.TableOrders}, f.publisher.tables())
}

func TestDeliveryService_CompleteOrderMovedAway(t *testing.T) {
	f := createTestDeliveryService(t)
	delivery := f.delivery(entity.DeliveryInTransit)

	f.deliveryRepo.EXPECT().FindByID(mock.Anything, delivery.ID).Return(delivery, nil)
	f.txManager.EXPECT().Execute(mock.Anything, mock.Anything).
		Return(errors.Wrap(repository.ErrOrderStatusChanged, "update order"))

	_, err := f.service.Complete(context.Background(), f.courier, delivery.ID)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
	assert.Empty(t, f.publisher.tables())
}

func TestDeliveryService_CreateForOrderRequiresReadyOrder(t *testing.T) {
	f := createTestDeliveryService(t)
	order := &entity.Order{ID: uuid.New(), VendorID: f.vendor.ID, Status: entity.OrderPending}

	f.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil)

	_, err := f.service.CreateForOrder(context.Background(), f.vendor, &usecase.CreateDeliveryInput{
		OrderID: order.ID,
		Pickup:  entity.Coordinates{Latitude: -8.83, Longitude: 13.23},
		Dropoff: entity.Coordinates{Latitude: -8.91, Longitude: 13.18},
	})

	assert.ErrorIs(t, err, domainerrors.ErrOrderNotReady)
}

func TestDeliveryService_CreateForOrder(t *testing.T) {
	f := createTestDeliveryService(t)
	order := &entity.Order{ID: uuid.New(), VendorID: f.vendor.ID, Status: entity.OrderReady}

	f.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil)
	f.deliveryRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Delivery")).Return(nil)

	delivery, err := f.service.CreateForOrder(context.Background(), f.vendor, &usecase.CreateDeliveryInput{
		OrderID: order.ID,
		Pickup:  entity.Coordinates{Latitude: 0, Longitude: 0},
		Dropoff: entity.Coordinates{Latitude: 0, Longitude: 1},
	})

	require.NoError(t, err)
	assert.Equal(t, entity.DeliveryPending, delivery.Status)
	assert.Len(t, delivery.PickupCode, 6)
	assert.InDelta(t, 111.2, delivery.DistanceKm, 0.5)
}
