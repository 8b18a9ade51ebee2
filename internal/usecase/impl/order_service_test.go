package impl

import (
	"context"
	"testing"

	"servihub/internal/domain/entity"
	domainerrors "servihub/internal/domain/errors"
	"servihub/internal/domain/repository"
	mockRepo "servihub/internal/mocks/repository"
	"servihub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderFixtures struct {
	service     usecase.OrderUsecase
	orderRepo   *mockRepo.MockOrderRepository
	productRepo *mockRepo.MockProductRepository
	repos       *mockRepo.MockRepositoryFactory
	publisher   *recordingPublisher
	client      usecase.Actor
	vendor      usecase.Actor
}

func createTestOrderService(t *testing.T) orderFixtures {
	t.Helper()

	common, publisher := newTestCommon(newTestConfig())
	txManager := mockRepo.NewMockTransactionManager(t)
	f := orderFixtures{
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		repos:       mockRepo.NewMockRepositoryFactory(t),
		publisher:   publisher,
		client:      usecase.Actor{ID: uuid.New(), Role: entity.RoleClient},
		vendor:      usecase.Actor{ID: uuid.New(), Role: entity.RoleVendor},
	}

	txManager.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.repos)
		}).Maybe()
	f.repos.EXPECT().OrderRepo().Return(f.orderRepo).Maybe()
	f.repos.EXPECT().ProductRepo().Return(f.productRepo).Maybe()

	f.service = NewOrderService(OrderServiceParams{
		CommonParams: common,
		TxManager:    txManager,
		OrderRepo:    f.orderRepo,
	})

	return f
}

func (f orderFixtures) product(price int64, stock int) *entity.Product {
	return &entity.Product{ID: uuid.New(), VendorID: f.vendor.ID, Name: "Gas bottle", Price: price, Stock: stock, Active: true}
}

func TestOrderService_CreatePricesFromProducts(t *testing.T) {
	f := createTestOrderService(t)
	bottle := f.product(4500, 10)

	f.productRepo.EXPECT().FindByID(mock.Anything, bottle.ID).Return(bottle, nil)
	f.productRepo.EXPECT().AdjustStock(mock.Anything, bottle.ID, -3).Return(nil)
	f.orderRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Order")).Return(nil)

	// repeated lines of the same product are merged
	order, err := f.service.Create(context.Background(), f.client, &usecase.CreateOrderInput{
		VendorID:        f.vendor.ID,
		DeliveryAddress: "  Rua da Missão 12 ",
		Items: []usecase.OrderItemInput{
			{ProductID: bottle.ID, Quantity: 1},
			{ProductID: bottle.ID, Quantity: 2},
		},
	})

	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 3, order.Items[0].Quantity)
	assert.Equal(t, int64(13500), order.Total)
	assert.Equal(t, "Rua da Missão 12", order.DeliveryAddress)
	assert.Equal(t, entity.OrderPending, order.Status)
	assert.Equal(t, []string{entity.TableOrders, entity.TableProducts}, f.publisher.tables())
}

func TestOrderService_CreateInsufficientStock(t *testing.T) {
	f := createTestOrderService(t)
	bottle := f.product(4500, 1)

	f.productRepo.EXPECT().FindByID(mock.Anything, bottle.ID).Return(bottle, nil)

	_, err := f.service.Create(context.Background(), f.client, &usecase.CreateOrderInput{
		VendorID: f.vendor.ID,
		Items:    []usecase.OrderItemInput{{ProductID: bottle.ID, Quantity: 2}},
	})

	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
	assert.Empty(t, f.publisher.tables())
}

func TestOrderService_CreateRejectsOtherVendorsProduct(t *testing.T) {
	f := createTestOrderService(t)
	foreign := f.product(100, 5)
	foreign.VendorID = uuid.New()

	f.productRepo.EXPECT().FindByID(mock.Anything, foreign.ID).Return(foreign, nil)

	_, err := f.service.Create(context.Background(), f.client, &usecase.CreateOrderInput{
		VendorID: f.vendor.ID,
		Items:    []usecase.OrderItemInput{{ProductID: foreign.ID, Quantity: 1}},
	})

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestOrderService_CreateValidation(t *testing.T) {
	f := createTestOrderService(t)

	tests := []struct {
		name  string
		input usecase.CreateOrderInput
	}{
		{name: "missing vendor", input: usecase.CreateOrderInput{Items: []usecase.OrderItemInput{{ProductID: uuid.New(), Quantity: 1}}}},
		{name: "no items", input: usecase.CreateOrderInput{VendorID: uuid.New()}},
		{name: "zero quantity", input: usecase.CreateOrderInput{VendorID: uuid.New(), Items: []usecase.OrderItemInput{{ProductID: uuid.New()}}}},
		{name: "missing product", input: usecase.CreateOrderInput{VendorID: uuid.New(), Items: []usecase.OrderItemInput{{Quantity: 1}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.service.Create(context.Background(), f.client, &tt.input)

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}

	_, err := f.service.Create(context.Background(), f.vendor, &usecase.CreateOrderInput{})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_UpdateStatusFollowsVendorFlow(t *testing.T) {
	f := createTestOrderService(t)
	order := &entity.Order{ID: uuid.New(), ClientID: f.client.ID, VendorID: f.vendor.ID, Status: entity.OrderPending}

	f.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil)

	_, err := f.service.UpdateStatus(context.Background(), f.vendor, order.ID, entity.OrderReady)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)

	_, err = f.service.UpdateStatus(context.Background(), f.vendor, order.ID, entity.OrderDelivered)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)

	f.orderRepo.EXPECT().UpdateStatus(mock.Anything, order.ID, entity.OrderPending, entity.OrderConfirmed).Return(nil)

	updated, err := f.service.UpdateStatus(context.Background(), f.vendor, order.ID, entity.OrderConfirmed)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderConfirmed, updated.Status)
	assert.Equal(t, []string{entity.TableOrders}, f.publisher.tables())
}

func TestOrderService_CancelRestocksItems(t *testing.T) {
	f := createTestOrderService(t)
	productID := uuid.New()
	order := &entity.Order{
		ID:       uuid.New(),
		ClientID: f.client.ID,
		VendorID: f.vendor.ID,
		Status:   entity.OrderConfirmed,
		Items:    []*entity.OrderItem{{ProductID: productID, Quantity: 4}},
	}

	f.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil)
	f.orderRepo.EXPECT().UpdateStatus(mock.Anything, order.ID, entity.OrderConfirmed, entity.OrderCancelled).Return(nil)
	f.productRepo.EXPECT().AdjustStock(mock.Anything, productID, 4).Return(nil)

	cancelled, err := f.service.Cancel(context.Background(), f.client, order.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderCancelled, cancelled.Status)
}

func TestOrderService_CancelReadyOrderFails(t *testing.T) {
	f := createTestOrderService(t)
	order := &entity.Order{ID: uuid.New(), ClientID: f.client.ID, VendorID: f.vendor.ID, Status: entity.OrderReady}

	f.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil)

	_, err := f.service.Cancel(context.Background(), f.client, order.ID)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
}

func TestOrderService_GetForbidsOtherClient(t *testing.T) {
	f := createTestOrderService(t)
	order := &entity.Order{ID: uuid.New(), ClientID: uuid.New(), VendorID: f.vendor.ID, Status: entity.OrderPending}

	f.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil)

	_, err := f.service.Get(context.Background(), f.client, order.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	got, err := f.service.Get(context.Background(), f.vendor, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
}
