package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"servihub/internal/domain/entity"
	"servihub/internal/errors"
	mockRepo "servihub/internal/mocks/repository"
	mockService "servihub/internal/mocks/service"
	"servihub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestNotifierService(t *testing.T) (usecase.NotifierUsecase, *mockRepo.MockDeviceRepository, *mockService.MockNotificationService) {
	t.Helper()

	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	notificationSvc := mockService.NewMockNotificationService(t)

	return NewNotifierService(NotifierServiceParams{
		Config:          newTestConfig(),
		DeviceRepo:      deviceRepo,
		NotificationSvc: notificationSvc,
		SettingsRepo:    &memorySettings{},
		Logger:          newDiscardLogger(),
	}), deviceRepo, notificationSvc
}

func rowChange(t *testing.T, table string, changeType entity.ChangeType, record, old map[string]any) *entity.RowChange {
	t.Helper()

	change := &entity.RowChange{Table: table, Type: changeType, RecordID: uuid.New()}
	if record != nil {
		raw, err := json.Marshal(record)
		require.NoError(t, err)
		change.Record = raw
	}
	if old != nil {
		raw, err := json.Marshal(old)
		require.NoError(t, err)
		change.OldRecord = raw
	}

	return change
}

func TestNotifierService_StatusChangeReachesBothParties(t *testing.T) {
	service, deviceRepo, notificationSvc := createTestNotifierService(t)
	clientID, technicianID := uuid.New(), uuid.New()

	change := rowChange(t, entity.TableServiceRequests, entity.ChangeUpdate,
		map[string]any{"status": "in_progress", "client_id": clientID.String(), "technician_id": technicianID.String()},
		map[string]any{"status": "accepted"},
	)

	deviceRepo.EXPECT().
		FindActiveTokens(mock.Anything, []uuid.UUID{clientID, technicianID}).
		Return([]string{"token-client", "token-tech"}, nil)
	notificationSvc.EXPECT().
		SendBatchNotification(mock.Anything, []string{"token-client", "token-tech"}, "Service request updated", "Status changed to in progress.",
			mock.MatchedBy(func(data map[string]string) bool {
				return data["status"] == "in_progress" && data["table"] == entity.TableServiceRequests
			})).
		Return(2, 0, nil, nil)

	result, err := service.HandleChange(context.Background(), change)

	require.NoError(t, err)
	assert.Equal(t, &usecase.PushResult{Recipients: 2, Sent: 2}, result)
}

func TestNotifierService_SkipsChangesWithoutStatusMove(t *testing.T) {
	service, _, _ := createTestNotifierService(t)
	clientID := uuid.New()

	tests := []struct {
		name   string
		change *entity.RowChange
	}{
		{
			name: "same status",
			change: rowChange(t, entity.TableOrders, entity.ChangeUpdate,
				map[string]any{"status": "pending", "client_id": clientID.String()},
				map[string]any{"status": "pending"}),
		},
		{
			name: "no status column",
			change: rowChange(t, entity.TableSupportTickets, entity.ChangeUpdate,
				map[string]any{"client_id": clientID.String()}, nil),
		},
		{
			name: "untracked table",
			change: rowChange(t, entity.TableProducts, entity.ChangeInsert,
				map[string]any{"vendor_id": clientID.String()}, nil),
		},
		{
			name: "delete",
			change: rowChange(t, entity.TableOrders, entity.ChangeDelete,
				nil, map[string]any{"status": "pending", "client_id": clientID.String()}),
		},
		{
			name: "nil change",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := service.HandleChange(context.Background(), tt.change)

			require.NoError(t, err)
			assert.Equal(t, &usecase.PushResult{}, result)
		})
	}
}

func TestNotifierService_WalletInsertPushesBalance(t *testing.T) {
	service, deviceRepo, notificationSvc := createTestNotifierService(t)
	technicianID := uuid.New()

	change := rowChange(t, entity.TableWalletTransactions, entity.ChangeInsert,
		map[string]any{"technician_id": technicianID.String(), "balance_after": 4500}, nil)

	deviceRepo.EXPECT().FindActiveTokens(mock.Anything, []uuid.UUID{technicianID}).Return([]string{"token"}, nil)
	notificationSvc.EXPECT().
		SendBatchNotification(mock.Anything, []string{"token"}, "Wallet updated", "New balance: 4,500 AOA", mock.Anything).
		Return(1, 0, nil, nil)

	result, err := service.HandleChange(context.Background(), change)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
}

func TestNotifierService_WalletBalanceUsesSavedCurrency(t *testing.T) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	notificationSvc := mockService.NewMockNotificationService(t)
	service := NewNotifierService(NotifierServiceParams{
		Config:          newTestConfig(),
		DeviceRepo:      deviceRepo,
		NotificationSvc: notificationSvc,
		SettingsRepo:    &memorySettings{settings: &entity.PlatformSettings{Currency: "USD"}},
		Logger:          newDiscardLogger(),
	})
	technicianID := uuid.New()

	change := rowChange(t, entity.TableWalletTransactions, entity.ChangeInsert,
		map[string]any{"technician_id": technicianID.String(), "balance_after": 1250000}, nil)

	deviceRepo.EXPECT().FindActiveTokens(mock.Anything, []uuid.UUID{technicianID}).Return([]string{"token"}, nil)
	notificationSvc.EXPECT().
		SendBatchNotification(mock.Anything, []string{"token"}, "Wallet updated", "New balance: 1,250,000 USD", mock.Anything).
		Return(1, 0, nil, nil)

	_, err := service.HandleChange(context.Background(), change)

	require.NoError(t, err)
}

func TestNotifierService_DeactivatesInvalidTokens(t *testing.T) {
	service, deviceRepo, notificationSvc := createTestNotifierService(t)
	vendorID := uuid.New()

	change := rowChange(t, entity.TableOrders, entity.ChangeInsert,
		map[string]any{"status": "pending", "vendor_id": vendorID.String(), "client_id": ""}, nil)

	deviceRepo.EXPECT().FindActiveTokens(mock.Anything, []uuid.UUID{vendorID}).Return([]string{"good", "stale"}, nil)
	notificationSvc.EXPECT().
		SendBatchNotification(mock.Anything, []string{"good", "stale"}, "Order created", "A new order was created.", mock.Anything).
		Return(1, 1, []string{"stale"}, nil)
	deviceRepo.EXPECT().DeactivateByTokens(mock.Anything, []string{"stale"}).Return(nil)

	result, err := service.HandleChange(context.Background(), change)

	require.NoError(t, err)
	assert.Equal(t, &usecase.PushResult{Recipients: 1, Sent: 1, Failed: 1, InvalidTokens: 1}, result)
}

func TestNotifierService_BatchesLargeTokenSets(t *testing.T) {
	service, deviceRepo, notificationSvc := createTestNotifierService(t)
	vendorID := uuid.New()

	tokens := make([]string, firebaseBatchSize+20)
	for i := range tokens {
		tokens[i] = fmt.Sprintf("token-%d", i)
	}

	change := rowChange(t, entity.TableDeliveries, entity.ChangeUpdate,
		map[string]any{"status": "picked_up", "vendor_id": vendorID.String()},
		map[string]any{"status": "accepted"})

	deviceRepo.EXPECT().FindActiveTokens(mock.Anything, []uuid.UUID{vendorID}).Return(tokens, nil)
	notificationSvc.EXPECT().
		SendBatchNotification(mock.Anything, tokens[:firebaseBatchSize], mock.Anything, mock.Anything, mock.Anything).
		Return(0, 0, nil, errors.New("fcm unavailable"))
	notificationSvc.EXPECT().
		SendBatchNotification(mock.Anything, tokens[firebaseBatchSize:], mock.Anything, mock.Anything, mock.Anything).
		Return(20, 0, nil, nil)

	result, err := service.HandleChange(context.Background(), change)

	require.NoError(t, err)
	assert.Equal(t, 20, result.Sent)
	assert.Equal(t, firebaseBatchSize, result.Failed)
}

func TestNotifierService_DeviceLookupFailure(t *testing.T) {
	service, deviceRepo, _ := createTestNotifierService(t)
	clientID := uuid.New()

	change := rowChange(t, entity.TableSupportTickets, entity.ChangeUpdate,
		map[string]any{"status": "resolved", "client_id": clientID.String()},
		map[string]any{"status": "open"})

	deviceRepo.EXPECT().FindActiveTokens(mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	result, err := service.HandleChange(context.Background(), change)

	require.Error(t, err)
	assert.Nil(t, result)
}
