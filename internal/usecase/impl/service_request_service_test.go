package impl

import (
	"context"
	"strings"
	"testing"

	"servihub/internal/domain/entity"
	domainerrors "servihub/internal/domain/errors"
	"servihub/internal/errors"
	mockRepo "servihub/internal/mocks/repository"
	"servihub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serviceRequestFixtures struct {
	service      usecase.ServiceRequestUsecase
	store        *memoryStore
	settings     *memorySettings
	publisher    *recordingPublisher
	categoryRepo *mockRepo.MockCategoryRepository
	category     *entity.Category
	client       usecase.Actor
	technician   usecase.Actor
}

func createTestServiceRequestService(t *testing.T) serviceRequestFixtures {
	t.Helper()

	store := newMemoryStore()
	settings := &memorySettings{}
	common, publisher := newTestCommon(newTestConfig())
	categoryRepo := mockRepo.NewMockCategoryRepository(t)

	service := NewServiceRequestService(ServiceRequestServiceParams{
		CommonParams:   common,
		TxManager:      store,
		RequestRepo:    store.ServiceRequestRepo(),
		TechnicianRepo: store.TechnicianRepo(),
		CategoryRepo:   categoryRepo,
		SpecialtyRepo:  mockRepo.NewMockSpecialtyRepository(t),
		SettingsRepo:   settings,
	})

	category := &entity.Category{ID: uuid.New(), Name: "Plumbing", Active: true}
	technicianID := store.addTechnician(5000)

	return serviceRequestFixtures{
		service:      service,
		store:        store,
		settings:     settings,
		publisher:    publisher,
		categoryRepo: categoryRepo,
		category:     category,
		client:       usecase.Actor{ID: uuid.New(), Role: entity.RoleClient},
		technician:   usecase.Actor{ID: technicianID, Role: entity.RoleTechnician},
	}
}

func (fx serviceRequestFixtures) createAccepted(t *testing.T) *entity.ServiceRequest {
	t.Helper()
	ctx := context.Background()

	fx.categoryRepo.EXPECT().FindByID(mock.Anything, fx.category.ID).Return(fx.category, nil).Once()

	request, err := fx.service.Create(ctx, fx.client, &usecase.CreateServiceRequestInput{
		CategoryID:     fx.category.ID,
		Description:    "Leaking kitchen tap",
		Address:        "Rua Rainha Ginga 12, Luanda",
		EstimatedPrice: 10000,
	})
	require.NoError(t, err)
	require.Equal(t, entity.ServiceRequestPending, request.Status)
	require.Nil(t, request.TechnicianID)

	accepted, err := fx.service.Accept(ctx, fx.technician, request.ID)
	require.NoError(t, err)
	require.Equal(t, entity.ServiceRequestAccepted, accepted.Status)
	require.NotNil(t, accepted.TechnicianID)
	require.Equal(t, fx.technician.ID, *accepted.TechnicianID)

	return accepted
}

func TestServiceRequestService_CreateThenAccept(t *testing.T) {
	fx := createTestServiceRequestService(t)
	ctx := context.Background()
	fx.categoryRepo.EXPECT().FindByID(mock.Anything, fx.category.ID).Return(fx.category, nil).Once()

	request, err := fx.service.Create(ctx, fx.client, &usecase.CreateServiceRequestInput{
		CategoryID:  fx.category.ID,
		Description: "Broken socket",
		Address:     "Rua X",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ServiceRequestPending, request.Status)
	assert.Equal(t, fx.category.ID, request.CategoryID)
	assert.Equal(t, "Rua X", request.Address)
	assert.Nil(t, request.TechnicianID)
	assert.Nil(t, request.AcceptedAt)

	accepted, err := fx.service.Accept(ctx, fx.technician, request.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ServiceRequestAccepted, accepted.Status)
	require.NotNil(t, accepted.TechnicianID)
	assert.Equal(t, fx.technician.ID, *accepted.TechnicianID)
	assert.NotNil(t, accepted.AcceptedAt)

	stored, err := fx.store.ServiceRequestRepo().FindByID(ctx, request.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.TechnicianID)
	assert.Equal(t, fx.technician.ID, *stored.TechnicianID)
}

func TestServiceRequestService_ArrivalKeepsPreviousStatus(t *testing.T) {
	fx := createTestServiceRequestService(t)
	ctx := context.Background()
	request := fx.createAccepted(t)

	_, err := fx.service.MarkArrived(ctx, fx.technician, request.ID)
	require.NoError(t, err)
	_, err = fx.service.Start(ctx, fx.technician, request.ID)
	require.NoError(t, err)

	changes := fx.publisher.changes
	require.Len(t, changes, 4)

	arrived := changes[2]
	assert.Equal(t, entity.ChangeUpdate, arrived.Type)
	assert.Equal(t, "accepted", arrived.Field("status"))
	assert.Equal(t, "accepted", arrived.OldField("status"))

	started := changes[3]
	assert.Equal(t, "in_progress", started.Field("status"))
	assert.Equal(t, "accepted", started.OldField("status"))
}

func TestServiceRequestService_CancellationFeeAfterArrival(t *testing.T) {
	fx := createTestServiceRequestService(t)
	ctx := context.Background()

	request := fx.createAccepted(t)

	quote, err := fx.service.CancellationQuote(ctx, fx.client, request.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), quote.Fee)
	assert.False(t, quote.TechnicianArrived)
	assert.Equal(t, "Cancel request", quote.ActionLabel)

	_, err = fx.service.MarkArrived(ctx, fx.technician, request.ID)
	require.NoError(t, err)

	quote, err = fx.service.CancellationQuote(ctx, fx.client, request.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2000), quote.Fee)
	assert.True(t, quote.TechnicianArrived)
	assert.Equal(t, "AOA", quote.Currency)
	assert.Equal(t, "Cancel and pay 2,000 AOA", quote.ActionLabel)
	assert.Contains(t, quote.Message, "2,000 AOA")

	cancelled, err := fx.service.Cancel(ctx, fx.client, request.ID, "  changed my mind  ")
	require.NoError(t, err)
	assert.Equal(t, entity.ServiceRequestCancelled, cancelled.Status)
	assert.Equal(t, int64(2000), cancelled.CancellationFee)
	assert.Equal(t, "changed my mind", cancelled.CancellationReason)
	assert.Equal(t, entity.RoleClient, cancelled.CancelledByRole)
	require.NotNil(t, cancelled.CancelledAt)

	stored, err := fx.store.ServiceRequestRepo().FindByID(ctx, request.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ServiceRequestCancelled, stored.Status)

	// A cancelled request cannot be cancelled again.
	_, err = fx.service.Cancel(ctx, fx.client, request.ID, "")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
}

func TestServiceRequestService_CancelBeforeArrivalIsFree(t *testing.T) {
	fx := createTestServiceRequestService(t)
	ctx := context.Background()

	request := fx.createAccepted(t)

	cancelled, err := fx.service.Cancel(ctx, fx.client, request.ID, "")
	require.NoError(t, err)
	assert.Equal(t, int64(0), cancelled.CancellationFee)
}

func TestServiceRequestService_TechnicianCancelAfterArrivalIsFree(t *testing.T) {
	fx := createTestServiceRequestService(t)
	ctx := context.Background()

	request := fx.createAccepted(t)
	_, err := fx.service.MarkArrived(ctx, fx.technician, request.ID)
	require.NoError(t, err)

	quote, err := fx.service.CancellationQuote(ctx, fx.technician, request.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), quote.Fee)
}

func TestServiceRequestService_FeeFollowsSavedSettings(t *testing.T) {
	fx := createTestServiceRequestService(t)
	ctx := context.Background()

	fx.settings.settings = &entity.PlatformSettings{
		CancellationFee:    12500,
		CommissionRate:     0.15,
		DisputeWindowHours: 24,
		Currency:           "AOA",
	}

	request := fx.createAccepted(t)
	_, err := fx.service.MarkArrived(ctx, fx.technician, request.ID)
	require.NoError(t, err)

	quote, err := fx.service.CancellationQuote(ctx, fx.client, request.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(12500), quote.Fee)
	assert.Equal(t, "Cancel and pay 12,500 AOA", quote.ActionLabel)
}

func TestServiceRequestService_StartRequiresArrival(t *testing.T) {
	fx := createTestServiceRequestService(t)
	ctx := context.Background()

	request := fx.createAccepted(t)

	_, err := fx.service.Start(ctx, fx.technician, request.ID)
	assert.ErrorIs(t, err, domainerrors.ErrTechnicianNotArrived)

	_, err = fx.service.MarkArrived(ctx, fx.technician, request.ID)
	require.NoError(t, err)

	started, err := fx.service.Start(ctx, fx.technician, request.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ServiceRequestInProgress, started.Status)

	// Clients cannot cancel once the work started.
	_, err = fx.service.Cancel(ctx, fx.client, request.ID, "")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
}

func TestServiceRequestService_CompleteDeductsCommission(t *testing.T) {
	fx := createTestServiceRequestService(t)
	ctx := context.Background()

	request := fx.createAccepted(t)
	_, err := fx.service.MarkArrived(ctx, fx.technician, request.ID)
	require.NoError(t, err)
	_, err = fx.service.Start(ctx, fx.technician, request.ID)
	require.NoError(t, err)

	completed, err := fx.service.Complete(ctx, fx.technician, request.ID, 12000)
	require.NoError(t, err)
	assert.Equal(t, entity.ServiceRequestCompleted, completed.Status)
	require.NotNil(t, completed.FinalPrice)
	assert.Equal(t, int64(12000), *completed.FinalPrice)
	assert.Equal(t, int64(1200), completed.CommissionAmount)

	technician := fx.store.technician(fx.technician.ID)
	assert.Equal(t, int64(3800), technician.Balance)
	assert.Equal(t, int64(1), technician.Version)

	ledger := fx.store.ledger(fx.technician.ID)
	require.Len(t, ledger, 1)
	assert.Equal(t, entity.WalletCommissionDeduction, ledger[0].Type)
	assert.Equal(t, int64(-1200), ledger[0].Amount)
	assert.Equal(t, int64(3800), ledger[0].BalanceAfter)
	require.NotNil(t, ledger[0].ServiceRequestID)
	assert.Equal(t, request.ID, *ledger[0].ServiceRequestID)

	assert.Contains(t, fx.publisher.tables(), entity.TableWalletTransactions)
}

func TestServiceRequestService_CompleteRollsBackOnLedgerFailure(t *testing.T) {
	fx := createTestServiceRequestService(t)
	ctx := context.Background()

	request := fx.createAccepted(t)
	_, err := fx.service.MarkArrived(ctx, fx.technician, request.ID)
	require.NoError(t, err)
	_, err = fx.service.Start(ctx, fx.technician, request.ID)
	require.NoError(t, err)

	fx.store.ledgerErr = assert.AnError

	_, err = fx.service.Complete(ctx, fx.technician, request.ID, 12000)
	require.Error(t, err)

	stored, err := fx.store.ServiceRequestRepo().FindByID(ctx, request.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ServiceRequestInProgress, stored.Status)
	assert.Equal(t, int64(5000), fx.store.technician(fx.technician.ID).Balance)
	assert.Empty(t, fx.store.ledger(fx.technician.ID))
}

func TestServiceRequestService_AcceptRaceHasOneWinner(t *testing.T) {
	fx := createTestServiceRequestService(t)
	ctx := context.Background()

	fx.categoryRepo.EXPECT().FindByID(mock.Anything, fx.category.ID).Return(fx.category, nil).Once()

	request, err := fx.service.Create(ctx, fx.client, &usecase.CreateServiceRequestInput{
		CategoryID: fx.category.ID,
		Address:    "Avenida 4 de Fevereiro",
	})
	require.NoError(t, err)

	_, err = fx.service.Accept(ctx, fx.technician, request.ID)
	require.NoError(t, err)

	rival := usecase.Actor{ID: fx.store.addTechnician(5000), Role: entity.RoleTechnician}
	_, err = fx.service.Accept(ctx, rival, request.ID)
	assert.ErrorIs(t, err, domainerrors.ErrRequestAlreadyTaken)
}

func TestServiceRequestService_AcceptBelowMinimumBalance(t *testing.T) {
	fx := createTestServiceRequestService(t)
	ctx := context.Background()

	fx.settings.settings = &entity.PlatformSettings{
		CancellationFee:      2000,
		CommissionRate:       0.10,
		DisputeWindowHours:   48,
		MinTechnicianBalance: 10000,
		Currency:             "AOA",
	}

	_, err := fx.service.Accept(ctx, fx.technician, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrInsufficientBalance)

	appErr, ok := errors.AsType[domainerrors.AppError](err)
	require.True(t, ok)
	assert.Equal(t, "minimum balance is 10,000 AOA", appErr.Details())
}

func TestServiceRequestService_CreateValidation(t *testing.T) {
	fx := createTestServiceRequestService(t)
	ctx := context.Background()
	lat := -8.83

	tests := []struct {
		name  string
		actor usecase.Actor
		input *usecase.CreateServiceRequestInput
		want  error
	}{
		{
			name:  "technicians cannot create requests",
			actor: fx.technician,
			input: &usecase.CreateServiceRequestInput{Address: "x"},
			want:  domainerrors.ErrForbidden,
		},
		{
			name:  "address is required",
			actor: fx.client,
			input: &usecase.CreateServiceRequestInput{Address: "   "},
			want:  domainerrors.ErrValidationFailed,
		},
		{
			name:  "coordinates come in pairs",
			actor: fx.client,
			input: &usecase.CreateServiceRequestInput{Address: "x", Latitude: &lat},
			want:  domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.Create(ctx, tt.actor, tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestServiceRequestService_CancelReasonTooLong(t *testing.T) {
	fx := createTestServiceRequestService(t)

	_, err := fx.service.Cancel(context.Background(), fx.client, uuid.New(), strings.Repeat("a", 501))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestServiceRequestService_GetHidesOtherClientsRequests(t *testing.T) {
	fx := createTestServiceRequestService(t)
	ctx := context.Background()

	request := fx.createAccepted(t)

	stranger := usecase.Actor{ID: uuid.New(), Role: entity.RoleClient}
	_, err := fx.service.Get(ctx, stranger, request.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	got, err := fx.service.Get(ctx, fx.client, request.ID)
	require.NoError(t, err)
	assert.Equal(t, request.ID, got.ID)
}
