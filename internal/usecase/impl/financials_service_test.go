package impl

import (
	"context"
	"testing"

	"servihub/internal/cache"
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

func TestFinancialsService_Summary(t *testing.T) {
	common, _ := newTestCommon(newTestConfig())
	financials := mockRepo.NewMockFinancialsRepository(t)
	settings := mockRepo.NewMockSettingsRepository(t)
	srv := NewFinancialsService(FinancialsServiceParams{
		CommonParams:   common,
		FinancialsRepo: financials,
		SettingsRepo:   settings,
	})
	admin := usecase.Actor{ID: uuid.New(), Role: entity.RoleAdmin}

	financials.EXPECT().Summary(mock.Anything).
		RunAndReturn(func(context.Context) (*entity.FinancialSummary, error) {
			return &entity.FinancialSummary{TotalDeposits: 50000, TotalCommissions: 1200, CompletedRequests: 4}, nil
		}).Twice()
	settings.EXPECT().Get(mock.Anything).Return(nil, repository.ErrSettingsNotFound).Twice()

	summary, err := srv.Summary(context.Background(), admin)
	require.NoError(t, err)
	assert.Equal(t, int64(50000), summary.TotalDeposits)
	assert.Equal(t, "AOA", summary.Currency)
	assert.False(t, summary.GeneratedAt.IsZero())

	_, err = srv.Summary(context.Background(), admin)
	require.NoError(t, err)

	common.Cache.InvalidateFor(context.Background(), cache.MutationWalletDeposit)

	_, err = srv.Summary(context.Background(), admin)
	require.NoError(t, err)
}

func TestFinancialsService_SummaryErrors(t *testing.T) {
	t.Run("not an admin", func(t *testing.T) {
		common, _ := newTestCommon(newTestConfig())
		srv := NewFinancialsService(FinancialsServiceParams{
			CommonParams:   common,
			FinancialsRepo: mockRepo.NewMockFinancialsRepository(t),
			SettingsRepo:   mockRepo.NewMockSettingsRepository(t),
		})

		_, err := srv.Summary(context.Background(), usecase.Actor{ID: uuid.New(), Role: entity.RoleTechnician})

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("aggregate failure is not cached", func(t *testing.T) {
		common, _ := newTestCommon(newTestConfig())
		financials := mockRepo.NewMockFinancialsRepository(t)
		srv := NewFinancialsService(FinancialsServiceParams{
			CommonParams:   common,
			FinancialsRepo: financials,
			SettingsRepo:   mockRepo.NewMockSettingsRepository(t),
		})
		admin := usecase.Actor{ID: uuid.New(), Role: entity.RoleAdmin}
		financials.EXPECT().Summary(mock.Anything).Return(nil, errors.New("timeout")).Twice()

		_, err := srv.Summary(context.Background(), admin)
		require.Error(t, err)
		_, err = srv.Summary(context.Background(), admin)
		require.Error(t, err)
	})
}
