package impl

import (
	"context"
	"testing"

	"servihub/internal/domain/entity"
	domainerrors "servihub/internal/domain/errors"
	"servihub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestSettingsService(t *testing.T) (usecase.SettingsUsecase, *memorySettings, *recordingPublisher) {
	t.Helper()

	settings := &memorySettings{}
	common, publisher := newTestCommon(newTestConfig())

	return NewSettingsService(SettingsServiceParams{
		CommonParams: common,
		SettingsRepo: settings,
	}), settings, publisher
}

func TestSettingsService_GetFallsBackToConfig(t *testing.T) {
	service, _, _ := createTestSettingsService(t)

	settings, err := service.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(2000), settings.CancellationFee)
	assert.InDelta(t, 0.10, settings.CommissionRate, 1e-9)
	assert.Equal(t, 48, settings.DisputeWindowHours)
	assert.Equal(t, "AOA", settings.Currency)
}

func TestSettingsService_UpdateInvalidatesCachedSettings(t *testing.T) {
	service, repo, publisher := createTestSettingsService(t)
	admin := usecase.Actor{ID: uuid.New(), Role: entity.RoleAdmin}

	_, err := service.Get(context.Background())
	require.NoError(t, err)

	fee := int64(3500)
	currency := " usd "
	updated, err := service.Update(context.Background(), admin, &usecase.SettingsInput{
		CancellationFee: &fee,
		Currency:        &currency,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3500), updated.CancellationFee)
	assert.Equal(t, "USD", updated.Currency)
	assert.Equal(t, 48, updated.DisputeWindowHours, "untouched fields keep their value")
	assert.Equal(t, "USD", repo.settings.Currency)
	assert.Equal(t, []string{entity.TablePlatformSettings}, publisher.tables())

	reloaded, err := service.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3500), reloaded.CancellationFee)
}

func TestSettingsService_UpdateValidation(t *testing.T) {
	service, repo, _ := createTestSettingsService(t)
	admin := usecase.Actor{ID: uuid.New(), Role: entity.RoleAdmin}

	negative := int64(-1)
	fullRate := 1.0
	noHours := 0
	longCurrency := "KWZA"

	tests := []struct {
		name  string
		input usecase.SettingsInput
	}{
		{name: "negative fee", input: usecase.SettingsInput{CancellationFee: &negative}},
		{name: "commission of 100%", input: usecase.SettingsInput{CommissionRate: &fullRate}},
		{name: "zero dispute window", input: usecase.SettingsInput{DisputeWindowHours: &noHours}},
		{name: "currency code length", input: usecase.SettingsInput{Currency: &longCurrency}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Update(context.Background(), admin, &tt.input)

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
	assert.Nil(t, repo.settings)
}

func TestSettingsService_UpdateRequiresAdmin(t *testing.T) {
	service, _, _ := createTestSettingsService(t)

	_, err := service.Update(context.Background(), usecase.Actor{ID: uuid.New(), Role: entity.RoleTechnician}, &usecase.SettingsInput{})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = service.Update(context.Background(), usecase.Actor{}, &usecase.SettingsInput{})
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}
