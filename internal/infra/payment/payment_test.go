package payment

import (
	"context"
	"log/slog"
	"testing"

	"servihub/config"
	"servihub/internal/domain/constants"
	"servihub/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockGateway_Charge(t *testing.T) {
	gateway := NewMockGateway(slog.Default())

	tests := []struct {
		name   string
		token  string
		status entity.PaymentStatus
	}{
		{name: "approved", token: "tok_123", status: entity.PaymentApproved},
		{name: "rejected", token: MockTokenRejected, status: entity.PaymentRejected},
		{name: "pending", token: MockTokenPending + "-1", status: entity.PaymentPending},
	}

	seen := make(map[string]bool)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := gateway.Charge(context.Background(), &entity.PaymentCharge{
				Amount:            5000,
				CardToken:         tt.token,
				ExternalReference: "topup-" + tt.name,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.status, result.Status)
			assert.NotEmpty(t, result.ProviderPaymentID)
			assert.False(t, seen[result.ProviderPaymentID])
			seen[result.ProviderPaymentID] = true
		})
	}
}

func TestMapStatus(t *testing.T) {
	assert.Equal(t, entity.PaymentApproved, mapStatus("approved"))
	assert.Equal(t, entity.PaymentPending, mapStatus("in_process"))
	assert.Equal(t, entity.PaymentRejected, mapStatus("cancelled"))
	assert.Equal(t, entity.PaymentRejected, mapStatus("rejected"))
}

func TestNew_SelectsProvider(t *testing.T) {
	cfg := &config.Config{}
	gateway, err := New(cfg, slog.Default())
	require.NoError(t, err)
	assert.IsType(t, &mockGateway{}, gateway)

	cfg.Payments = &config.PaymentsConfig{Provider: constants.PaymentProviderMercadoPago}
	_, err = New(cfg, slog.Default())
	assert.ErrorIs(t, err, ErrMissingAccessToken)

	cfg.Payments = &config.PaymentsConfig{Provider: "paypal"}
	_, err = New(cfg, slog.Default())
	assert.Error(t, err)
}
