package payment

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"servihub/internal/domain/entity"
	"servihub/internal/domain/service"
)

// Card tokens understood by the mock gateway. Any other token is approved.
const (
	MockTokenRejected = "mock-rejected"
	MockTokenPending  = "mock-pending"
)

type mockGateway struct {
	seq    atomic.Int64
	logger *slog.Logger
}

// NewMockGateway creates a gateway that answers without calling a provider.
func NewMockGateway(logger *slog.Logger) service.PaymentGateway {
	return &mockGateway{logger: logger}
}

func (g *mockGateway) Charge(_ context.Context, charge *entity.PaymentCharge) (*entity.PaymentResult, error) {
	id := strconv.FormatInt(time.Now().UTC().UnixNano()+g.seq.Add(1), 10)

	result := &entity.PaymentResult{
		ProviderPaymentID: id,
		Status:            entity.PaymentApproved,
		StatusDetail:      "accredited",
	}

	switch {
	case strings.HasPrefix(charge.CardToken, MockTokenRejected):
		result.Status = entity.PaymentRejected
		result.StatusDetail = "cc_rejected_other_reason"
	case strings.HasPrefix(charge.CardToken, MockTokenPending):
		result.Status = entity.PaymentPending
		result.StatusDetail = "pending_contingency"
	}

	g.logger.Debug("[MockPayment] Charge answered",
		slog.String("reference", charge.ExternalReference),
		slog.String("status", string(result.Status)),
	)

	return result, nil
}
