package payment

import (
	"context"
	"fmt"
	"log/slog"

	"servihub/config"
	"servihub/internal/domain/constants"
	"servihub/internal/domain/entity"
	"servihub/internal/domain/service"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/pkg/errors"
)

var (
	ErrMissingAccessToken = errors.New("missing mercado pago access token")
	ErrGatewayNotReady    = errors.New("payment gateway not configured")
)

// mercadoPagoGateway charges card tokens through the Mercado Pago payments API.
type mercadoPagoGateway struct {
	client payment.Client
	logger *slog.Logger
}

// New selects the payment gateway from configuration.
func New(cfg *config.Config, logger *slog.Logger) (service.PaymentGateway, error) {
	if cfg.Payments == nil || cfg.Payments.Provider == "" || cfg.Payments.Provider == constants.PaymentProviderMock {
		logger.Info("Using mock payment gateway")

		return NewMockGateway(logger), nil
	}

	if cfg.Payments.Provider != constants.PaymentProviderMercadoPago {
		return nil, errors.Errorf("unknown payment provider: %s", cfg.Payments.Provider)
	}

	return NewMercadoPagoGateway(cfg.Payments.AccessToken, logger)
}

// NewMercadoPagoGateway creates a gateway authenticated with accessToken.
func NewMercadoPagoGateway(accessToken string, logger *slog.Logger) (service.PaymentGateway, error) {
	if accessToken == "" {
		return nil, ErrMissingAccessToken
	}

	sdkCfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create mercado pago config")
	}

	logger.Info("Mercado Pago client initialized")

	return &mercadoPagoGateway{
		client: payment.NewClient(sdkCfg),
		logger: logger,
	}, nil
}

func (g *mercadoPagoGateway) Charge(ctx context.Context, charge *entity.PaymentCharge) (*entity.PaymentResult, error) {
	if g.client == nil {
		return nil, ErrGatewayNotReady
	}

	req := payment.Request{
		TransactionAmount: float64(charge.Amount),
		Token:             charge.CardToken,
		Description:       charge.Description,
		Installments:      charge.Installments,
		PaymentMethodID:   charge.PaymentMethodID,
		ExternalReference: charge.ExternalReference,
		Payer: &payment.PayerRequest{
			Email: charge.PayerEmail,
		},
	}
	if req.Installments <= 0 {
		req.Installments = 1
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		return nil, errors.Wrap(err, "mercado pago create payment")
	}

	g.logger.Info("Payment created",
		slog.String("reference", charge.ExternalReference),
		slog.Int64("provider_payment_id", int64(resp.ID)),
		slog.String("status", resp.Status),
	)

	return &entity.PaymentResult{
		ProviderPaymentID: fmt.Sprintf("%d", resp.ID),
		Status:            mapStatus(resp.Status),
		StatusDetail:      resp.StatusDetail,
	}, nil
}

// mapStatus folds the provider's states onto the three the wallet understands.
func mapStatus(status string) entity.PaymentStatus {
	switch status {
	case "approved", "authorized":
		return entity.PaymentApproved
	case "pending", "in_process", "in_mediation":
		return entity.PaymentPending
	default:
		return entity.PaymentRejected
	}
}
