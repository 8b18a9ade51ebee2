package service

import (
	"context"

	"servihub/internal/domain/entity"
)

// PaymentGateway charges cards for wallet top-ups.
type PaymentGateway interface {
	// Charge creates a payment. A non-nil result may still be pending or rejected.
	Charge(ctx context.Context, charge *entity.PaymentCharge) (*entity.PaymentResult, error)
}
