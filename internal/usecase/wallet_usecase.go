package usecase

import (
	"context"

	"servihub/internal/domain/entity"

	"github.com/google/uuid"
)

// DepositInput credits a technician wallet. A non-empty Reference makes the deposit idempotent.
type DepositInput struct {
	TechnicianID uuid.UUID
	Amount       int64
	Reference    string
}

// TopUpInput is a card payment a technician makes to fund the wallet.
type TopUpInput struct {
	Amount          int64
	CardToken       string
	PaymentMethodID string
	Installments    int
	PayerEmail      string
}

// TopUpOutput returns the payment outcome and, once approved, the ledger entry.
type TopUpOutput struct {
	Payment     *entity.PaymentResult     `json:"payment"`
	Transaction *entity.WalletTransaction `json:"transaction,omitempty"`
}

// WalletUsecase manages technician wallets.
type WalletUsecase interface {
	GetWallet(ctx context.Context, actor Actor, technicianID uuid.UUID) (*entity.Wallet, error)
	ListTransactions(ctx context.Context, actor Actor, technicianID uuid.UUID, limit int) ([]*entity.WalletTransaction, error)

	// Deposit is the admin credit. Balance update and ledger insert commit together.
	Deposit(ctx context.Context, actor Actor, input *DepositInput) (*entity.WalletTransaction, error)

	// TopUp charges a card and deposits the approved amount.
	TopUp(ctx context.Context, actor Actor, input *TopUpInput) (*TopUpOutput, error)

	// ListPendingPayments returns technicians below the platform minimum balance.
	ListPendingPayments(ctx context.Context, actor Actor) ([]*entity.PendingPayment, error)
}

// FinancialsUsecase reports platform money flows to admins.
type FinancialsUsecase interface {
	Summary(ctx context.Context, actor Actor) (*entity.FinancialSummary, error)
}
