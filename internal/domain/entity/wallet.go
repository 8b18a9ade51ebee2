package entity

import (
	"time"

	"github.com/google/uuid"
)

// WalletTransactionType distinguishes credits from debits on a technician wallet.
type WalletTransactionType string

const (
	WalletDeposit             WalletTransactionType = "deposit"
	WalletCommissionDeduction WalletTransactionType = "commission_deduction"
)

// WalletTransactionStatus is the settlement state of a ledger entry.
type WalletTransactionStatus string

const (
	WalletTransactionPending   WalletTransactionStatus = "pending"
	WalletTransactionCompleted WalletTransactionStatus = "completed"
	WalletTransactionFailed    WalletTransactionStatus = "failed"
)

// WalletTransaction is one ledger entry. BalanceAfter equals the technician balance right after it was applied.
type WalletTransaction struct {
	ID               uuid.UUID               `json:"id"`
	TechnicianID     uuid.UUID               `json:"technician_id"`
	Type             WalletTransactionType   `json:"type"`
	Amount           int64                   `json:"amount"`
	BalanceAfter     int64                   `json:"balance_after"`
	Status           WalletTransactionStatus `json:"status"`
	Reference        string                  `json:"reference,omitempty"`
	ServiceRequestID *uuid.UUID              `json:"service_request_id,omitempty"`
	CreatedAt        time.Time               `json:"created_at"`
}

// Wallet is the technician balance with its most recent ledger entries.
type Wallet struct {
	TechnicianID uuid.UUID            `json:"technician_id"`
	Balance      int64                `json:"balance"`
	Currency     string               `json:"currency"`
	BelowMinimum bool                 `json:"below_minimum"`
	Recent       []*WalletTransaction `json:"recent_transactions"`
}

// PendingPayment is a technician whose balance fell below the platform minimum.
type PendingPayment struct {
	Technician *Technician `json:"technician"`
	Shortfall  int64       `json:"shortfall"`
}

// PaymentStatus is the provider-side state of a card payment.
type PaymentStatus string

const (
	PaymentApproved PaymentStatus = "approved"
	PaymentPending  PaymentStatus = "pending"
	PaymentRejected PaymentStatus = "rejected"
)

// PaymentCharge asks the gateway to charge a card for a wallet top-up.
type PaymentCharge struct {
	Amount            int64
	Currency          string
	Description       string
	CardToken         string
	PaymentMethodID   string
	Installments      int
	PayerEmail        string
	ExternalReference string
}

// PaymentResult is the gateway answer to a charge.
type PaymentResult struct {
	ProviderPaymentID string        `json:"provider_payment_id"`
	Status            PaymentStatus `json:"status"`
	StatusDetail      string        `json:"status_detail"`
}
