package repository

import (
	"context"

	"servihub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrWalletTransactionNotFound is returned when no ledger entry matches.
	ErrWalletTransactionNotFound = errors.New("wallet transaction not found")
	// ErrDuplicateReference is returned when a ledger reference was already recorded.
	ErrDuplicateReference = errors.New("wallet reference already recorded")
)

// WalletRepository defines ledger persistence.
type WalletRepository interface {
	// CreateTransaction appends a ledger entry.
	CreateTransaction(ctx context.Context, txn *entity.WalletTransaction) error

	// FindByReference retrieves the ledger entry recorded with a reference.
	FindByReference(ctx context.Context, reference string) (*entity.WalletTransaction, error)

	// ListByTechnician retrieves ledger entries of a technician, newest first. limit <= 0 means all.
	ListByTechnician(ctx context.Context, technicianID uuid.UUID, limit int) ([]*entity.WalletTransaction, error)
}

// FinancialsRepository aggregates platform money flows.
type FinancialsRepository interface {
	Summary(ctx context.Context) (*entity.FinancialSummary, error)
}
