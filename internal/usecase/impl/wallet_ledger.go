package impl

import (
	"context"
	"log/slog"

	"servihub/config"
	"servihub/internal/domain/entity"
	domainerrors "servihub/internal/domain/errors"
	"servihub/internal/domain/repository"
	"servihub/internal/errors"

	"github.com/google/uuid"
)

const defaultMaxConflictRetries = 3

// walletEntry is one signed balance change: positive for deposits, negative for commissions.
type walletEntry struct {
	TechnicianID     uuid.UUID
	Type             entity.WalletTransactionType
	Amount           int64
	Reference        string
	ServiceRequestID *uuid.UUID
}

// walletResult is the technician after the change and the ledger row recording it.
type walletResult struct {
	Technician  *entity.Technician
	Transaction *entity.WalletTransaction
}

// applyWalletEntry updates the technician balance with an optimistic version check and
// records the ledger row. It must run inside a transaction so a failed insert rolls the balance back.
func applyWalletEntry(ctx context.Context, repos repository.RepositoryFactory, entry walletEntry, now clock) (*walletResult, error) {
	technician, err := repos.TechnicianRepo().FindByID(ctx, entry.TechnicianID)
	if errors.Is(err, repository.ErrTechnicianNotFound) {
		return nil, domainerrors.ErrTechnicianNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read technician balance")
	}

	balance := technician.Balance + entry.Amount
	if err := repos.TechnicianRepo().UpdateBalance(ctx, technician.ProfileID, balance, technician.Version); err != nil {
		return nil, errors.Wrap(err, "failed to update technician balance")
	}

	txn := &entity.WalletTransaction{
		ID:               uuid.New(),
		TechnicianID:     technician.ProfileID,
		Type:             entry.Type,
		Amount:           entry.Amount,
		BalanceAfter:     balance,
		Status:           entity.WalletTransactionCompleted,
		Reference:        entry.Reference,
		ServiceRequestID: entry.ServiceRequestID,
		CreatedAt:        now.now(),
	}
	if err := repos.WalletRepo().CreateTransaction(ctx, txn); err != nil {
		return nil, errors.Wrap(err, "failed to record wallet transaction")
	}

	technician.Balance = balance
	technician.Version++
	technician.UpdatedAt = txn.CreatedAt

	return &walletResult{Technician: technician, Transaction: txn}, nil
}

// walletRetrier reruns a wallet transaction on version conflicts.
type walletRetrier struct {
	maxRetries int
	logger     *slog.Logger
}

func newWalletRetrier(cfg *config.Config, logger *slog.Logger) walletRetrier {
	retries := defaultMaxConflictRetries
	if cfg != nil && cfg.Wallet != nil && cfg.Wallet.MaxConflictRetries > 0 {
		retries = cfg.Wallet.MaxConflictRetries
	}

	return walletRetrier{maxRetries: retries, logger: logger}
}

// run calls fn once plus up to maxRetries more times while it fails with a version conflict.
// Exhausting the retries yields ErrWalletConflict.
func (r walletRetrier) run(ctx context.Context, technicianID uuid.UUID, fn func() error) error {
	for attempt := 0; ; attempt++ {
		err := fn()
		if !errors.Is(err, repository.ErrVersionConflict) {
			return err
		}

		if attempt >= r.maxRetries {
			return errors.Wrapf(domainerrors.ErrWalletConflict, "gave up after %d attempts", attempt+1)
		}

		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, "wallet retry aborted")
		}

		r.logger.DebugContext(ctx, "Wallet version conflict, retrying",
			slog.String("technician_id", technicianID.String()),
			slog.Int("attempt", attempt+1),
		)
	}
}
