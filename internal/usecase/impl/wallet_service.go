package impl

import (
	"context"
	"log/slog"
	"strconv"

	"servihub/internal/cache"
	deliverycontext "servihub/internal/delivery/context"
	"servihub/internal/domain/entity"
	domainerrors "servihub/internal/domain/errors"
	"servihub/internal/domain/repository"
	"servihub/internal/domain/service"
	"servihub/internal/errors"
	"servihub/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultTransactionLimit = 20
	maxTransactionLimit     = 100
	walletRecentLimit       = 10

	paymentReferencePrefix = "mp:"
)

type walletService struct {
	txManager      repository.TransactionManager
	technicianRepo repository.TechnicianRepository
	walletRepo     repository.WalletRepository
	settingsRepo   repository.SettingsRepository
	gateway        service.PaymentGateway
	notifier       *changeNotifier
	cache          *cache.Store
	retrier        walletRetrier
	defaults       *entity.PlatformSettings
	now            clock
	logger         *slog.Logger
}

// WalletServiceParams holds dependencies for WalletService, injected by Fx.
type WalletServiceParams struct {
	fx.In
	CommonParams

	TxManager      repository.TransactionManager
	TechnicianRepo repository.TechnicianRepository
	WalletRepo     repository.WalletRepository
	SettingsRepo   repository.SettingsRepository
	Gateway        service.PaymentGateway
}

// NewWalletService creates a new wallet service instance
func NewWalletService(params WalletServiceParams) usecase.WalletUsecase {
	return &walletService{
		txManager:      params.TxManager,
		technicianRepo: params.TechnicianRepo,
		walletRepo:     params.WalletRepo,
		settingsRepo:   params.SettingsRepo,
		gateway:        params.Gateway,
		notifier:       newChangeNotifier(params.CommonParams),
		cache:          params.Cache,
		retrier:        newWalletRetrier(params.Config, params.Logger),
		defaults:       defaultSettings(params.Config),
		logger:         params.Logger,
	}
}

func (srv *walletService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *walletService) GetWallet(ctx context.Context, actor usecase.Actor, technicianID uuid.UUID) (*entity.Wallet, error) {
	if err := srv.canSeeWallet(actor, technicianID); err != nil {
		return nil, err
	}

	technician, err := cache.Fetch(ctx, srv.cache, cache.Scoped(cache.TechnicianProfile, technicianID.String()), func(ctx context.Context) (*entity.Technician, error) {
		technician, err := srv.technicianRepo.FindByID(ctx, technicianID)
		if errors.Is(err, repository.ErrTechnicianNotFound) {
			return nil, domainerrors.ErrTechnicianNotFound
		}

		return technician, err
	})
	if err != nil {
		return nil, err
	}

	recent, err := srv.transactions(ctx, technicianID, walletRecentLimit)
	if err != nil {
		return nil, err
	}

	settings, err := loadSettings(ctx, srv.settingsRepo, srv.defaults)
	if err != nil {
		return nil, err
	}

	return &entity.Wallet{
		TechnicianID: technician.ProfileID,
		Balance:      technician.Balance,
		Currency:     settings.Currency,
		BelowMinimum: technician.Balance < settings.MinTechnicianBalance,
		Recent:       recent,
	}, nil
}

func (srv *walletService) ListTransactions(ctx context.Context, actor usecase.Actor, technicianID uuid.UUID, limit int) ([]*entity.WalletTransaction, error) {
	if err := srv.canSeeWallet(actor, technicianID); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultTransactionLimit
	}
	if limit > maxTransactionLimit {
		limit = maxTransactionLimit
	}

	return srv.transactions(ctx, technicianID, limit)
}

func (srv *walletService) transactions(ctx context.Context, technicianID uuid.UUID, limit int) ([]*entity.WalletTransaction, error) {
	key := cache.Scoped(cache.WalletTransactions, technicianID.String(), strconv.Itoa(limit))

	return cache.Fetch(ctx, srv.cache, key, func(ctx context.Context) ([]*entity.WalletTransaction, error) {
		return srv.walletRepo.ListByTechnician(ctx, technicianID, limit)
	})
}

// Deposit credits a technician wallet on behalf of an admin.
func (srv *walletService) Deposit(ctx context.Context, actor usecase.Actor, input *usecase.DepositInput) (*entity.WalletTransaction, error) {
	if err := requireRole(actor, entity.RoleAdmin); err != nil {
		return nil, err
	}
	if input.TechnicianID == uuid.Nil {
		return nil, validationError("technician_id is required")
	}

	return srv.deposit(ctx, input.TechnicianID, input.Amount, input.Reference)
}

// deposit runs the optimistic balance update, retrying the whole transaction on version conflicts.
// A reference already in the ledger returns the recorded transaction without a second credit.
func (srv *walletService) deposit(ctx context.Context, technicianID uuid.UUID, amount int64, reference string) (*entity.WalletTransaction, error) {
	if amount <= 0 {
		return nil, domainerrors.ErrInvalidAmount
	}

	if reference != "" {
		existing, err := srv.findByReference(ctx, reference)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return existing, nil
		}
	}

	entry := walletEntry{
		TechnicianID: technicianID,
		Type:         entity.WalletDeposit,
		Amount:       amount,
		Reference:    reference,
	}

	var result *walletResult
	err := srv.retrier.run(ctx, technicianID, func() error {
		return srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
			var err error
			result, err = applyWalletEntry(ctx, repos, entry, srv.now)

			return err
		})
	})
	if errors.Is(err, repository.ErrDuplicateReference) {
		existing, findErr := srv.findByReference(ctx, reference)
		if findErr != nil {
			return nil, findErr
		}
		if existing != nil {
			return existing, nil
		}
	}
	if err != nil {
		if _, ok := errors.AsType[domainerrors.AppError](err); ok {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to deposit")
	}

	srv.notifier.committed(ctx, cache.MutationWalletDeposit,
		srv.notifier.rowChange(ctx, entity.TableTechnicians, entity.ChangeUpdate, result.Technician.ProfileID, result.Technician),
		srv.notifier.rowChange(ctx, entity.TableWalletTransactions, entity.ChangeInsert, result.Transaction.ID, result.Transaction),
	)

	srv.log(ctx).Info("Wallet deposit recorded",
		slog.String("technician_id", technicianID.String()),
		slog.Int64("amount", amount),
		slog.Int64("balance_after", result.Transaction.BalanceAfter),
	)

	return result.Transaction, nil
}

func (srv *walletService) findByReference(ctx context.Context, reference string) (*entity.WalletTransaction, error) {
	txn, err := srv.walletRepo.FindByReference(ctx, reference)
	if errors.Is(err, repository.ErrWalletTransactionNotFound) {
		return nil, nil //nolint:nilnil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up wallet reference")
	}

	return txn, nil
}

// TopUp charges the technician's card and credits the wallet once the payment is approved.
// Pending payments return without a ledger entry.
func (srv *walletService) TopUp(ctx context.Context, actor usecase.Actor, input *usecase.TopUpInput) (*usecase.TopUpOutput, error) {
	if err := requireRole(actor, entity.RoleTechnician); err != nil {
		return nil, err
	}
	if input.Amount <= 0 {
		return nil, domainerrors.ErrInvalidAmount
	}
	if input.CardToken == "" || input.PaymentMethodID == "" {
		return nil, validationError("card_token and payment_method_id are required")
	}

	settings, err := loadSettings(ctx, srv.settingsRepo, srv.defaults)
	if err != nil {
		return nil, err
	}

	result, err := srv.gateway.Charge(ctx, &entity.PaymentCharge{
		Amount:            input.Amount,
		Currency:          settings.Currency,
		Description:       "Wallet top-up",
		CardToken:         input.CardToken,
		PaymentMethodID:   input.PaymentMethodID,
		Installments:      input.Installments,
		PayerEmail:        input.PayerEmail,
		ExternalReference: "wallet:" + actor.ID.String(),
	})
	if err != nil {
		srv.log(ctx).Error("Payment gateway failed",
			slog.String("technician_id", actor.ID.String()),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrPaymentFailed.WithDetails(err.Error())
	}

	output := &usecase.TopUpOutput{Payment: result}

	switch result.Status {
	case entity.PaymentApproved:
		txn, err := srv.deposit(ctx, actor.ID, input.Amount, paymentReferencePrefix+result.ProviderPaymentID)
		if err != nil {
			return nil, err
		}
		output.Transaction = txn

		return output, nil

	case entity.PaymentPending:
		srv.log(ctx).Info("Wallet top-up pending",
			slog.String("technician_id", actor.ID.String()),
			slog.String("payment_id", result.ProviderPaymentID),
		)

		return output, nil

	default:
		return nil, domainerrors.ErrPaymentDeclined.WithDetails(result.StatusDetail)
	}
}

func (srv *walletService) ListPendingPayments(ctx context.Context, actor usecase.Actor) ([]*entity.PendingPayment, error) {
	if err := requireRole(actor, entity.RoleAdmin); err != nil {
		return nil, err
	}

	return cache.Fetch(ctx, srv.cache, cache.Global(cache.PendingPayments), func(ctx context.Context) ([]*entity.PendingPayment, error) {
		settings, err := loadSettings(ctx, srv.settingsRepo, srv.defaults)
		if err != nil {
			return nil, err
		}

		technicians, err := srv.technicianRepo.ListBelowBalance(ctx, settings.MinTechnicianBalance)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list technicians below minimum balance")
		}

		pending := make([]*entity.PendingPayment, 0, len(technicians))
		for _, technician := range technicians {
			pending = append(pending, &entity.PendingPayment{
				Technician: technician,
				Shortfall:  settings.MinTechnicianBalance - technician.Balance,
			})
		}

		return pending, nil
	})
}

func (srv *walletService) canSeeWallet(actor usecase.Actor, technicianID uuid.UUID) error {
	if err := requireRole(actor, entity.RoleAdmin, entity.RoleTechnician); err != nil {
		return err
	}
	if actor.Role == entity.RoleTechnician && actor.ID != technicianID {
		return domainerrors.ErrForbidden
	}

	return nil
}

type financialsService struct {
	financialsRepo repository.FinancialsRepository
	settingsRepo   repository.SettingsRepository
	cache          *cache.Store
	defaults       *entity.PlatformSettings
	now            clock
}

// FinancialsServiceParams holds dependencies for FinancialsService, injected by Fx.
type FinancialsServiceParams struct {
	fx.In
	CommonParams

	FinancialsRepo repository.FinancialsRepository
	SettingsRepo   repository.SettingsRepository
}

// NewFinancialsService creates a new financials service instance
func NewFinancialsService(params FinancialsServiceParams) usecase.FinancialsUsecase {
	return &financialsService{
		financialsRepo: params.FinancialsRepo,
		settingsRepo:   params.SettingsRepo,
		cache:          params.Cache,
		defaults:       defaultSettings(params.Config),
	}
}

func (srv *financialsService) Summary(ctx context.Context, actor usecase.Actor) (*entity.FinancialSummary, error) {
	if err := requireRole(actor, entity.RoleAdmin); err != nil {
		return nil, err
	}

	return cache.Fetch(ctx, srv.cache, cache.Global(cache.Financials), func(ctx context.Context) (*entity.FinancialSummary, error) {
		summary, err := srv.financialsRepo.Summary(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to compute financial summary")
		}

		settings, err := loadSettings(ctx, srv.settingsRepo, srv.defaults)
		if err != nil {
			return nil, err
		}
		summary.Currency = settings.Currency
		summary.GeneratedAt = srv.now.now()

		return summary, nil
	})
}
