package postgres

import (
	"context"
	"time"

	"servihub/internal/domain/entity"
	domainerrors "servihub/internal/domain/errors"
	"servihub/internal/domain/repository"
	"servihub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// walletRepository implements the repository.WalletRepository interface.
type walletRepository struct {
	db *gorm.DB
}

// NewWalletRepository is the constructor for walletRepository.
func NewWalletRepository(db *gorm.DB) repository.WalletRepository {
	return &walletRepository{
		db: db,
	}
}

// CreateTransaction appends a ledger entry.
func (repo *walletRepository) CreateTransaction(ctx context.Context, txn *entity.WalletTransaction) error {
	txnM := fromWalletTransactionDomain(txn)

	if err := repo.db.WithContext(ctx).Create(txnM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateReference
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrTechnicianNotFound.WrapMessage("invalid technician reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create wallet transaction")
	}

	txn.ID = txnM.ID
	txn.CreatedAt = txnM.CreatedAt

	return nil
}

// FindByReference retrieves the ledger entry recorded with a reference.
func (repo *walletRepository) FindByReference(ctx context.Context, reference string) (*entity.WalletTransaction, error) {
	var txnM model.WalletTransactionModel

	if err := repo.db.WithContext(ctx).
		Where("reference = ?", reference).
		First(&txnM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWalletTransactionNotFound
		}

		return nil, errors.Wrap(err, "failed to find wallet transaction by reference")
	}

	return toWalletTransactionDomain(&txnM), nil
}

// ListByTechnician retrieves ledger entries of a technician, newest first.
func (repo *walletRepository) ListByTechnician(ctx context.Context, technicianID uuid.UUID, limit int) ([]*entity.WalletTransaction, error) {
	var txnModels []*model.WalletTransactionModel

	query := repo.db.WithContext(ctx).
		Where("technician_id = ?", technicianID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&txnModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list wallet transactions")
	}

	txns := make([]*entity.WalletTransaction, 0, len(txnModels))
	for _, txnM := range txnModels {
		txns = append(txns, toWalletTransactionDomain(txnM))
	}

	return txns, nil
}

// financialsRepository implements the repository.FinancialsRepository interface.
type financialsRepository struct {
	db *gorm.DB
}

// NewFinancialsRepository is the constructor for financialsRepository.
func NewFinancialsRepository(db *gorm.DB) repository.FinancialsRepository {
	return &financialsRepository{
		db: db,
	}
}

type walletTotals struct {
	TotalDeposits    int64
	TotalCommissions int64
}

type requestTotals struct {
	CompletedRequests int64
	CancelledRequests int64
	CancellationFees  int64
}

type orderTotals struct {
	OrdersTotal     int64
	DeliveredOrders int64
}

// Summary aggregates the ledger, service requests and orders.
func (repo *financialsRepository) Summary(ctx context.Context) (*entity.FinancialSummary, error) {
	db := repo.db.WithContext(ctx)

	var wallet walletTotals
	if err := db.Model(&model.WalletTransactionModel{}).
		Select(
			"COALESCE(SUM(amount) FILTER (WHERE type = ?), 0) AS total_deposits, "+
				"COALESCE(-SUM(amount) FILTER (WHERE type = ?), 0) AS total_commissions",
			string(entity.WalletDeposit), string(entity.WalletCommissionDeduction),
		).
		Where("status = ?", string(entity.WalletTransactionCompleted)).
		Scan(&wallet).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate wallet transactions")
	}

	var outstanding int64
	if err := db.Model(&model.TechnicianModel{}).
		Select("COALESCE(SUM(balance), 0)").
		Scan(&outstanding).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate technician balances")
	}

	var requests requestTotals
	if err := db.Model(&model.ServiceRequestModel{}).
		Select(
			"COUNT(*) FILTER (WHERE status = ?) AS completed_requests, "+
				"COUNT(*) FILTER (WHERE status = ?) AS cancelled_requests, "+
				"COALESCE(SUM(cancellation_fee), 0) AS cancellation_fees",
			string(entity.ServiceRequestCompleted), string(entity.ServiceRequestCancelled),
		).
		Scan(&requests).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate service requests")
	}

	var orders orderTotals
	if err := db.Model(&model.OrderModel{}).
		Select(
			"COALESCE(SUM(total) FILTER (WHERE status <> ?), 0) AS orders_total, "+
				"COUNT(*) FILTER (WHERE status = ?) AS delivered_orders",
			string(entity.OrderCancelled), string(entity.OrderDelivered),
		).
		Scan(&orders).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate orders")
	}

	return &entity.FinancialSummary{
		TotalDeposits:      wallet.TotalDeposits,
		TotalCommissions:   wallet.TotalCommissions,
		OutstandingBalance: outstanding,
		CompletedRequests:  requests.CompletedRequests,
		CancelledRequests:  requests.CancelledRequests,
		CancellationFees:   requests.CancellationFees,
		OrdersTotal:        orders.OrdersTotal,
		DeliveredOrders:    orders.DeliveredOrders,
		GeneratedAt:        time.Now().UTC(),
	}, nil
}

// --- Mapper Functions ---

func toWalletTransactionDomain(data *model.WalletTransactionModel) *entity.WalletTransaction {
	txn := &entity.WalletTransaction{
		ID:               data.ID,
		TechnicianID:     data.TechnicianID,
		Type:             entity.WalletTransactionType(data.Type),
		Amount:           data.Amount,
		BalanceAfter:     data.BalanceAfter,
		Status:           entity.WalletTransactionStatus(data.Status),
		ServiceRequestID: data.ServiceRequestID,
		CreatedAt:        data.CreatedAt,
	}
	if data.Reference != nil {
		txn.Reference = *data.Reference
	}

	return txn
}

func fromWalletTransactionDomain(data *entity.WalletTransaction) *model.WalletTransactionModel {
	txnM := &model.WalletTransactionModel{
		ID:               data.ID,
		TechnicianID:     data.TechnicianID,
		Type:             string(data.Type),
		Amount:           data.Amount,
		BalanceAfter:     data.BalanceAfter,
		Status:           string(data.Status),
		ServiceRequestID: data.ServiceRequestID,
	}
	if data.Reference != "" {
		reference := data.Reference
		txnM.Reference = &reference
	}

	return txnM
}
