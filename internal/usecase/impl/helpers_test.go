package impl

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"sync"

	"servihub/config"
	"servihub/internal/cache"
	"servihub/internal/domain/entity"
	"servihub/internal/domain/repository"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Platform: &config.PlatformConfig{
			CancellationFee:    2000,
			CommissionRate:     0.10,
			DisputeWindowHours: 48,
			Currency:           "AOA",
		},
		Wallet: &config.WalletConfig{MaxConflictRetries: 3},
	}
}

func newTestCommon(cfg *config.Config) (CommonParams, *recordingPublisher) {
	publisher := &recordingPublisher{}

	return CommonParams{
		Publisher: publisher,
		Cache:     cache.NewStore(cache.DefaultGraph(), 0, newDiscardLogger()),
		Config:    cfg,
		Logger:    newDiscardLogger(),
	}, publisher
}

// recordingPublisher keeps every published change.
type recordingPublisher struct {
	mu      sync.Mutex
	changes []*entity.RowChange
	err     error
}

func (p *recordingPublisher) Publish(_ context.Context, change *entity.RowChange) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.changes = append(p.changes, change)

	return p.err
}

func (p *recordingPublisher) Close() error {
	return nil
}

func (p *recordingPublisher) tables() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	tables := make([]string, 0, len(p.changes))
	for _, change := range p.changes {
		tables = append(tables, change.Table)
	}

	return tables
}

// memorySettings returns ErrSettingsNotFound until something is saved.
type memorySettings struct {
	settings *entity.PlatformSettings
}

func (s *memorySettings) Get(_ context.Context) (*entity.PlatformSettings, error) {
	if s.settings == nil {
		return nil, repository.ErrSettingsNotFound
	}
	copied := *s.settings

	return &copied, nil
}

func (s *memorySettings) Save(_ context.Context, settings *entity.PlatformSettings) error {
	copied := *settings
	s.settings = &copied

	return nil
}

// memoryStore is an in-memory ledger: technicians, wallet transactions and service requests.
// Writes made inside Execute are undone when the callback fails.
type memoryStore struct {
	mu           sync.Mutex
	technicians  map[uuid.UUID]entity.Technician
	transactions []entity.WalletTransaction
	requests     map[uuid.UUID]entity.ServiceRequest

	// ledgerErr makes CreateTransaction fail.
	ledgerErr error
	// forcedConflicts makes the next UpdateBalance calls fail with ErrVersionConflict.
	forcedConflicts int
	balanceUpdates  int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		technicians: make(map[uuid.UUID]entity.Technician),
		requests:    make(map[uuid.UUID]entity.ServiceRequest),
	}
}

func (s *memoryStore) addTechnician(balance int64) uuid.UUID {
	id := uuid.New()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.technicians[id] = entity.Technician{ProfileID: id, Active: true, Balance: balance}

	return id
}

func (s *memoryStore) technician(id uuid.UUID) entity.Technician {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.technicians[id]
}

func (s *memoryStore) ledger(technicianID uuid.UUID) []entity.WalletTransaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	var entries []entity.WalletTransaction
	for _, txn := range s.transactions {
		if txn.TechnicianID == technicianID {
			entries = append(entries, txn)
		}
	}

	return entries
}

func (s *memoryStore) Execute(_ context.Context, fn func(repos repository.RepositoryFactory) error) error {
	tx := &memoryTx{store: s}
	if err := fn(tx); err != nil {
		tx.rollback()

		return err
	}

	return nil
}

func (s *memoryStore) TechnicianRepo() repository.TechnicianRepository {
	return &memoryTechnicians{store: s}
}

func (s *memoryStore) WalletRepo() repository.WalletRepository {
	return &memoryWallet{store: s}
}

func (s *memoryStore) ServiceRequestRepo() repository.ServiceRequestRepository {
	return &memoryRequests{store: s}
}

// memoryTx collects undo steps for one Execute call.
type memoryTx struct {
	store *memoryStore
	undo  []func()
}

func (tx *memoryTx) record(step func()) {
	if tx != nil {
		tx.undo = append(tx.undo, step)
	}
}

func (tx *memoryTx) rollback() {
	tx.store.mu.Lock()
	defer tx.store.mu.Unlock()

	for i := len(tx.undo) - 1; i >= 0; i-- {
		tx.undo[i]()
	}
}

func (tx *memoryTx) TechnicianRepo() repository.TechnicianRepository {
	return &memoryTechnicians{store: tx.store, tx: tx}
}

func (tx *memoryTx) WalletRepo() repository.WalletRepository {
	return &memoryWallet{store: tx.store, tx: tx}
}

func (tx *memoryTx) ServiceRequestRepo() repository.ServiceRequestRepository {
	return &memoryRequests{store: tx.store, tx: tx}
}

func (tx *memoryTx) ProfileRepo() repository.ProfileRepository { return nil }
func (tx *memoryTx) CredentialRepo() repository.CredentialRepository { return nil }
func (tx *memoryTx) ProductRepo() repository.ProductRepository { return nil }
func (tx *memoryTx) OrderRepo() repository.OrderRepository { return nil }
func (tx *memoryTx) DeliveryRepo() repository.DeliveryRepository { return nil }
func (tx *memoryTx) SupportTicketRepo() repository.SupportTicketRepository { return nil }
func (tx *memoryTx) SettingsRepo() repository.SettingsRepository { return nil }

type memoryTechnicians struct {
	store *memoryStore
	tx    *memoryTx
}

func (r *memoryTechnicians) Create(_ context.Context, technician *entity.Technician) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.technicians[technician.ProfileID] = *technician

	return nil
}

func (r *memoryTechnicians) FindByID(_ context.Context, profileID uuid.UUID) (*entity.Technician, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	technician, ok := r.store.technicians[profileID]
	if !ok {
		return nil, repository.ErrTechnicianNotFound
	}

	return &technician, nil
}

func (r *memoryTechnicians) List(_ context.Context, filter repository.TechnicianFilter) ([]*entity.Technician, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var technicians []*entity.Technician
	for _, technician := range r.store.technicians {
		if filter.ActiveOnly && !technician.Active {
			continue
		}
		technicians = append(technicians, &technician)
	}

	return technicians, nil
}

func (r *memoryTechnicians) ListBelowBalance(_ context.Context, minBalance int64) ([]*entity.Technician, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var technicians []*entity.Technician
	for _, technician := range r.store.technicians {
		if technician.Balance < minBalance {
			technicians = append(technicians, &technician)
		}
	}

	return technicians, nil
}

func (r *memoryTechnicians) SetActive(_ context.Context, profileID uuid.UUID, active bool) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	technician, ok := r.store.technicians[profileID]
	if !ok {
		return repository.ErrTechnicianNotFound
	}
	technician.Active = active
	r.store.technicians[profileID] = technician

	return nil
}

func (r *memoryTechnicians) UpdateBalance(_ context.Context, profileID uuid.UUID, balance int64, expectedVersion int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.balanceUpdates++
	if r.store.forcedConflicts > 0 {
		r.store.forcedConflicts--

		return repository.ErrVersionConflict
	}

	previous, ok := r.store.technicians[profileID]
	if !ok || previous.Version != expectedVersion {
		return repository.ErrVersionConflict
	}

	updated := previous
	updated.Balance = balance
	updated.Version++
	r.store.technicians[profileID] = updated

	r.tx.record(func() {
		r.store.technicians[profileID] = previous
	})

	return nil
}

type memoryWallet struct {
	store *memoryStore
	tx    *memoryTx
}

func (r *memoryWallet) CreateTransaction(_ context.Context, txn *entity.WalletTransaction) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.ledgerErr != nil {
		return r.store.ledgerErr
	}
	if txn.Reference != "" {
		for _, existing := range r.store.transactions {
			if existing.Reference == txn.Reference {
				return repository.ErrDuplicateReference
			}
		}
	}

	r.store.transactions = append(r.store.transactions, *txn)
	id := txn.ID
	r.tx.record(func() {
		r.store.transactions = slices.DeleteFunc(r.store.transactions, func(t entity.WalletTransaction) bool {
			return t.ID == id
		})
	})

	return nil
}

func (r *memoryWallet) FindByReference(_ context.Context, reference string) (*entity.WalletTransaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, txn := range r.store.transactions {
		if txn.Reference == reference {
			return &txn, nil
		}
	}

	return nil, repository.ErrWalletTransactionNotFound
}

func (r *memoryWallet) ListByTechnician(_ context.Context, technicianID uuid.UUID, limit int) ([]*entity.WalletTransaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var entries []*entity.WalletTransaction
	for i := len(r.store.transactions) - 1; i >= 0; i-- {
		txn := r.store.transactions[i]
		if txn.TechnicianID != technicianID {
			continue
		}
		entries = append(entries, &txn)
		if limit > 0 && len(entries) == limit {
			break
		}
	}

	return entries, nil
}

type memoryRequests struct {
	store *memoryStore
	tx    *memoryTx
}

func (r *memoryRequests) Create(_ context.Context, request *entity.ServiceRequest) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.requests[request.ID] = *request

	return nil
}

func (r *memoryRequests) FindByID(_ context.Context, id uuid.UUID) (*entity.ServiceRequest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	request, ok := r.store.requests[id]
	if !ok {
		return nil, repository.ErrServiceRequestNotFound
	}

	return &request, nil
}

func (r *memoryRequests) List(_ context.Context, filter repository.ServiceRequestFilter) ([]*entity.ServiceRequest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var requests []*entity.ServiceRequest
	for _, request := range r.store.requests {
		if filter.ClientID != nil && request.ClientID != *filter.ClientID {
			continue
		}
		if filter.TechnicianID != nil && !request.IsAssignedTo(*filter.TechnicianID) {
			continue
		}
		if filter.Status != nil && request.Status != *filter.Status {
			continue
		}
		if filter.Unassigned && request.TechnicianID != nil {
			continue
		}
		if len(filter.CategoryIDs) > 0 && !slices.Contains(filter.CategoryIDs, request.CategoryID) {
			continue
		}
		requests = append(requests, &request)
	}

	return requests, nil
}

func (r *memoryRequests) UpdateIfStatus(_ context.Context, request *entity.ServiceRequest, expected entity.ServiceRequestStatus) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	previous, ok := r.store.requests[request.ID]
	if !ok || previous.Status != expected {
		return repository.ErrServiceRequestStatusChanged
	}

	r.store.requests[request.ID] = *request
	r.tx.record(func() {
		r.store.requests[request.ID] = previous
	})

	return nil
}
