package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"servihub/internal/cache"
	deliverycontext "servihub/internal/delivery/context"
	"servihub/internal/domain/entity"
	domainerrors "servihub/internal/domain/errors"
	"servihub/internal/domain/repository"
	"servihub/internal/errors"
	"servihub/internal/usecase"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	cancelFreeAction   = "Cancel request"
	cancelFreeMessage  = "You can cancel this request at no cost."
	cancelPaidAction   = "Cancel and pay %s"
	cancelPaidMessage  = "The technician has already arrived. Cancelling now costs %s."
	cancelReasonMaxLen = 500
)

type serviceRequestService struct {
	txManager      repository.TransactionManager
	requestRepo    repository.ServiceRequestRepository
	technicianRepo repository.TechnicianRepository
	categoryRepo   repository.CategoryRepository
	specialtyRepo  repository.SpecialtyRepository
	settingsRepo   repository.SettingsRepository
	notifier       *changeNotifier
	cache          *cache.Store
	retrier        walletRetrier
	defaults       *entity.PlatformSettings
	now            clock
	logger         *slog.Logger
}

// ServiceRequestServiceParams holds dependencies for ServiceRequestService, injected by Fx.
type ServiceRequestServiceParams struct {
	fx.In
	CommonParams

	TxManager      repository.TransactionManager
	RequestRepo    repository.ServiceRequestRepository
	TechnicianRepo repository.TechnicianRepository
	CategoryRepo   repository.CategoryRepository
	SpecialtyRepo  repository.SpecialtyRepository
	SettingsRepo   repository.SettingsRepository
}

// NewServiceRequestService creates a new service request service instance
func NewServiceRequestService(params ServiceRequestServiceParams) usecase.ServiceRequestUsecase {
	return &serviceRequestService{
		txManager:      params.TxManager,
		requestRepo:    params.RequestRepo,
		technicianRepo: params.TechnicianRepo,
		categoryRepo:   params.CategoryRepo,
		specialtyRepo:  params.SpecialtyRepo,
		settingsRepo:   params.SettingsRepo,
		notifier:       newChangeNotifier(params.CommonParams),
		cache:          params.Cache,
		retrier:        newWalletRetrier(params.Config, params.Logger),
		defaults:       defaultSettings(params.Config),
		logger:         params.Logger,
	}
}

func (srv *serviceRequestService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *serviceRequestService) Create(ctx context.Context, actor usecase.Actor, input *usecase.CreateServiceRequestInput) (*entity.ServiceRequest, error) {
	if err := requireRole(actor, entity.RoleClient); err != nil {
		return nil, err
	}

	address := strings.TrimSpace(input.Address)
	if address == "" {
		return nil, validationError("address is required")
	}
	if input.EstimatedPrice < 0 {
		return nil, validationError("estimated_price cannot be negative")
	}
	if (input.Latitude == nil) != (input.Longitude == nil) {
		return nil, validationError("latitude and longitude must be sent together")
	}

	category, err := srv.categoryRepo.FindByID(ctx, input.CategoryID)
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return nil, domainerrors.ErrCategoryNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find category")
	}
	if !category.Active {
		return nil, domainerrors.ErrCategoryInactive
	}

	now := srv.now.now()
	request := &entity.ServiceRequest{
		ID:             uuid.New(),
		ClientID:       actor.ID,
		CategoryID:     category.ID,
		Status:         entity.ServiceRequestPending,
		Description:    strings.TrimSpace(input.Description),
		Address:        address,
		Latitude:       input.Latitude,
		Longitude:      input.Longitude,
		EstimatedPrice: input.EstimatedPrice,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := srv.requestRepo.Create(ctx, request); err != nil {
		return nil, errors.Wrap(err, "failed to create service request")
	}

	srv.published(ctx, cache.MutationServiceRequestCreate, entity.ChangeInsert, request)

	return request, nil
}

func (srv *serviceRequestService) List(ctx context.Context, actor usecase.Actor, status *entity.ServiceRequestStatus) ([]*entity.ServiceRequest, error) {
	if err := requireRole(actor, entity.RoleClient, entity.RoleTechnician, entity.RoleAdmin); err != nil {
		return nil, err
	}

	filter := repository.ServiceRequestFilter{Status: status}
	switch actor.Role {
	case entity.RoleClient:
		filter.ClientID = uuidPtr(actor.ID)
	case entity.RoleTechnician:
		filter.TechnicianID = uuidPtr(actor.ID)
	}

	statusScope := ""
	if status != nil {
		if !status.IsValid() {
			return nil, validationError("unknown status")
		}
		statusScope = string(*status)
	}
	key := cache.Scoped(cache.ServiceRequests, actor.Role.String(), actor.ID.String(), statusScope)

	return cache.Fetch(ctx, srv.cache, key, func(ctx context.Context) ([]*entity.ServiceRequest, error) {
		return srv.requestRepo.List(ctx, filter)
	})
}

func (srv *serviceRequestService) ListAvailable(ctx context.Context, actor usecase.Actor) ([]*entity.ServiceRequest, error) {
	if err := requireRole(actor, entity.RoleTechnician); err != nil {
		return nil, err
	}

	key := cache.ForProfile(cache.ServiceRequests, "available", actor.ID)

	return cache.Fetch(ctx, srv.cache, key, func(ctx context.Context) ([]*entity.ServiceRequest, error) {
		specialties, err := srv.specialtyRepo.ListByTechnician(ctx, actor.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list specialties")
		}
		if len(specialties) == 0 {
			return []*entity.ServiceRequest{}, nil
		}

		categoryIDs := make([]uuid.UUID, 0, len(specialties))
		for _, s := range specialties {
			categoryIDs = append(categoryIDs, s.CategoryID)
		}

		pending := entity.ServiceRequestPending

		return srv.requestRepo.List(ctx, repository.ServiceRequestFilter{
			Status:      &pending,
			CategoryIDs: categoryIDs,
			Unassigned:  true,
		})
	})
}

func (srv *serviceRequestService) Get(ctx context.Context, actor usecase.Actor, id uuid.UUID) (*entity.ServiceRequest, error) {
	request, err := srv.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := canViewRequest(actor, request); err != nil {
		return nil, err
	}

	return request, nil
}

// Accept assigns a pending request to the technician. The update is conditional on the
// request still being pending, so only one of two racing technicians wins.
func (srv *serviceRequestService) Accept(ctx context.Context, actor usecase.Actor, id uuid.UUID) (*entity.ServiceRequest, error) {
	if err := requireRole(actor, entity.RoleTechnician); err != nil {
		return nil, err
	}

	technician, err := srv.technicianRepo.FindByID(ctx, actor.ID)
	if errors.Is(err, repository.ErrTechnicianNotFound) {
		return nil, domainerrors.ErrTechnicianNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find technician")
	}
	if !technician.Active {
		return nil, domainerrors.ErrTechnicianInactive
	}

	settings, err := loadSettings(ctx, srv.settingsRepo, srv.defaults)
	if err != nil {
		return nil, err
	}
	if technician.Balance < settings.MinTechnicianBalance {
		return nil, domainerrors.ErrInsufficientBalance.WithDetails(
			fmt.Sprintf("minimum balance is %s %s", humanize.Comma(settings.MinTechnicianBalance), settings.Currency),
		)
	}

	request, err := srv.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if request.Status != entity.ServiceRequestPending {
		if request.Status == entity.ServiceRequestCancelled {
			return nil, domainerrors.ErrInvalidStatusTransition
		}

		return nil, domainerrors.ErrRequestAlreadyTaken
	}

	now := srv.now.now()
	request.Status = entity.ServiceRequestAccepted
	request.TechnicianID = uuidPtr(actor.ID)
	request.AcceptedAt = timePtr(now)
	request.UpdatedAt = now

	if err := srv.requestRepo.UpdateIfStatus(ctx, request, entity.ServiceRequestPending); err != nil {
		if errors.Is(err, repository.ErrServiceRequestStatusChanged) {
			return nil, domainerrors.ErrRequestAlreadyTaken
		}

		return nil, errors.Wrap(err, "failed to accept service request")
	}

	srv.published(ctx, cache.MutationServiceRequestAdvance, entity.ChangeUpdate, request)

	srv.log(ctx).Info("Service request accepted",
		slog.String("request_id", request.ID.String()),
		slog.String("technician_id", actor.ID.String()),
	)

	return request, nil
}

// MarkArrived records the technician's arrival, which makes client cancellations chargeable.
func (srv *serviceRequestService) MarkArrived(ctx context.Context, actor usecase.Actor, id uuid.UUID) (*entity.ServiceRequest, error) {
	request, err := srv.assigned(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if request.Status != entity.ServiceRequestAccepted {
		return nil, domainerrors.ErrInvalidStatusTransition
	}
	if request.TechnicianArrived() {
		return request, nil
	}

	now := srv.now.now()
	request.TechnicianArrivedAt = timePtr(now)
	request.UpdatedAt = now

	return request, srv.advance(ctx, request, entity.ServiceRequestAccepted)
}

func (srv *serviceRequestService) Start(ctx context.Context, actor usecase.Actor, id uuid.UUID) (*entity.ServiceRequest, error) {
	request, err := srv.assigned(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if !request.CanAdvanceTo(entity.ServiceRequestInProgress) {
		return nil, domainerrors.ErrInvalidStatusTransition
	}
	if !request.TechnicianArrived() {
		return nil, domainerrors.ErrTechnicianNotArrived
	}

	now := srv.now.now()
	request.Status = entity.ServiceRequestInProgress
	request.StartedAt = timePtr(now)
	request.UpdatedAt = now

	return request, srv.advance(ctx, request, entity.ServiceRequestAccepted)
}

func (srv *serviceRequestService) advance(ctx context.Context, request *entity.ServiceRequest, expected entity.ServiceRequestStatus) error {
	if err := srv.requestRepo.UpdateIfStatus(ctx, request, expected); err != nil {
		if errors.Is(err, repository.ErrServiceRequestStatusChanged) {
			return domainerrors.ErrInvalidStatusTransition
		}

		return errors.Wrap(err, "failed to update service request")
	}

	srv.notifier.committed(ctx, cache.MutationServiceRequestAdvance,
		srv.notifier.rowUpdate(ctx, entity.TableServiceRequests, request.ID, request, map[string]any{
			"status": expected,
		}),
	)

	return nil
}

// Complete closes the request and deducts the platform commission from the technician wallet
// in the same transaction.
func (srv *serviceRequestService) Complete(ctx context.Context, actor usecase.Actor, id uuid.UUID, finalPrice int64) (*entity.ServiceRequest, error) {
	if finalPrice < 0 {
		return nil, validationError("final_price cannot be negative")
	}

	request, err := srv.assigned(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if !request.CanAdvanceTo(entity.ServiceRequestCompleted) {
		return nil, domainerrors.ErrInvalidStatusTransition
	}

	settings, err := loadSettings(ctx, srv.settingsRepo, srv.defaults)
	if err != nil {
		return nil, err
	}

	now := srv.now.now()
	commission := settings.Commission(finalPrice)
	request.Status = entity.ServiceRequestCompleted
	request.FinalPrice = &finalPrice
	request.CommissionAmount = commission
	request.CompletedAt = timePtr(now)
	request.UpdatedAt = now

	var wallet *walletResult
	err = srv.retrier.run(ctx, *request.TechnicianID, func() error {
		return srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
			if err := repos.ServiceRequestRepo().UpdateIfStatus(ctx, request, entity.ServiceRequestInProgress); err != nil {
				return err
			}
			if commission == 0 {
				return nil
			}

			var err error
			wallet, err = applyWalletEntry(ctx, repos, walletEntry{
				TechnicianID:     *request.TechnicianID,
				Type:             entity.WalletCommissionDeduction,
				Amount:           -commission,
				ServiceRequestID: uuidPtr(request.ID),
			}, srv.now)

			return err
		})
	})
	if errors.Is(err, repository.ErrServiceRequestStatusChanged) {
		return nil, domainerrors.ErrInvalidStatusTransition
	}
	if err != nil {
		if _, ok := errors.AsType[domainerrors.AppError](err); ok {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to complete service request")
	}

	changes := []*entity.RowChange{
		srv.notifier.rowChange(ctx, entity.TableServiceRequests, entity.ChangeUpdate, request.ID, request),
	}
	if wallet != nil {
		changes = append(changes,
			srv.notifier.rowChange(ctx, entity.TableTechnicians, entity.ChangeUpdate, wallet.Technician.ProfileID, wallet.Technician),
			srv.notifier.rowChange(ctx, entity.TableWalletTransactions, entity.ChangeInsert, wallet.Transaction.ID, wallet.Transaction),
		)
	}
	srv.notifier.committed(ctx, cache.MutationServiceRequestComplete, changes...)

	srv.log(ctx).Info("Service request completed",
		slog.String("request_id", request.ID.String()),
		slog.Int64("final_price", finalPrice),
		slog.Int64("commission", commission),
	)

	return request, nil
}

// CancellationQuote computes the fee the actor would pay to cancel now, together with the
// labels the client shows. The server clock is authoritative.
func (srv *serviceRequestService) CancellationQuote(ctx context.Context, actor usecase.Actor, id uuid.UUID) (*entity.CancellationQuote, error) {
	request, err := srv.cancellable(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	settings, err := loadSettings(ctx, srv.settingsRepo, srv.defaults)
	if err != nil {
		return nil, err
	}

	return quoteCancellation(request, actor.Role, settings, srv.now.now()), nil
}

func (srv *serviceRequestService) Cancel(ctx context.Context, actor usecase.Actor, id uuid.UUID, reason string) (*entity.ServiceRequest, error) {
	reason = strings.TrimSpace(reason)
	if len(reason) > cancelReasonMaxLen {
		return nil, validationError(fmt.Sprintf("reason must be at most %d characters", cancelReasonMaxLen))
	}

	request, err := srv.cancellable(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	settings, err := loadSettings(ctx, srv.settingsRepo, srv.defaults)
	if err != nil {
		return nil, err
	}

	now := srv.now.now()
	quote := quoteCancellation(request, actor.Role, settings, now)
	expected := request.Status

	request.Status = entity.ServiceRequestCancelled
	request.CancellationReason = reason
	request.CancelledBy = uuidPtr(actor.ID)
	request.CancelledByRole = actor.Role
	request.CancellationFee = quote.Fee
	request.CancelledAt = timePtr(now)
	request.UpdatedAt = now

	if err := srv.requestRepo.UpdateIfStatus(ctx, request, expected); err != nil {
		if errors.Is(err, repository.ErrServiceRequestStatusChanged) {
			return nil, domainerrors.ErrInvalidStatusTransition
		}

		return nil, errors.Wrap(err, "failed to cancel service request")
	}

	srv.published(ctx, cache.MutationServiceRequestCancel, entity.ChangeUpdate, request)

	srv.log(ctx).Info("Service request cancelled",
		slog.String("request_id", request.ID.String()),
		slog.String("role", actor.Role.String()),
		slog.Int64("fee", quote.Fee),
	)

	return request, nil
}

// cancellable loads a request the actor may cancel in its current status.
func (srv *serviceRequestService) cancellable(ctx context.Context, actor usecase.Actor, id uuid.UUID) (*entity.ServiceRequest, error) {
	if err := requireRole(actor, entity.RoleClient, entity.RoleTechnician, entity.RoleAdmin); err != nil {
		return nil, err
	}

	request, err := srv.find(ctx, id)
	if err != nil {
		return nil, err
	}

	switch actor.Role {
	case entity.RoleClient:
		if request.ClientID != actor.ID {
			return nil, domainerrors.ErrForbidden
		}
	case entity.RoleTechnician:
		if !request.IsAssignedTo(actor.ID) {
			return nil, domainerrors.ErrForbidden
		}
	}

	if !request.CanBeCancelledBy(actor.Role) {
		return nil, domainerrors.ErrInvalidStatusTransition
	}

	return request, nil
}

// quoteCancellation charges the fee only when a client cancels after the technician arrived.
func quoteCancellation(request *entity.ServiceRequest, role entity.Role, settings *entity.PlatformSettings, now time.Time) *entity.CancellationQuote {
	quote := &entity.CancellationQuote{
		Currency:          settings.Currency,
		Message:           cancelFreeMessage,
		ActionLabel:       cancelFreeAction,
		TechnicianArrived: request.TechnicianArrived(),
		ServerTime:        now,
	}

	if role != entity.RoleClient || !request.TechnicianArrived() || settings.CancellationFee <= 0 {
		return quote
	}

	amount := formatMoney(settings.CancellationFee, settings.Currency)
	quote.Fee = settings.CancellationFee
	quote.Message = fmt.Sprintf(cancelPaidMessage, amount)
	quote.ActionLabel = fmt.Sprintf(cancelPaidAction, amount)

	return quote
}

// formatMoney renders whole currency units with thousands separators, e.g. "2,000 AOA".
func formatMoney(amount int64, currency string) string {
	return humanize.Comma(amount) + " " + currency
}

func (srv *serviceRequestService) assigned(ctx context.Context, actor usecase.Actor, id uuid.UUID) (*entity.ServiceRequest, error) {
	if err := requireRole(actor, entity.RoleTechnician); err != nil {
		return nil, err
	}

	request, err := srv.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !request.IsAssignedTo(actor.ID) {
		return nil, domainerrors.ErrForbidden
	}

	return request, nil
}

func (srv *serviceRequestService) find(ctx context.Context, id uuid.UUID) (*entity.ServiceRequest, error) {
	request, err := srv.requestRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrServiceRequestNotFound) {
		return nil, domainerrors.ErrServiceRequestNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find service request")
	}

	return request, nil
}

func (srv *serviceRequestService) published(ctx context.Context, mutation cache.Mutation, changeType entity.ChangeType, request *entity.ServiceRequest) {
	srv.notifier.committed(ctx, mutation,
		srv.notifier.rowChange(ctx, entity.TableServiceRequests, changeType, request.ID, request),
	)
}

// canViewRequest allows the participants and admins, and technicians browsing pending requests.
func canViewRequest(actor usecase.Actor, request *entity.ServiceRequest) error {
	if actor.ID == uuid.Nil {
		return domainerrors.ErrUnauthorized
	}

	switch actor.Role {
	case entity.RoleAdmin:
		return nil
	case entity.RoleClient:
		if request.ClientID == actor.ID {
			return nil
		}
	case entity.RoleTechnician:
		if request.IsAssignedTo(actor.ID) || (request.Status == entity.ServiceRequestPending && request.TechnicianID == nil) {
			return nil
		}
	}

	return domainerrors.ErrForbidden
}
