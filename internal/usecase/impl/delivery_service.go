package impl

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"math"
	"math/big"

	"servihub/internal/cache"
	deliverycontext "servihub/internal/delivery/context"
	"servihub/internal/domain/entity"
	domainerrors "servihub/internal/domain/errors"
	"servihub/internal/domain/repository"
	"servihub/internal/domain/service"
	"servihub/internal/errors"
	"servihub/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"go.uber.org/fx"
)

const pickupCodeSpace = 1_000_000

type deliveryService struct {
	txManager    repository.TransactionManager
	deliveryRepo repository.DeliveryRepository
	orderRepo    repository.OrderRepository
	qrService    service.QRCodeService
	notifier     *changeNotifier
	cache        *cache.Store
	now          clock
	logger       *slog.Logger
}

// DeliveryServiceParams holds dependencies for DeliveryService, injected by Fx.
type DeliveryServiceParams struct {
	fx.In
	CommonParams

	TxManager    repository.TransactionManager
	DeliveryRepo repository.DeliveryRepository
	OrderRepo    repository.OrderRepository
	QRService    service.QRCodeService
}

// NewDeliveryService creates a new delivery service instance
func NewDeliveryService(params DeliveryServiceParams) usecase.DeliveryUsecase {
	return &deliveryService{
		txManager:    params.TxManager,
		deliveryRepo: params.DeliveryRepo,
		orderRepo:    params.OrderRepo,
		qrService:    params.QRService,
		notifier:     newChangeNotifier(params.CommonParams),
		cache:        params.Cache,
		logger:       params.Logger,
	}
}

func (srv *deliveryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateForOrder opens a delivery for a ready order of the vendor.
func (srv *deliveryService) CreateForOrder(ctx context.Context, actor usecase.Actor, input *usecase.CreateDeliveryInput) (*entity.Delivery, error) {
	if err := requireRole(actor, entity.RoleVendor); err != nil {
		return nil, err
	}
	if err := validateCoordinates(input.Pickup); err != nil {
		return nil, err
	}
	if err := validateCoordinates(input.Dropoff); err != nil {
		return nil, err
	}

	order, err := srv.orderRepo.FindByID(ctx, input.OrderID)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, domainerrors.ErrOrderNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order")
	}
	if order.VendorID != actor.ID {
		return nil, domainerrors.ErrForbidden
	}
	if order.Status != entity.OrderReady {
		return nil, domainerrors.ErrOrderNotReady
	}

	code, err := newPickupCode()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate pickup code")
	}

	now := srv.now.now()
	delivery := &entity.Delivery{
		ID:         uuid.New(),
		OrderID:    order.ID,
		VendorID:   order.VendorID,
		Status:     entity.DeliveryPending,
		Pickup:     input.Pickup,
		Dropoff:    input.Dropoff,
		DistanceKm: distanceKm(input.Pickup, input.Dropoff),
		PickupCode: code,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := srv.deliveryRepo.Create(ctx, delivery); err != nil {
		if errors.Is(err, repository.ErrDuplicateDelivery) {
			return nil, domainerrors.ErrDeliveryExists
		}

		return nil, errors.Wrap(err, "failed to create delivery")
	}

	srv.published(ctx, cache.MutationDeliveryCreate, entity.ChangeInsert, delivery)

	return delivery, nil
}

func (srv *deliveryService) List(ctx context.Context, actor usecase.Actor, status *entity.DeliveryStatus) ([]*entity.Delivery, error) {
	if err := requireRole(actor, entity.RoleVendor, entity.RoleDelivery, entity.RoleAdmin); err != nil {
		return nil, err
	}

	filter := repository.DeliveryFilter{Status: status}
	switch actor.Role {
	case entity.RoleVendor:
		filter.VendorID = uuidPtr(actor.ID)
	case entity.RoleDelivery:
		filter.DeliveryPersonID = uuidPtr(actor.ID)
	}

	statusScope := ""
	if status != nil {
		statusScope = string(*status)
	}
	key := cache.Scoped(cache.Deliveries, actor.Role.String(), actor.ID.String(), statusScope)

	return cache.Fetch(ctx, srv.cache, key, func(ctx context.Context) ([]*entity.Delivery, error) {
		return srv.deliveryRepo.List(ctx, filter)
	})
}

func (srv *deliveryService) ListAvailable(ctx context.Context, actor usecase.Actor) ([]*entity.Delivery, error) {
	if err := requireRole(actor, entity.RoleDelivery); err != nil {
		return nil, err
	}

	pending := entity.DeliveryPending

	return cache.Fetch(ctx, srv.cache, cache.Scoped(cache.Deliveries, "available"), func(ctx context.Context) ([]*entity.Delivery, error) {
		return srv.deliveryRepo.List(ctx, repository.DeliveryFilter{Status: &pending})
	})
}

func (srv *deliveryService) Get(ctx context.Context, actor usecase.Actor, id uuid.UUID) (*entity.Delivery, error) {
	delivery, err := srv.find(ctx, id)
	if err != nil {
		return nil, err
	}

	switch {
	case actor.ID == uuid.Nil:
		return nil, domainerrors.ErrUnauthorized
	case actor.Role == entity.RoleAdmin,
		actor.Role == entity.RoleVendor && delivery.VendorID == actor.ID,
		actor.Role == entity.RoleDelivery && (delivery.IsAssignedTo(actor.ID) || delivery.Status == entity.DeliveryPending):
		return delivery, nil
	default:
		return nil, domainerrors.ErrForbidden
	}
}

// Accept assigns a pending delivery; only one of two racing delivery people wins.
func (srv *deliveryService) Accept(ctx context.Context, actor usecase.Actor, id uuid.UUID) (*entity.Delivery, error) {
	if err := requireRole(actor, entity.RoleDelivery); err != nil {
		return nil, err
	}

	delivery, err := srv.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if delivery.Status != entity.DeliveryPending {
		return nil, domainerrors.ErrDeliveryAlreadyTaken
	}

	now := srv.now.now()
	delivery.Status = entity.DeliveryAccepted
	delivery.DeliveryPersonID = uuidPtr(actor.ID)
	delivery.AcceptedAt = timePtr(now)
	delivery.UpdatedAt = now

	if err := srv.deliveryRepo.UpdateIfStatus(ctx, delivery, entity.DeliveryPending); err != nil {
		if errors.Is(err, repository.ErrDeliveryStatusChanged) {
			return nil, domainerrors.ErrDeliveryAlreadyTaken
		}

		return nil, errors.Wrap(err, "failed to accept delivery")
	}

	srv.published(ctx, cache.MutationDeliveryAdvance, entity.ChangeUpdate, delivery)

	return delivery, nil
}

// PickupQR renders the pickup code as a PNG the vendor shows to the delivery person.
func (srv *deliveryService) PickupQR(ctx context.Context, actor usecase.Actor, id uuid.UUID) ([]byte, error) {
	if err := requireRole(actor, entity.RoleVendor); err != nil {
		return nil, err
	}

	delivery, err := srv.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if delivery.VendorID != actor.ID {
		return nil, domainerrors.ErrForbidden
	}

	png, err := srv.qrService.GeneratePickupQR(delivery.ID, delivery.PickupCode)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate pickup QR code")
	}

	return png, nil
}

func (srv *deliveryService) ConfirmPickup(ctx context.Context, actor usecase.Actor, id uuid.UUID, code string) (*entity.Delivery, error) {
	delivery, err := srv.assigned(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if !delivery.CanAdvanceTo(entity.DeliveryPickedUp) {
		return nil, domainerrors.ErrInvalidStatusTransition
	}
	if subtle.ConstantTimeCompare([]byte(code), []byte(delivery.PickupCode)) != 1 {
		return nil, domainerrors.ErrInvalidPickupCode
	}

	now := srv.now.now()
	delivery.Status = entity.DeliveryPickedUp
	delivery.PickedUpAt = timePtr(now)
	delivery.UpdatedAt = now

	return delivery, srv.advance(ctx, delivery, entity.DeliveryAccepted)
}

func (srv *deliveryService) StartTransit(ctx context.Context, actor usecase.Actor, id uuid.UUID) (*entity.Delivery, error) {
	delivery, err := srv.assigned(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if !delivery.CanAdvanceTo(entity.DeliveryInTransit) {
		return nil, domainerrors.ErrInvalidStatusTransition
	}

	now := srv.now.now()
	delivery.Status = entity.DeliveryInTransit
	delivery.InTransitAt = timePtr(now)
	delivery.UpdatedAt = now

	return delivery, srv.advance(ctx, delivery, entity.DeliveryPickedUp)
}

// Complete marks the delivery and its order delivered in one transaction.
func (srv *deliveryService) Complete(ctx context.Context, actor usecase.Actor, id uuid.UUID) (*entity.Delivery, error) {
	delivery, err := srv.assigned(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if !delivery.CanAdvanceTo(entity.DeliveryDelivered) {
		return nil, domainerrors.ErrInvalidStatusTransition
	}

	now := srv.now.now()
	delivery.Status = entity.DeliveryDelivered
	delivery.DeliveredAt = timePtr(now)
	delivery.UpdatedAt = now

	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := repos.DeliveryRepo().UpdateIfStatus(ctx, delivery, entity.DeliveryInTransit); err != nil {
			return err
		}

		return repos.OrderRepo().UpdateStatus(ctx, delivery.OrderID, entity.OrderReady, entity.OrderDelivered)
	})
	if errors.Is(err, repository.ErrDeliveryStatusChanged) || errors.Is(err, repository.ErrOrderStatusChanged) {
		return nil, domainerrors.ErrInvalidStatusTransition
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to complete delivery")
	}

	srv.notifier.committed(ctx, cache.MutationDeliveryComplete,
		srv.notifier.rowChange(ctx, entity.TableDeliveries, entity.ChangeUpdate, delivery.ID, delivery),
		srv.notifier.rowChange(ctx, entity.TableOrders, entity.ChangeUpdate, delivery.OrderID, map[string]any{
			"id":        delivery.OrderID,
			"vendor_id": delivery.VendorID,
			"status":    entity.OrderDelivered,
		}),
	)

	srv.log(ctx).Info("Delivery completed",
		slog.String("delivery_id", delivery.ID.String()),
		slog.String("order_id", delivery.OrderID.String()),
	)

	return delivery, nil
}

// ReportPosition stores the courier position. A report carrying a geolocation error is
// answered with its fixed message and never touches the stored coordinates.
func (srv *deliveryService) ReportPosition(ctx context.Context, actor usecase.Actor, id uuid.UUID, report entity.PositionReport) (*entity.PositionResult, error) {
	delivery, err := srv.assigned(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	switch delivery.Status {
	case entity.DeliveryAccepted, entity.DeliveryPickedUp, entity.DeliveryInTransit:
	default:
		return nil, domainerrors.ErrInvalidStatusTransition
	}

	if report.ErrorCode != nil && !report.ErrorCode.IsValid() {
		return nil, validationError("unknown geolocation error code")
	}
	if report.ErrorCode == nil && report.Coordinates != nil {
		if err := validateCoordinates(*report.Coordinates); err != nil {
			return nil, err
		}
	}

	result := entity.ResolvePosition(report)
	if !result.Updated {
		srv.log(ctx).Debug("Position report without coordinates",
			slog.String("delivery_id", delivery.ID.String()),
			slog.String("message", result.ErrorMessage),
		)

		return &result, nil
	}

	if err := srv.deliveryRepo.UpdatePosition(ctx, delivery.ID, *result.Coordinates); err != nil {
		return nil, errors.Wrap(err, "failed to update delivery position")
	}

	now := srv.now.now()
	delivery.Current = result.Coordinates
	delivery.PositionUpdated = timePtr(now)
	delivery.UpdatedAt = now

	srv.notifier.committed(ctx, cache.MutationDeliveryPosition,
		srv.notifier.rowUpdate(ctx, entity.TableDeliveries, delivery.ID, delivery, map[string]any{
			"status": delivery.Status,
		}),
	)

	return &result, nil
}

func (srv *deliveryService) advance(ctx context.Context, delivery *entity.Delivery, expected entity.DeliveryStatus) error {
	if err := srv.deliveryRepo.UpdateIfStatus(ctx, delivery, expected); err != nil {
		if errors.Is(err, repository.ErrDeliveryStatusChanged) {
			return domainerrors.ErrInvalidStatusTransition
		}

		return errors.Wrap(err, "failed to update delivery")
	}

	srv.published(ctx, cache.MutationDeliveryAdvance, entity.ChangeUpdate, delivery)

	return nil
}

func (srv *deliveryService) assigned(ctx context.Context, actor usecase.Actor, id uuid.UUID) (*entity.Delivery, error) {
	if err := requireRole(actor, entity.RoleDelivery); err != nil {
		return nil, err
	}

	delivery, err := srv.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !delivery.IsAssignedTo(actor.ID) {
		return nil, domainerrors.ErrForbidden
	}

	return delivery, nil
}

func (srv *deliveryService) find(ctx context.Context, id uuid.UUID) (*entity.Delivery, error) {
	delivery, err := srv.deliveryRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrDeliveryNotFound) {
		return nil, domainerrors.ErrDeliveryNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find delivery")
	}

	return delivery, nil
}

func (srv *deliveryService) published(ctx context.Context, mutation cache.Mutation, changeType entity.ChangeType, delivery *entity.Delivery) {
	srv.notifier.committed(ctx, mutation,
		srv.notifier.rowChange(ctx, entity.TableDeliveries, changeType, delivery.ID, delivery),
	)
}

// distanceKm is the great-circle distance between two points, rounded to metres.
func distanceKm(from, to entity.Coordinates) float64 {
	meters := geo.DistanceHaversine(
		orb.Point{from.Longitude, from.Latitude},
		orb.Point{to.Longitude, to.Latitude},
	)

	return math.Round(meters) / 1000
}

// newPickupCode returns a uniformly random 6-digit code.
func newPickupCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(pickupCodeSpace))
	if err != nil {
		return "", errors.WithStack(err)
	}

	return fmt.Sprintf("%06d", n.Int64()), nil
}

func validateCoordinates(c entity.Coordinates) error {
	if c.Latitude < -90 || c.Latitude > 90 || c.Longitude < -180 || c.Longitude > 180 {
		return validationError("coordinates out of range")
	}

	return nil
}
