package impl

import (
	"context"
	"log/slog"
	"strings"

	"servihub/internal/cache"
	deliverycontext "servihub/internal/delivery/context"
	"servihub/internal/domain/entity"
	domainerrors "servihub/internal/domain/errors"
	"servihub/internal/domain/repository"
	"servihub/internal/errors"
	"servihub/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	notifier  *changeNotifier
	cache     *cache.Store
	now       clock
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In
	CommonParams

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
}

// NewOrderService creates a new order service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		notifier:  newChangeNotifier(params.CommonParams),
		cache:     params.Cache,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create reserves stock and inserts the order in one transaction. Prices and the total
// are taken from the products, never from the client.
func (srv *orderService) Create(ctx context.Context, actor usecase.Actor, input *usecase.CreateOrderInput) (*entity.Order, error) {
	if err := requireRole(actor, entity.RoleClient); err != nil {
		return nil, err
	}

	quantities, err := mergeOrderItems(input)
	if err != nil {
		return nil, err
	}

	now := srv.now.now()
	order := &entity.Order{
		ID:              uuid.New(),
		ClientID:        actor.ID,
		VendorID:        input.VendorID,
		Status:          entity.OrderPending,
		DeliveryAddress: strings.TrimSpace(input.DeliveryAddress),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	var products []*entity.Product
	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		products = products[:0]
		order.Items = order.Items[:0]

		for _, item := range input.Items {
			quantity, pending := quantities[item.ProductID]
			if !pending {
				continue
			}
			delete(quantities, item.ProductID)

			product, err := reserveStock(ctx, repos.ProductRepo(), input.VendorID, item.ProductID, quantity)
			if err != nil {
				return err
			}
			products = append(products, product)

			order.Items = append(order.Items, &entity.OrderItem{
				ID:        uuid.New(),
				OrderID:   order.ID,
				ProductID: product.ID,
				Name:      product.Name,
				Quantity:  quantity,
				UnitPrice: product.Price,
			})
		}
		order.Total = order.ComputeTotal()

		return repos.OrderRepo().Create(ctx, order)
	})
	if err != nil {
		if _, ok := errors.AsType[domainerrors.AppError](err); ok {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to create order")
	}

	changes := []*entity.RowChange{
		srv.notifier.rowChange(ctx, entity.TableOrders, entity.ChangeInsert, order.ID, order),
	}
	for _, product := range products {
		changes = append(changes, srv.notifier.rowChange(ctx, entity.TableProducts, entity.ChangeUpdate, product.ID, product))
	}
	srv.notifier.committed(ctx, cache.MutationOrderCreate, changes...)

	srv.log(ctx).Info("Order created",
		slog.String("order_id", order.ID.String()),
		slog.Int("items", len(order.Items)),
		slog.Int64("total", order.Total),
	)

	return order, nil
}

// mergeOrderItems validates the items and sums quantities of repeated products.
func mergeOrderItems(input *usecase.CreateOrderInput) (map[uuid.UUID]int, error) {
	if input.VendorID == uuid.Nil {
		return nil, validationError("vendor_id is required")
	}
	if len(input.Items) == 0 {
		return nil, validationError("an order needs at least one item")
	}

	quantities := make(map[uuid.UUID]int, len(input.Items))
	for _, item := range input.Items {
		if item.ProductID == uuid.Nil {
			return nil, validationError("product_id is required")
		}
		if item.Quantity < 1 {
			return nil, validationError("quantity must be at least 1")
		}
		quantities[item.ProductID] += item.Quantity
	}

	return quantities, nil
}

func reserveStock(ctx context.Context, repo repository.ProductRepository, vendorID, productID uuid.UUID, quantity int) (*entity.Product, error) {
	product, err := repo.FindByID(ctx, productID)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}
	if !product.Active || product.VendorID != vendorID {
		return nil, domainerrors.ErrProductNotFound.WithDetails(product.ID.String())
	}
	if product.Stock < quantity {
		return nil, domainerrors.ErrInsufficientStock.WithDetails(product.Name)
	}

	if err := repo.AdjustStock(ctx, product.ID, -quantity); err != nil {
		if errors.Is(err, repository.ErrInsufficientStock) {
			return nil, domainerrors.ErrInsufficientStock.WithDetails(product.Name)
		}

		return nil, errors.Wrap(err, "failed to reserve stock")
	}
	product.Stock -= quantity

	return product, nil
}

func (srv *orderService) List(ctx context.Context, actor usecase.Actor, status *entity.OrderStatus) ([]*entity.Order, error) {
	if err := requireRole(actor, entity.RoleClient, entity.RoleVendor, entity.RoleAdmin); err != nil {
		return nil, err
	}

	filter := repository.OrderFilter{Status: status}
	switch actor.Role {
	case entity.RoleClient:
		filter.ClientID = uuidPtr(actor.ID)
	case entity.RoleVendor:
		filter.VendorID = uuidPtr(actor.ID)
	}

	statusScope := ""
	if status != nil {
		if !status.IsValid() {
			return nil, validationError("unknown status")
		}
		statusScope = string(*status)
	}
	key := cache.Scoped(cache.Orders, actor.Role.String(), actor.ID.String(), statusScope)

	return cache.Fetch(ctx, srv.cache, key, func(ctx context.Context) ([]*entity.Order, error) {
		return srv.orderRepo.List(ctx, filter)
	})
}

func (srv *orderService) Get(ctx context.Context, actor usecase.Actor, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := canViewOrder(actor, order); err != nil {
		return nil, err
	}

	return order, nil
}

// UpdateStatus moves an order forward on behalf of its vendor: pending→confirmed→ready.
func (srv *orderService) UpdateStatus(ctx context.Context, actor usecase.Actor, id uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	if err := requireRole(actor, entity.RoleVendor); err != nil {
		return nil, err
	}
	if !status.IsValid() {
		return nil, validationError("unknown status")
	}

	order, err := srv.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.VendorID != actor.ID {
		return nil, domainerrors.ErrForbidden
	}
	if !order.CanVendorAdvanceTo(status) {
		return nil, domainerrors.ErrInvalidStatusTransition
	}

	if err := srv.orderRepo.UpdateStatus(ctx, order.ID, order.Status, status); err != nil {
		if errors.Is(err, repository.ErrOrderStatusChanged) {
			return nil, domainerrors.ErrInvalidStatusTransition
		}

		return nil, errors.Wrap(err, "failed to update order status")
	}
	order.Status = status
	order.UpdatedAt = srv.now.now()

	srv.notifier.committed(ctx, cache.MutationOrderStatus,
		srv.notifier.rowChange(ctx, entity.TableOrders, entity.ChangeUpdate, order.ID, order),
	)

	return order, nil
}

// Cancel cancels a pending or confirmed order and puts its items back in stock.
func (srv *orderService) Cancel(ctx context.Context, actor usecase.Actor, id uuid.UUID) (*entity.Order, error) {
	if err := requireRole(actor, entity.RoleClient, entity.RoleVendor, entity.RoleAdmin); err != nil {
		return nil, err
	}

	order, err := srv.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if (actor.Role == entity.RoleClient && order.ClientID != actor.ID) ||
		(actor.Role == entity.RoleVendor && order.VendorID != actor.ID) {
		return nil, domainerrors.ErrForbidden
	}
	if !order.IsCancellable() {
		return nil, domainerrors.ErrInvalidStatusTransition
	}

	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := repos.OrderRepo().UpdateStatus(ctx, order.ID, order.Status, entity.OrderCancelled); err != nil {
			return err
		}
		for _, item := range order.Items {
			if err := repos.ProductRepo().AdjustStock(ctx, item.ProductID, item.Quantity); err != nil {
				if errors.Is(err, repository.ErrProductNotFound) {
					continue
				}

				return err
			}
		}

		return nil
	})
	if errors.Is(err, repository.ErrOrderStatusChanged) {
		return nil, domainerrors.ErrInvalidStatusTransition
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to cancel order")
	}

	order.Status = entity.OrderCancelled
	order.UpdatedAt = srv.now.now()

	srv.notifier.committed(ctx, cache.MutationOrderCancel,
		srv.notifier.rowChange(ctx, entity.TableOrders, entity.ChangeUpdate, order.ID, order),
	)

	srv.log(ctx).Info("Order cancelled",
		slog.String("order_id", order.ID.String()),
		slog.String("role", actor.Role.String()),
	)

	return order, nil
}

func (srv *orderService) find(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, domainerrors.ErrOrderNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

func canViewOrder(actor usecase.Actor, order *entity.Order) error {
	if actor.ID == uuid.Nil {
		return domainerrors.ErrUnauthorized
	}

	switch {
	case actor.Role == entity.RoleAdmin,
		actor.Role == entity.RoleClient && order.ClientID == actor.ID,
		actor.Role == entity.RoleVendor && order.VendorID == actor.ID:
		return nil
	default:
		return domainerrors.ErrForbidden
	}
}
