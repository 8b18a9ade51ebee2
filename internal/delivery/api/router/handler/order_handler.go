package handler

import (
	"servihub/internal/delivery/api/response"
	"servihub/internal/domain/entity"
	"servihub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
}

// OrderHandler serves product orders.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{orderUC: params.OrderUC}
}

// OrderItemRequest is one line of an order.
type OrderItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`
}

// CreateOrderRequest is the body a client sends to place an order.
type CreateOrderRequest struct {
	VendorID        string             `json:"vendor_id" validate:"required,uuid"`
	DeliveryAddress string             `json:"delivery_address" validate:"required,max=300"`
	Items           []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// UpdateOrderStatusRequest moves an order forward.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed ready"`
}

// Create places an order.
func (h *OrderHandler) Create(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateOrderRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	items := make([]usecase.OrderItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = usecase.OrderItemInput{
			ProductID: uuid.MustParse(item.ProductID),
			Quantity:  item.Quantity,
		}
	}

	order, err := h.orderUC.Create(c.Request().Context(), a, &usecase.CreateOrderInput{
		VendorID:        uuid.MustParse(req.VendorID),
		DeliveryAddress: req.DeliveryAddress,
		Items:           items,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, order)
}

// List returns the orders visible to the caller.
func (h *OrderHandler) List(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var status *entity.OrderStatus
	if raw := c.QueryParam("status"); raw != "" {
		s := entity.OrderStatus(raw)
		status = &s
	}

	orders, err := h.orderUC.List(c.Request().Context(), a, status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, orders)
}

// Get returns one order.
func (h *OrderHandler) Get(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.Get(c.Request().Context(), a, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, order)
}

// UpdateStatus lets the vendor confirm an order or mark it ready.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateOrderStatusRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.UpdateStatus(c.Request().Context(), a, id, entity.OrderStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, order)
}

// Cancel cancels an order and returns its stock.
func (h *OrderHandler) Cancel(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.Cancel(c.Request().Context(), a, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, order)
}
