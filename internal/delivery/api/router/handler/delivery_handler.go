package handler

import (
	"context"
	"net/http"
	"time"

	"servihub/internal/delivery/api/response"
	"servihub/internal/domain/entity"
	domainerrors "servihub/internal/domain/errors"
	"servihub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeliveryHandlerParams holds dependencies for DeliveryHandler, injected by Fx.
type DeliveryHandlerParams struct {
	fx.In

	DeliveryUC usecase.DeliveryUsecase
}

// DeliveryHandler serves deliveries and position reports.
type DeliveryHandler struct {
	deliveryUC usecase.DeliveryUsecase
}

// NewDeliveryHandler is the constructor for DeliveryHandler.
func NewDeliveryHandler(params DeliveryHandlerParams) *DeliveryHandler {
	return &DeliveryHandler{deliveryUC: params.DeliveryUC}
}

// CoordinatesRequest is a WGS84 point.
type CoordinatesRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

func (r *CoordinatesRequest) coordinates() entity.Coordinates {
	return entity.Coordinates{Latitude: *r.Latitude, Longitude: *r.Longitude}
}

// CreateDeliveryRequest is the route of a new delivery.
type CreateDeliveryRequest struct {
	OrderID string             `json:"order_id" validate:"required,uuid"`
	Pickup  CoordinatesRequest `json:"pickup" validate:"required"`
	Dropoff CoordinatesRequest `json:"dropoff" validate:"required"`
}

// ConfirmPickupRequest carries the code typed or scanned by the delivery person.
type ConfirmPickupRequest struct {
	Code string `json:"code" validate:"required,max=64"`
}

// PositionRequest is a device position report: coordinates or a geolocation error code.
type PositionRequest struct {
	Latitude   *float64   `json:"latitude" validate:"omitempty,latitude"`
	Longitude  *float64   `json:"longitude" validate:"omitempty,longitude"`
	ErrorCode  *int       `json:"error_code" validate:"omitempty,min=0,max=3"`
	ReportedAt *time.Time `json:"reported_at"`
}

// Create opens a delivery for a ready order.
func (h *DeliveryHandler) Create(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateDeliveryRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	created, err := h.deliveryUC.CreateForOrder(c.Request().Context(), a, &usecase.CreateDeliveryInput{
		OrderID: uuid.MustParse(req.OrderID),
		Pickup:  req.Pickup.coordinates(),
		Dropoff: req.Dropoff.coordinates(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, created)
}

// List returns the deliveries visible to the caller.
func (h *DeliveryHandler) List(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var status *entity.DeliveryStatus
	if raw := c.QueryParam("status"); raw != "" {
		s := entity.DeliveryStatus(raw)
		status = &s
	}

	deliveries, err := h.deliveryUC.List(c.Request().Context(), a, status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, deliveries)
}

// ListAvailable returns pending deliveries a delivery person may accept.
func (h *DeliveryHandler) ListAvailable(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	deliveries, err := h.deliveryUC.ListAvailable(c.Request().Context(), a)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, deliveries)
}

// Get returns one delivery.
func (h *DeliveryHandler) Get(c echo.Context) error {
	return h.move(c, h.deliveryUC.Get)
}

// Accept assigns the calling delivery person.
func (h *DeliveryHandler) Accept(c echo.Context) error {
	return h.move(c, h.deliveryUC.Accept)
}

// StartTransit marks the delivery on its way.
func (h *DeliveryHandler) StartTransit(c echo.Context) error {
	return h.move(c, h.deliveryUC.StartTransit)
}

// Complete marks the delivery and its order delivered.
func (h *DeliveryHandler) Complete(c echo.Context) error {
	return h.move(c, h.deliveryUC.Complete)
}

// ConfirmPickup checks the pickup code.
func (h *DeliveryHandler) ConfirmPickup(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ConfirmPickupRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	delivery, err := h.deliveryUC.ConfirmPickup(c.Request().Context(), a, id, req.Code)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, delivery)
}

// PickupQR renders the pickup code as a PNG.
func (h *DeliveryHandler) PickupQR(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.deliveryUC.PickupQR(c.Request().Context(), a, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

	return c.Blob(http.StatusOK, "image/png", png)
}

// ReportPosition applies a device position report.
func (h *DeliveryHandler) ReportPosition(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req PositionRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if req.ErrorCode == nil && (req.Latitude == nil || req.Longitude == nil) {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("coordinates or error_code is required"))
	}

	report := entity.PositionReport{ReportedAt: time.Now().UTC()}
	if req.ReportedAt != nil {
		report.ReportedAt = req.ReportedAt.UTC()
	}
	if req.ErrorCode != nil {
		code := entity.GeolocationErrorCode(*req.ErrorCode)
		report.ErrorCode = &code
	} else {
		report.Coordinates = &entity.Coordinates{Latitude: *req.Latitude, Longitude: *req.Longitude}
	}

	result, err := h.deliveryUC.ReportPosition(c.Request().Context(), a, id, report)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, result)
}

func (h *DeliveryHandler) move(c echo.Context, fn func(ctx context.Context, a usecase.Actor, id uuid.UUID) (*entity.Delivery, error)) error {
	a, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	delivery, err := fn(c.Request().Context(), a, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, delivery)
}
