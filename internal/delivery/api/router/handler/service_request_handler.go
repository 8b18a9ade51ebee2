package handler

import (
	"context"

	"servihub/internal/delivery/api/response"
	"servihub/internal/domain/entity"
	"servihub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ServiceRequestHandlerParams holds dependencies for ServiceRequestHandler, injected by Fx.
type ServiceRequestHandlerParams struct {
	fx.In

	RequestUC usecase.ServiceRequestUsecase
}

// ServiceRequestHandler drives service requests over HTTP.
type ServiceRequestHandler struct {
	requestUC usecase.ServiceRequestUsecase
}

// NewServiceRequestHandler is the constructor for ServiceRequestHandler.
func NewServiceRequestHandler(params ServiceRequestHandlerParams) *ServiceRequestHandler {
	return &ServiceRequestHandler{requestUC: params.RequestUC}
}

// CreateServiceRequestRequest is the body a client sends for a new job.
type CreateServiceRequestRequest struct {
	CategoryID     string   `json:"category_id" validate:"required,uuid"`
	Description    string   `json:"description" validate:"max=2000"`
	Address        string   `json:"address" validate:"required,max=300"`
	Latitude       *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude      *float64 `json:"longitude" validate:"omitempty,longitude"`
	EstimatedPrice int64    `json:"estimated_price" validate:"gte=0"`
}

// CompleteServiceRequestRequest carries the final price.
type CompleteServiceRequestRequest struct {
	FinalPrice *int64 `json:"final_price" validate:"required,gte=0"`
}

// CancelServiceRequestRequest carries the optional cancellation reason.
type CancelServiceRequestRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

// transition is a usecase call acting on one request.
type transition func(ctx context.Context, a usecase.Actor, id uuid.UUID) (*entity.ServiceRequest, error)

// Create opens a new request.
func (h *ServiceRequestHandler) Create(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateServiceRequestRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	created, err := h.requestUC.Create(c.Request().Context(), a, &usecase.CreateServiceRequestInput{
		CategoryID:     uuid.MustParse(req.CategoryID),
		Description:    req.Description,
		Address:        req.Address,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		EstimatedPrice: req.EstimatedPrice,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, created)
}

// List returns the requests visible to the caller.
func (h *ServiceRequestHandler) List(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var status *entity.ServiceRequestStatus
	if raw := c.QueryParam("status"); raw != "" {
		s := entity.ServiceRequestStatus(raw)
		status = &s
	}

	requests, err := h.requestUC.List(c.Request().Context(), a, status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, requests)
}

// ListAvailable returns the pending requests a technician may accept.
func (h *ServiceRequestHandler) ListAvailable(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	requests, err := h.requestUC.ListAvailable(c.Request().Context(), a)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, requests)
}

// Get returns one request.
func (h *ServiceRequestHandler) Get(c echo.Context) error {
	return h.move(c, h.requestUC.Get)
}

// Accept assigns the calling technician.
func (h *ServiceRequestHandler) Accept(c echo.Context) error {
	return h.move(c, h.requestUC.Accept)
}

// MarkArrived records the technician's arrival.
func (h *ServiceRequestHandler) MarkArrived(c echo.Context) error {
	return h.move(c, h.requestUC.MarkArrived)
}

// Start moves the request to in progress.
func (h *ServiceRequestHandler) Start(c echo.Context) error {
	return h.move(c, h.requestUC.Start)
}

// Complete closes the request with its final price.
func (h *ServiceRequestHandler) Complete(c echo.Context) error {
	var req CompleteServiceRequestRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return h.move(c, func(ctx context.Context, a usecase.Actor, id uuid.UUID) (*entity.ServiceRequest, error) {
		return h.requestUC.Complete(ctx, a, id, *req.FinalPrice)
	})
}

// Cancel cancels the request, charging the fee quoted by CancellationQuote.
func (h *ServiceRequestHandler) Cancel(c echo.Context) error {
	var req CancelServiceRequestRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return h.move(c, func(ctx context.Context, a usecase.Actor, id uuid.UUID) (*entity.ServiceRequest, error) {
		return h.requestUC.Cancel(ctx, a, id, req.Reason)
	})
}

// CancellationQuote returns the fee and wording the caller would see when cancelling now.
func (h *ServiceRequestHandler) CancellationQuote(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	quote, err := h.requestUC.CancellationQuote(c.Request().Context(), a, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, quote)
}

func (h *ServiceRequestHandler) move(c echo.Context, fn transition) error {
	a, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	request, err := fn(c.Request().Context(), a, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, request)
}
