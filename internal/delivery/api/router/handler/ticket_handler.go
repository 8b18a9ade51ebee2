package handler

import (
	"servihub/internal/delivery/api/response"
	"servihub/internal/domain/entity"
	"servihub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TicketHandlerParams holds dependencies for TicketHandler, injected by Fx.
type TicketHandlerParams struct {
	fx.In

	TicketUC usecase.TicketUsecase
}

// TicketHandler serves support tickets.
type TicketHandler struct {
	ticketUC usecase.TicketUsecase
}

// NewTicketHandler is the constructor for TicketHandler.
func NewTicketHandler(params TicketHandlerParams) *TicketHandler {
	return &TicketHandler{ticketUC: params.TicketUC}
}

// OpenTicketRequest is a dispute raised by a client.
type OpenTicketRequest struct {
	ServiceRequestID string `json:"service_request_id" validate:"omitempty,uuid"`
	OrderID          string `json:"order_id" validate:"omitempty,uuid"`
	Subject          string `json:"subject" validate:"required,max=200"`
	Description      string `json:"description" validate:"required,max=5000"`
}

// RespondTicketRequest carries the answer to a ticket.
type RespondTicketRequest struct {
	Response string `json:"response" validate:"required,max=5000"`
}

func optionalUUID(raw string) *uuid.UUID {
	if raw == "" {
		return nil
	}
	id := uuid.MustParse(raw)

	return &id
}

// Open raises a ticket.
func (h *TicketHandler) Open(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req OpenTicketRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	ticket, err := h.ticketUC.Open(c.Request().Context(), a, &usecase.OpenTicketInput{
		ServiceRequestID: optionalUUID(req.ServiceRequestID),
		OrderID:          optionalUUID(req.OrderID),
		Subject:          req.Subject,
		Description:      req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, ticket)
}

// List returns the tickets visible to the caller.
func (h *TicketHandler) List(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var status *entity.SupportTicketStatus
	if raw := c.QueryParam("status"); raw != "" {
		s := entity.SupportTicketStatus(raw)
		status = &s
	}

	tickets, err := h.ticketUC.List(c.Request().Context(), a, status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, tickets)
}

// Get returns one ticket.
func (h *TicketHandler) Get(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	ticket, err := h.ticketUC.Get(c.Request().Context(), a, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, ticket)
}

// Respond answers a ticket.
func (h *TicketHandler) Respond(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req RespondTicketRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	ticket, err := h.ticketUC.Respond(c.Request().Context(), a, id, req.Response)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, ticket)
}

// Resolve closes a ticket.
func (h *TicketHandler) Resolve(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	ticket, err := h.ticketUC.Resolve(c.Request().Context(), a, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, ticket)
}

// UploadAttachment stores the multipart "file" field on the ticket.
func (h *TicketHandler) UploadAttachment(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	upload, closeFile, err := formUpload(c, "file")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer closeFile() //nolint:errcheck

	ticket, err := h.ticketUC.UploadAttachment(c.Request().Context(), a, id, upload)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, ticket)
}
