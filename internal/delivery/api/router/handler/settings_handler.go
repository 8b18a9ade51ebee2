package handler

import (
	"servihub/internal/delivery/api/response"
	"servihub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SettingsHandlerParams holds dependencies for SettingsHandler, injected by Fx.
type SettingsHandlerParams struct {
	fx.In

	SettingsUC usecase.SettingsUsecase
}

// SettingsHandler serves the platform settings.
type SettingsHandler struct {
	settingsUC usecase.SettingsUsecase
}

// NewSettingsHandler is the constructor for SettingsHandler.
func NewSettingsHandler(params SettingsHandlerParams) *SettingsHandler {
	return &SettingsHandler{settingsUC: params.SettingsUC}
}

// UpdateSettingsRequest carries the settings to change.
type UpdateSettingsRequest struct {
	CancellationFee      *int64   `json:"cancellation_fee" validate:"omitempty,gte=0"`
	CommissionRate       *float64 `json:"commission_rate" validate:"omitempty,gte=0,lt=1"`
	DisputeWindowHours   *int     `json:"dispute_window_hours" validate:"omitempty,gt=0"`
	MinTechnicianBalance *int64   `json:"min_technician_balance"`
	Currency             *string  `json:"currency" validate:"omitempty,len=3,uppercase"`
}

// Get returns the current settings.
func (h *SettingsHandler) Get(c echo.Context) error {
	settings, err := h.settingsUC.Get(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, settings)
}

// Update changes the settings.
func (h *SettingsHandler) Update(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateSettingsRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	settings, err := h.settingsUC.Update(c.Request().Context(), a, &usecase.SettingsInput{
		CancellationFee:      req.CancellationFee,
		CommissionRate:       req.CommissionRate,
		DisputeWindowHours:   req.DisputeWindowHours,
		MinTechnicianBalance: req.MinTechnicianBalance,
		Currency:             req.Currency,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, settings)
}
