package handler

import (
	"log/slog"

	"servihub/internal/delivery/api/response"
	"servihub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// RegisterDeviceRequest represents the request body for registering a device
type RegisterDeviceRequest struct {
	FCMToken string `json:"fcm_token" validate:"required"`
	DeviceID string `json:"device_id" validate:"required,max=200"`
	Platform string `json:"platform" validate:"required,oneof=ios android web"`
}

// UpdateFCMTokenRequest represents the request body for updating FCM token
type UpdateFCMTokenRequest struct {
	FCMToken string `json:"fcm_token" validate:"required"`
}

// RegisterDevice registers the caller's device as a push target.
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req RegisterDeviceRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), a.ID, &usecase.DeviceInfo{
		FCMToken: req.FCMToken,
		DeviceID: req.DeviceID,
		Platform: req.Platform,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, device)
}

// GetProfileDevices returns the caller's active devices.
func (h *DeviceHandler) GetProfileDevices(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	devices, err := h.deviceUC.GetProfileDevices(c.Request().Context(), a.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, devices)
}

// UpdateFCMToken replaces the push token of one of the caller's devices.
func (h *DeviceHandler) UpdateFCMToken(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	deviceID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateFCMTokenRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.deviceUC.UpdateFCMToken(c.Request().Context(), a.ID, deviceID, req.FCMToken); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, messageResponse{Message: "FCM token updated successfully"})
}

// DeactivateDevice stops pushes to one of the caller's devices.
func (h *DeviceHandler) DeactivateDevice(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	deviceID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.deviceUC.DeactivateDevice(c.Request().Context(), a.ID, deviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	h.logger.Debug("Device deactivated", slog.String("device_id", deviceID.String()))

	return response.OK(c, messageResponse{Message: "Device deactivated successfully"})
}
