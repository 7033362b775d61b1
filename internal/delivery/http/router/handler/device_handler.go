package handler

import (
	"log/slog"
	"net/http"

	"mealbell/internal/delivery/http/middleware"
	"mealbell/internal/delivery/http/response"
	"mealbell/internal/domain/entity"
	"mealbell/internal/usecase"

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

// RegisterDeviceRequest represents the request body for registering a device token
type RegisterDeviceRequest struct {
	Token       string `json:"token" validate:"required"`
	DeviceClass string `json:"device_class" validate:"required,oneof=mobile web"`
}

// RevokeDeviceRequest represents the request body for revoking a device token
type RevokeDeviceRequest struct {
	Token string `json:"token" validate:"required"`
}

// RegisterDevice handles device token registration
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	email, err := getUserEmail(c)
	if err != nil {
		return err
	}

	var req RegisterDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), email, entity.DeviceClass(req.DeviceClass), req.Token)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, device, "Device registered successfully")
}

// RevokeDevice handles removing a token from every slot that holds it.
// Revoking an unknown token succeeds with zero removals.
func (h *DeviceHandler) RevokeDevice(c echo.Context) error {
	var req RevokeDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	removed, err := h.deviceUC.RevokeDevice(c.Request().Context(), req.Token)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"removed": removed}, "Device token revoked successfully")
}

// GetUserDevices handles retrieving all registered devices for the user
func (h *DeviceHandler) GetUserDevices(c echo.Context) error {
	email, err := getUserEmail(c)
	if err != nil {
		return err
	}

	devices, err := h.deviceUC.GetUserDevices(c.Request().Context(), email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, devices, "User devices retrieved successfully")
}

// getUserEmail extracts the authenticated user's email from the context
func getUserEmail(c echo.Context) (string, error) {
	email, ok := c.Get(middleware.KeyUserEmail).(string)
	if !ok || email == "" {
		return "", response.Unauthorized(c, "INVALID_TOKEN", "Invalid subject in token")
	}

	return email, nil
}
