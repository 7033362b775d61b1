package handler

import (
	"log/slog"
	"net/http"

	"mealbell/internal/delivery/http/response"
	"mealbell/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PreferenceHandlerParams holds dependencies for PreferenceHandler, injected by Fx.
type PreferenceHandlerParams struct {
	fx.In

	PreferenceUC usecase.PreferenceUsecase
	Logger       *slog.Logger
}

// PreferenceHandler holds dependencies for preference-related handlers
type PreferenceHandler struct {
	preferenceUC usecase.PreferenceUsecase
	logger       *slog.Logger
}

// NewPreferenceHandler is the constructor for PreferenceHandler
func NewPreferenceHandler(params PreferenceHandlerParams) *PreferenceHandler {
	return &PreferenceHandler{
		preferenceUC: params.PreferenceUC,
		logger:       params.Logger,
	}
}

// UpdatePreferencesRequest represents the request body for replacing alert settings
type UpdatePreferencesRequest struct {
	Allergies           []string `json:"allergies"`
	FavoriteMenus       []string `json:"favorite_menus"`
	AllowNotifications  bool     `json:"allow_notifications"`
	AllowAllergyAlerts  bool     `json:"allow_allergy_alerts"`
	AllowFavoriteAlerts bool     `json:"allow_favorite_alerts"`
}

// GetPreferences handles retrieving the user's alert settings
func (h *PreferenceHandler) GetPreferences(c echo.Context) error {
	email, err := getUserEmail(c)
	if err != nil {
		return err
	}

	user, err := h.preferenceUC.GetPreferences(c.Request().Context(), email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user, "Preferences retrieved successfully")
}

// UpdatePreferences handles replacing the user's alert settings
func (h *PreferenceHandler) UpdatePreferences(c echo.Context) error {
	email, err := getUserEmail(c)
	if err != nil {
		return err
	}

	var req UpdatePreferencesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preferences input")
	}

	user, err := h.preferenceUC.UpdatePreferences(c.Request().Context(), email, &usecase.PreferencesUpdate{
		Allergies:           req.Allergies,
		FavoriteMenus:       req.FavoriteMenus,
		AllowNotifications:  req.AllowNotifications,
		AllowAllergyAlerts:  req.AllowAllergyAlerts,
		AllowFavoriteAlerts: req.AllowFavoriteAlerts,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user, "Preferences updated successfully")
}
