package usecase

import (
	"context"

	"mealbell/internal/domain/entity"
)

// PreferencesUpdate carries a full replacement of a user's alert settings.
type PreferencesUpdate struct {
	Allergies           []string `json:"allergies"`
	FavoriteMenus       []string `json:"favorite_menus"`
	AllowNotifications  bool     `json:"allow_notifications"`
	AllowAllergyAlerts  bool     `json:"allow_allergy_alerts"`
	AllowFavoriteAlerts bool     `json:"allow_favorite_alerts"`
}

// PreferenceUsecase defines the interface for preference management use cases
type PreferenceUsecase interface {
	// GetPreferences retrieves the user's current alert settings.
	GetPreferences(ctx context.Context, email string) (*entity.User, error)

	// UpdatePreferences replaces the user's preference lists and flags.
	UpdatePreferences(ctx context.Context, email string, update *PreferencesUpdate) (*entity.User, error)
}
