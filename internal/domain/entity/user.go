// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a subscribed account.
// Preference lists and alert flags drive which menu notifications the user receives.
type User struct {
	ID                  uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email               string    // The user's primary contact email, used as the external identifier.
	Name                string    // The user's display name.
	Allergies           []string  // Dish fragments the user wants allergy warnings for.
	FavoriteMenus       []string  // Dish fragments the user wants favorite alerts for.
	AllowNotifications  bool      // Master switch. When false the user receives nothing.
	AllowAllergyAlerts  bool      // Whether allergy warnings are included in meal pushes.
	AllowFavoriteAlerts bool      // Whether favorite-menu alerts are included in meal pushes.
	CreatedAt           time.Time // Timestamp of when this user account was created.
	UpdatedAt           time.Time // Timestamp of the last modification to this user's data.
}

// WantsAllergyAlerts reports whether allergy matching should run for this user.
func (u *User) WantsAllergyAlerts() bool {
	return u.AllowNotifications && u.AllowAllergyAlerts && len(u.Allergies) > 0
}

// WantsFavoriteAlerts reports whether favorite matching should run for this user.
func (u *User) WantsFavoriteAlerts() bool {
	return u.AllowNotifications && u.AllowFavoriteAlerts && len(u.FavoriteMenus) > 0
}
