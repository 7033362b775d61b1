// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"mealbell/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device registration is not found.
	ErrDeviceNotFound = errors.New("device not found")
)

// DeviceRepository defines the interface for device-token database operations.
type DeviceRepository interface {
	// UpsertDevice registers the token for (user, device class), replacing
	// any token previously held in that slot.
	UpsertDevice(ctx context.Context, device *entity.UserDevice) error

	// DeleteDevicesByToken removes the token from every slot holding it and
	// returns how many registrations were removed.
	DeleteDevicesByToken(ctx context.Context, token string) (int64, error)

	// FindDevicesByUser retrieves all registered devices for a user.
	FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// FindTokensForUsers retrieves the distinct tokens registered by the
	// given users. Callers pass only users that may be notified; the
	// per-user notifications-enabled policy lives above this method.
	FindTokensForUsers(ctx context.Context, userIDs []uuid.UUID) ([]string, error)
}
