package usecase

import (
	"context"

	"mealbell/internal/domain/entity"
)

// DeviceUsecase defines the interface for device token management use cases
type DeviceUsecase interface {
	// RegisterDevice stores the push token in the user's slot for the given
	// device class, replacing whatever the slot held before.
	RegisterDevice(ctx context.Context, email string, class entity.DeviceClass, token string) (*entity.UserDevice, error)

	// RevokeDevice removes the token wherever it is registered and returns
	// how many registrations were cleared. Unknown tokens are a no-op.
	RevokeDevice(ctx context.Context, token string) (int64, error)

	// GetUserDevices retrieves all registered devices for a user.
	GetUserDevices(ctx context.Context, email string) ([]*entity.UserDevice, error)
}
