package impl

import (
	"context"
	"log/slog"
	"strings"

	"mealbell/internal/domain/entity"
	domainerrors "mealbell/internal/domain/errors"
	"mealbell/internal/domain/repository"
	"mealbell/internal/errors"
	"mealbell/internal/usecase"

	"github.com/google/uuid"
)

type deviceService struct {
	userRepo   repository.UserRepository
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
}

// NewDeviceService creates a new device service instance
func NewDeviceService(
	userRepo repository.UserRepository,
	deviceRepo repository.DeviceRepository,
	logger *slog.Logger,
) usecase.DeviceUsecase {
	return &deviceService{
		userRepo:   userRepo,
		deviceRepo: deviceRepo,
		logger:     logger,
	}
}

// RegisterDevice stores the push token in the user's slot for the device
// class, replacing whatever the slot held before.
func (s *deviceService) RegisterDevice(ctx context.Context, email string, class entity.DeviceClass, token string) (*entity.UserDevice, error) {
	if !class.IsValid() {
		return nil, domainerrors.ErrInvalidDeviceClass
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("token is required")
	}

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, err
	}

	device := &entity.UserDevice{
		ID:          uuid.New(),
		UserID:      user.ID,
		DeviceClass: class,
		Token:       token,
	}

	if err := s.deviceRepo.UpsertDevice(ctx, device); err != nil {
		return nil, err
	}

	s.logger.Info("Device registered",
		slog.String("user_id", user.ID.String()),
		slog.String("device_class", class.String()),
	)

	return device, nil
}

// RevokeDevice removes the token wherever it is registered.
// Revocation is idempotent; unknown tokens clear zero rows without error.
func (s *deviceService) RevokeDevice(ctx context.Context, token string) (int64, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, domainerrors.ErrValidationFailed.WrapMessage("token is required")
	}

	removed, err := s.deviceRepo.DeleteDevicesByToken(ctx, token)
	if err != nil {
		return 0, err
	}

	s.logger.Info("Device token revoked", slog.Int64("removed", removed))

	return removed, nil
}

// GetUserDevices retrieves all registered devices for a user.
func (s *deviceService) GetUserDevices(ctx context.Context, email string) ([]*entity.UserDevice, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, err
	}

	return s.deviceRepo.FindDevicesByUser(ctx, user.ID)
}
