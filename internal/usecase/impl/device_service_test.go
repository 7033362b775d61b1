package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"mealbell/internal/domain/entity"
	domainerrors "mealbell/internal/domain/errors"
	"mealbell/internal/domain/repository"
	mockRepo "mealbell/internal/mocks/repository"
	"mealbell/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestDeviceService(t *testing.T) (
	usecase.DeviceUsecase,
	*mockRepo.MockUserRepository,
	*mockRepo.MockDeviceRepository,
) {
	userRepo := mockRepo.NewMockUserRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewDeviceService(userRepo, deviceRepo, logger)

	return service, userRepo, deviceRepo
}

func TestDeviceService_RegisterDevice_Success(t *testing.T) {
	service, userRepo, deviceRepo := createTestDeviceService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "student@school.kr"}

	userRepo.EXPECT().FindUserByEmail(ctx, "student@school.kr").Return(user, nil)
	deviceRepo.EXPECT().
		UpsertDevice(ctx, mock.MatchedBy(func(d *entity.UserDevice) bool {
			return d.UserID == user.ID && d.DeviceClass == entity.DeviceClassMobile && d.Token == "fcm-token-1"
		})).
		Return(nil)

	device, err := service.RegisterDevice(ctx, "student@school.kr", entity.DeviceClassMobile, "fcm-token-1")

	require.NoError(t, err)
	require.NotNil(t, device)
	assert.Equal(t, user.ID, device.UserID)
	assert.Equal(t, "fcm-token-1", device.Token)
}

func TestDeviceService_RegisterDevice_TrimsToken(t *testing.T) {
	service, userRepo, deviceRepo := createTestDeviceService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "student@school.kr"}

	userRepo.EXPECT().FindUserByEmail(ctx, "student@school.kr").Return(user, nil)
	deviceRepo.EXPECT().
		UpsertDevice(ctx, mock.MatchedBy(func(d *entity.UserDevice) bool {
			return d.Token == "fcm-token-1"
		})).
		Return(nil)

	device, err := service.RegisterDevice(ctx, "student@school.kr", entity.DeviceClassWeb, "  fcm-token-1  ")

	require.NoError(t, err)
	assert.Equal(t, "fcm-token-1", device.Token)
}

func TestDeviceService_RegisterDevice_InvalidClass(t *testing.T) {
	service, _, _ := createTestDeviceService(t)

	ctx := context.Background()

	device, err := service.RegisterDevice(ctx, "student@school.kr", "tablet", "fcm-token-1")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidDeviceClass)
	assert.Nil(t, device)
}

func TestDeviceService_RegisterDevice_BlankToken(t *testing.T) {
	service, _, _ := createTestDeviceService(t)

	ctx := context.Background()

	device, err := service.RegisterDevice(ctx, "student@school.kr", entity.DeviceClassMobile, "   ")

	assert.Error(t, err)
	assert.Nil(t, device)
}

func TestDeviceService_RegisterDevice_UnknownUser(t *testing.T) {
	service, userRepo, _ := createTestDeviceService(t)

	ctx := context.Background()

	userRepo.EXPECT().
		FindUserByEmail(ctx, "ghost@school.kr").
		Return(nil, repository.ErrUserNotFound)

	device, err := service.RegisterDevice(ctx, "ghost@school.kr", entity.DeviceClassMobile, "fcm-token-1")

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	assert.Nil(t, device)
}

func TestDeviceService_RevokeDevice_Success(t *testing.T) {
	service, _, deviceRepo := createTestDeviceService(t)

	ctx := context.Background()

	deviceRepo.EXPECT().DeleteDevicesByToken(ctx, "fcm-token-1").Return(2, nil)

	removed, err := service.RevokeDevice(ctx, "fcm-token-1")

	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)
}

func TestDeviceService_RevokeDevice_UnknownTokenIsNoop(t *testing.T) {
	service, _, deviceRepo := createTestDeviceService(t)

	ctx := context.Background()

	deviceRepo.EXPECT().DeleteDevicesByToken(ctx, "never-seen").Return(0, nil)

	removed, err := service.RevokeDevice(ctx, "never-seen")

	require.NoError(t, err)
	assert.Equal(t, int64(0), removed)
}

func TestDeviceService_RevokeDevice_BlankToken(t *testing.T) {
	service, _, _ := createTestDeviceService(t)

	ctx := context.Background()

	_, err := service.RevokeDevice(ctx, "  ")

	assert.Error(t, err)
}

func TestDeviceService_GetUserDevices(t *testing.T) {
	service, userRepo, deviceRepo := createTestDeviceService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "student@school.kr"}
	expected := []*entity.UserDevice{
		{ID: uuid.New(), UserID: user.ID, DeviceClass: entity.DeviceClassMobile, Token: "fcm-token-1"},
		{ID: uuid.New(), UserID: user.ID, DeviceClass: entity.DeviceClassWeb, Token: "web-token-1"},
	}

	userRepo.EXPECT().FindUserByEmail(ctx, "student@school.kr").Return(user, nil)
	deviceRepo.EXPECT().FindDevicesByUser(ctx, user.ID).Return(expected, nil)

	got, err := service.GetUserDevices(ctx, "student@school.kr")

	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestDeviceService_GetUserDevices_RepoError(t *testing.T) {
	service, userRepo, deviceRepo := createTestDeviceService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "student@school.kr"}

	userRepo.EXPECT().FindUserByEmail(ctx, "student@school.kr").Return(user, nil)
	deviceRepo.EXPECT().FindDevicesByUser(ctx, user.ID).Return(nil, errors.New("database error"))

	got, err := service.GetUserDevices(ctx, "student@school.kr")

	assert.Error(t, err)
	assert.Nil(t, got)
}
