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
	mockSvc "mealbell/internal/mocks/service"
	"mealbell/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPreferenceService(t *testing.T) (
	usecase.PreferenceUsecase,
	*mockRepo.MockUserRepository,
	*mockSvc.MockMailer,
) {
	userRepo := mockRepo.NewMockUserRepository(t)
	mailer := mockSvc.NewMockMailer(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewPreferenceService(userRepo, mailer, logger)

	return service, userRepo, mailer
}

func TestPreferenceService_GetPreferences(t *testing.T) {
	service, userRepo, _ := createTestPreferenceService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:                 uuid.New(),
		Email:              "student@school.kr",
		Allergies:          []string{"새우"},
		AllowNotifications: true,
	}

	userRepo.EXPECT().FindUserByEmail(ctx, "student@school.kr").Return(user, nil)

	got, err := service.GetPreferences(ctx, "student@school.kr")

	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestPreferenceService_GetPreferences_UnknownUser(t *testing.T) {
	service, userRepo, _ := createTestPreferenceService(t)

	ctx := context.Background()

	userRepo.EXPECT().
		FindUserByEmail(ctx, "ghost@school.kr").
		Return(nil, repository.ErrUserNotFound)

	got, err := service.GetPreferences(ctx, "ghost@school.kr")

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	assert.Nil(t, got)
}

func TestPreferenceService_UpdatePreferences_CleansTerms(t *testing.T) {
	service, userRepo, _ := createTestPreferenceService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:                 uuid.New(),
		Email:              "student@school.kr",
		AllowNotifications: true,
	}

	userRepo.EXPECT().FindUserByEmail(ctx, "student@school.kr").Return(user, nil)
	userRepo.EXPECT().
		UpdatePreferences(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return assert.Equal(t, []string{"새우", "복숭아"}, u.Allergies) &&
				assert.Equal(t, []string{"돈까스"}, u.FavoriteMenus)
		})).
		Return(nil)

	got, err := service.UpdatePreferences(ctx, "student@school.kr", &usecase.PreferencesUpdate{
		Allergies:           []string{" 새우 ", "", "복숭아"},
		FavoriteMenus:       []string{"돈까스", "  "},
		AllowNotifications:  true,
		AllowAllergyAlerts:  true,
		AllowFavoriteAlerts: true,
	})

	require.NoError(t, err)
	assert.True(t, got.AllowAllergyAlerts)
	assert.True(t, got.AllowFavoriteAlerts)
}

func TestPreferenceService_UpdatePreferences_MasterSwitchOffSendsNotice(t *testing.T) {
	service, userRepo, mailer := createTestPreferenceService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:                 uuid.New(),
		Email:              "student@school.kr",
		AllowNotifications: true,
	}

	userRepo.EXPECT().FindUserByEmail(ctx, "student@school.kr").Return(user, nil)
	userRepo.EXPECT().UpdatePreferences(ctx, mock.Anything).Return(nil)
	mailer.EXPECT().
		SendAccountNotice(ctx, "student@school.kr", "급식 알림이 꺼졌습니다", mock.Anything).
		Return(nil)

	got, err := service.UpdatePreferences(ctx, "student@school.kr", &usecase.PreferencesUpdate{
		AllowNotifications: false,
	})

	require.NoError(t, err)
	assert.False(t, got.AllowNotifications)
}

func TestPreferenceService_UpdatePreferences_MailFailureIsSwallowed(t *testing.T) {
	service, userRepo, mailer := createTestPreferenceService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:                 uuid.New(),
		Email:              "student@school.kr",
		AllowNotifications: false,
	}

	userRepo.EXPECT().FindUserByEmail(ctx, "student@school.kr").Return(user, nil)
	userRepo.EXPECT().UpdatePreferences(ctx, mock.Anything).Return(nil)
	mailer.EXPECT().
		SendAccountNotice(ctx, "student@school.kr", "급식 알림이 켜졌습니다", mock.Anything).
		Return(errors.New("smtp unavailable"))

	got, err := service.UpdatePreferences(ctx, "student@school.kr", &usecase.PreferencesUpdate{
		AllowNotifications: true,
	})

	require.NoError(t, err)
	assert.True(t, got.AllowNotifications)
}

func TestPreferenceService_UpdatePreferences_UnchangedSwitchSkipsMail(t *testing.T) {
	service, userRepo, _ := createTestPreferenceService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:                 uuid.New(),
		Email:              "student@school.kr",
		AllowNotifications: true,
	}

	userRepo.EXPECT().FindUserByEmail(ctx, "student@school.kr").Return(user, nil)
	userRepo.EXPECT().UpdatePreferences(ctx, mock.Anything).Return(nil)

	_, err := service.UpdatePreferences(ctx, "student@school.kr", &usecase.PreferencesUpdate{
		AllowNotifications: true,
		AllowAllergyAlerts: true,
	})

	require.NoError(t, err)
}

func TestPreferenceService_UpdatePreferences_RepoError(t *testing.T) {
	service, userRepo, _ := createTestPreferenceService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "student@school.kr"}

	userRepo.EXPECT().FindUserByEmail(ctx, "student@school.kr").Return(user, nil)
	userRepo.EXPECT().UpdatePreferences(ctx, mock.Anything).Return(errors.New("database error"))

	got, err := service.UpdatePreferences(ctx, "student@school.kr", &usecase.PreferencesUpdate{})

	assert.Error(t, err)
	assert.Nil(t, got)
}
