package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"mealbell/config"
	"mealbell/internal/domain/entity"
	domainerrors "mealbell/internal/domain/errors"
	mockRepo "mealbell/internal/mocks/repository"
	mockSvc "mealbell/internal/mocks/service"
	"mealbell/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCampaignService(t *testing.T) (
	usecase.CampaignUsecase,
	*mockRepo.MockCampaignRepository,
	*mockRepo.MockUserRepository,
	*mockRepo.MockDeviceRepository,
	*mockSvc.MockPushService,
	*mockSvc.MockMenuSource,
	*mockSvc.MockCampaignLocker,
	*mockSvc.MockEventPublisher,
) {
	campaignRepo := mockRepo.NewMockCampaignRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	pushSvc := mockSvc.NewMockPushService(t)
	menuSource := mockSvc.NewMockMenuSource(t)
	locker := mockSvc.NewMockCampaignLocker(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewCampaignService(
		campaignRepo,
		userRepo,
		deviceRepo,
		pushSvc,
		menuSource,
		locker,
		publisher,
		config.NotifyConfig{
			BatchSize:    500,
			BatchWorkers: 2,
			PushTimeout:  time.Second,
			DedupTTL:     30 * time.Second,
			MatchWorkers: 4,
		},
		logger,
	)

	return service, campaignRepo, userRepo, deviceRepo, pushSvc, menuSource, locker, publisher
}

func notifiableUser(email string) *entity.User {
	return &entity.User{
		ID:                 uuid.New(),
		Email:              email,
		AllowNotifications: true,
	}
}

func TestCampaignService_SubmitCampaign_ImmediateDispatch(t *testing.T) {
	service, campaignRepo, userRepo, deviceRepo, pushSvc, _, locker, publisher := createTestCampaignService(t)

	ctx := context.Background()
	userA := notifiableUser("a@school.kr")
	userB := notifiableUser("b@school.kr")

	locker.EXPECT().Acquire(ctx, "공지사항", "ALL").Return(true, nil)
	campaignRepo.EXPECT().CreateCampaign(ctx, mock.Anything).Return(nil)
	userRepo.EXPECT().FindNotifiableUsers(ctx).Return([]*entity.User{userA, userB}, nil)
	deviceRepo.EXPECT().
		FindTokensForUsers(ctx, []uuid.UUID{userA.ID, userB.ID}).
		Return([]string{"token-1", "token-2"}, nil)
	pushSvc.EXPECT().
		SendBatchNotification(mock.Anything, []string{"token-1", "token-2"}, "공지사항", "오늘 급식 안내", mock.Anything).
		Return(2, 0, nil, nil)
	campaignRepo.EXPECT().
		MarkDispatched(ctx, mock.Anything, entity.DeliveryOutcome{Total: 2, Success: 2, Failure: 0}).
		Return(nil)
	publisher.EXPECT().PublishCampaignDispatched(ctx, mock.Anything).Return(nil)

	campaign, err := service.SubmitCampaign(ctx, &usecase.CampaignRequest{
		Title:      "공지사항",
		Body:       "오늘 급식 안내",
		TargetType: entity.TargetTypeAll,
		CreatedBy:  "admin@school.kr",
	})

	require.NoError(t, err)
	require.NotNil(t, campaign)
	assert.True(t, campaign.Sent)
	assert.Equal(t, 2, campaign.TotalCount)
	assert.Equal(t, 2, campaign.SuccessCount)
	assert.Equal(t, 0, campaign.FailureCount)
}

func TestCampaignService_SubmitCampaign_DuplicateSuppressed(t *testing.T) {
	service, _, _, _, _, _, locker, _ := createTestCampaignService(t)

	ctx := context.Background()

	locker.EXPECT().Acquire(ctx, "공지사항", "ALL").Return(false, nil)

	campaign, err := service.SubmitCampaign(ctx, &usecase.CampaignRequest{
		Title:      "공지사항",
		Body:       "오늘 급식 안내",
		TargetType: entity.TargetTypeAll,
	})

	assert.ErrorIs(t, err, domainerrors.ErrDuplicateCampaign)
	assert.Nil(t, campaign)
}

func TestCampaignService_SubmitCampaign_FutureScheduleReserves(t *testing.T) {
	service, campaignRepo, _, _, _, _, _, _ := createTestCampaignService(t)

	ctx := context.Background()
	scheduledAt := time.Now().Add(time.Hour)

	campaignRepo.EXPECT().CreateCampaign(ctx, mock.Anything).Return(nil)

	campaign, err := service.SubmitCampaign(ctx, &usecase.CampaignRequest{
		Title:       "내일 공지",
		Body:        "내일 급식 안내",
		TargetType:  entity.TargetTypeAll,
		ScheduledAt: &scheduledAt,
	})

	require.NoError(t, err)
	require.NotNil(t, campaign)
	assert.False(t, campaign.Sent)
	assert.Equal(t, 0, campaign.TotalCount)
}

func TestCampaignService_SubmitCampaign_EmptyAudience(t *testing.T) {
	service, campaignRepo, userRepo, deviceRepo, _, _, locker, publisher := createTestCampaignService(t)

	ctx := context.Background()
	mutedUser := &entity.User{ID: uuid.New(), Email: "muted@school.kr", AllowNotifications: false}

	locker.EXPECT().Acquire(ctx, "공지사항", "ALL").Return(true, nil)
	campaignRepo.EXPECT().CreateCampaign(ctx, mock.Anything).Return(nil)
	userRepo.EXPECT().FindNotifiableUsers(ctx).Return([]*entity.User{mutedUser}, nil)
	deviceRepo.EXPECT().FindTokensForUsers(ctx, []uuid.UUID{}).Return([]string{}, nil)
	campaignRepo.EXPECT().
		MarkDispatched(ctx, mock.Anything, entity.DeliveryOutcome{}).
		Return(nil)
	publisher.EXPECT().PublishCampaignDispatched(ctx, mock.Anything).Return(nil)

	campaign, err := service.SubmitCampaign(ctx, &usecase.CampaignRequest{
		Title:      "공지사항",
		Body:       "오늘 급식 안내",
		TargetType: entity.TargetTypeAll,
	})

	require.NoError(t, err)
	assert.True(t, campaign.Sent)
	assert.Equal(t, 0, campaign.TotalCount)
}

func TestCampaignService_SubmitCampaign_TargetedAudience(t *testing.T) {
	service, campaignRepo, userRepo, deviceRepo, pushSvc, _, locker, publisher := createTestCampaignService(t)

	ctx := context.Background()
	target := notifiableUser("target@school.kr")
	emails := []string{"target@school.kr", "unknown@school.kr"}

	locker.EXPECT().Acquire(ctx, "개별 공지", "TARGET").Return(true, nil)
	campaignRepo.EXPECT().CreateCampaign(ctx, mock.Anything).Return(nil)
	userRepo.EXPECT().FindUsersByEmails(ctx, emails).Return([]*entity.User{target}, nil)
	deviceRepo.EXPECT().
		FindTokensForUsers(ctx, []uuid.UUID{target.ID}).
		Return([]string{"token-t"}, nil)
	pushSvc.EXPECT().
		SendBatchNotification(mock.Anything, []string{"token-t"}, "개별 공지", "안내문", mock.Anything).
		Return(1, 0, nil, nil)
	campaignRepo.EXPECT().
		MarkDispatched(ctx, mock.Anything, entity.DeliveryOutcome{Total: 1, Success: 1, Failure: 0}).
		Return(nil)
	publisher.EXPECT().PublishCampaignDispatched(ctx, mock.Anything).Return(nil)

	campaign, err := service.SubmitCampaign(ctx, &usecase.CampaignRequest{
		Title:        "개별 공지",
		Body:         "안내문",
		TargetType:   entity.TargetTypeTarget,
		TargetEmails: emails,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, campaign.SuccessCount)
}

func TestCampaignService_SubmitCampaign_BatchErrorCountsWholeBatch(t *testing.T) {
	service, campaignRepo, userRepo, deviceRepo, pushSvc, _, locker, publisher := createTestCampaignService(t)

	ctx := context.Background()
	userA := notifiableUser("a@school.kr")
	userB := notifiableUser("b@school.kr")

	locker.EXPECT().Acquire(ctx, "공지사항", "ALL").Return(true, nil)
	campaignRepo.EXPECT().CreateCampaign(ctx, mock.Anything).Return(nil)
	userRepo.EXPECT().FindNotifiableUsers(ctx).Return([]*entity.User{userA, userB}, nil)
	deviceRepo.EXPECT().
		FindTokensForUsers(ctx, []uuid.UUID{userA.ID, userB.ID}).
		Return([]string{"token-1", "token-2"}, nil)
	pushSvc.EXPECT().
		SendBatchNotification(mock.Anything, []string{"token-1", "token-2"}, "공지사항", "오늘 급식 안내", mock.Anything).
		Return(0, 0, nil, errors.New("firebase unavailable"))
	campaignRepo.EXPECT().
		MarkDispatched(ctx, mock.Anything, entity.DeliveryOutcome{Total: 2, Success: 0, Failure: 2}).
		Return(nil)
	publisher.EXPECT().PublishCampaignDispatched(ctx, mock.Anything).Return(nil)

	campaign, err := service.SubmitCampaign(ctx, &usecase.CampaignRequest{
		Title:      "공지사항",
		Body:       "오늘 급식 안내",
		TargetType: entity.TargetTypeAll,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, campaign.FailureCount)
	assert.LessOrEqual(t, campaign.SuccessCount+campaign.FailureCount, campaign.TotalCount)
}

func TestCampaignService_SubmitCampaign_InvalidTokensPruned(t *testing.T) {
	service, campaignRepo, userRepo, deviceRepo, pushSvc, _, locker, publisher := createTestCampaignService(t)

	ctx := context.Background()
	userA := notifiableUser("a@school.kr")

	locker.EXPECT().Acquire(ctx, "공지사항", "ALL").Return(true, nil)
	campaignRepo.EXPECT().CreateCampaign(ctx, mock.Anything).Return(nil)
	userRepo.EXPECT().FindNotifiableUsers(ctx).Return([]*entity.User{userA}, nil)
	deviceRepo.EXPECT().
		FindTokensForUsers(ctx, []uuid.UUID{userA.ID}).
		Return([]string{"token-live", "token-dead"}, nil)
	pushSvc.EXPECT().
		SendBatchNotification(mock.Anything, []string{"token-live", "token-dead"}, "공지사항", "오늘 급식 안내", mock.Anything).
		Return(1, 1, []string{"token-dead"}, nil)
	deviceRepo.EXPECT().DeleteDevicesByToken(ctx, "token-dead").Return(1, nil)
	campaignRepo.EXPECT().
		MarkDispatched(ctx, mock.Anything, entity.DeliveryOutcome{Total: 2, Success: 1, Failure: 1}).
		Return(nil)
	publisher.EXPECT().PublishCampaignDispatched(ctx, mock.Anything).Return(nil)

	campaign, err := service.SubmitCampaign(ctx, &usecase.CampaignRequest{
		Title:      "공지사항",
		Body:       "오늘 급식 안내",
		TargetType: entity.TargetTypeAll,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, campaign.SuccessCount)
	assert.Equal(t, 1, campaign.FailureCount)
}

func TestCampaignService_SubmitCampaign_ReleasesLockOnDispatchFailure(t *testing.T) {
	service, campaignRepo, userRepo, _, _, _, locker, _ := createTestCampaignService(t)

	ctx := context.Background()

	locker.EXPECT().Acquire(ctx, "공지사항", "ALL").Return(true, nil)
	campaignRepo.EXPECT().CreateCampaign(ctx, mock.Anything).Return(nil)
	userRepo.EXPECT().FindNotifiableUsers(ctx).Return(nil, errors.New("db down"))
	locker.EXPECT().Release(ctx, "공지사항", "ALL").Return(nil)

	campaign, err := service.SubmitCampaign(ctx, &usecase.CampaignRequest{
		Title:      "공지사항",
		Body:       "오늘 급식 안내",
		TargetType: entity.TargetTypeAll,
	})

	assert.Error(t, err)
	assert.Nil(t, campaign)
	assert.Contains(t, err.Error(), "resolve campaign audience")
}

func TestCampaignService_SubmitCampaign_ValidationRejections(t *testing.T) {
	service, _, _, _, _, _, _, _ := createTestCampaignService(t)

	ctx := context.Background()

	tests := []struct {
		name string
		req  *usecase.CampaignRequest
	}{
		{
			name: "missing title",
			req:  &usecase.CampaignRequest{Title: "  ", Body: "안내", TargetType: entity.TargetTypeAll},
		},
		{
			name: "unknown target type",
			req:  &usecase.CampaignRequest{Title: "공지", Body: "안내", TargetType: "SOME"},
		},
		{
			name: "targeted without emails",
			req:  &usecase.CampaignRequest{Title: "공지", Body: "안내", TargetType: entity.TargetTypeTarget},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			campaign, err := service.SubmitCampaign(ctx, tt.req)

			assert.Error(t, err)
			assert.Nil(t, campaign)
		})
	}
}

func TestCampaignService_SubmitCampaign_EmptyMenuBodyRejected(t *testing.T) {
	service, _, _, _, _, _, _, _ := createTestCampaignService(t)

	ctx := context.Background()

	tests := []struct {
		name string
		body string
	}{
		{name: "blank body", body: "   "},
		{name: "no meal message", body: "오늘은 급식이 없습니다."},
		{name: "no info message", body: "등록된 정보가 없습니다"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			campaign, err := service.SubmitCampaign(ctx, &usecase.CampaignRequest{
				Title:      "급식 공지",
				Body:       tt.body,
				TargetType: entity.TargetTypeAll,
			})

			assert.ErrorIs(t, err, domainerrors.ErrEmptyCampaignBody)
			assert.Nil(t, campaign)
		})
	}
}

func TestCampaignService_SubmitCampaign_TestTitleBypassesBodyCheck(t *testing.T) {
	service, campaignRepo, userRepo, deviceRepo, _, _, locker, publisher := createTestCampaignService(t)

	ctx := context.Background()

	locker.EXPECT().Acquire(ctx, "테스트 발송", "ALL").Return(true, nil)
	campaignRepo.EXPECT().CreateCampaign(ctx, mock.Anything).Return(nil)
	userRepo.EXPECT().FindNotifiableUsers(ctx).Return([]*entity.User{}, nil)
	deviceRepo.EXPECT().FindTokensForUsers(ctx, []uuid.UUID{}).Return(nil, nil)
	campaignRepo.EXPECT().
		MarkDispatched(ctx, mock.Anything, entity.DeliveryOutcome{}).
		Return(nil)
	publisher.EXPECT().PublishCampaignDispatched(ctx, mock.Anything).Return(nil)

	campaign, err := service.SubmitCampaign(ctx, &usecase.CampaignRequest{
		Title:      "테스트 발송",
		Body:       "",
		TargetType: entity.TargetTypeAll,
	})

	require.NoError(t, err)
	assert.True(t, campaign.Sent)
}

func TestCampaignService_DispatchDueCampaigns_IsolatesFailures(t *testing.T) {
	service, campaignRepo, userRepo, deviceRepo, _, _, locker, publisher := createTestCampaignService(t)

	ctx := context.Background()
	now := time.Now()
	broken := &entity.Campaign{ID: uuid.New(), Title: "고장난 공지", TargetType: entity.TargetTypeAll}
	healthy := &entity.Campaign{ID: uuid.New(), Title: "정상 공지", TargetType: entity.TargetTypeAll}

	campaignRepo.EXPECT().
		FindDueCampaigns(ctx, now).
		Return([]*entity.Campaign{broken, healthy}, nil)

	locker.EXPECT().Acquire(ctx, "고장난 공지", "ALL").Return(false, errors.New("redis down"))

	locker.EXPECT().Acquire(ctx, "정상 공지", "ALL").Return(true, nil)
	userRepo.EXPECT().FindNotifiableUsers(ctx).Return([]*entity.User{}, nil)
	deviceRepo.EXPECT().FindTokensForUsers(ctx, []uuid.UUID{}).Return(nil, nil)
	campaignRepo.EXPECT().
		MarkDispatched(ctx, healthy.ID, entity.DeliveryOutcome{}).
		Return(nil)
	publisher.EXPECT().PublishCampaignDispatched(ctx, mock.Anything).Return(nil)

	err := service.DispatchDueCampaigns(ctx, now)

	require.NoError(t, err)
	assert.True(t, healthy.Sent)
	assert.False(t, broken.Sent)
}

func TestCampaignService_DispatchDueCampaigns_LockMissSwallowed(t *testing.T) {
	service, campaignRepo, _, _, _, _, locker, _ := createTestCampaignService(t)

	ctx := context.Background()
	now := time.Now()
	reserved := &entity.Campaign{ID: uuid.New(), Title: "예약 공지", TargetType: entity.TargetTypeAll}

	campaignRepo.EXPECT().
		FindDueCampaigns(ctx, now).
		Return([]*entity.Campaign{reserved}, nil)
	locker.EXPECT().Acquire(ctx, "예약 공지", "ALL").Return(false, nil)

	err := service.DispatchDueCampaigns(ctx, now)

	require.NoError(t, err)
	assert.False(t, reserved.Sent)
}

func TestCampaignService_DispatchMealCampaign_MatchesPreferences(t *testing.T) {
	service, campaignRepo, userRepo, deviceRepo, pushSvc, menuSource, locker, publisher := createTestCampaignService(t)

	ctx := context.Background()
	date := "20260302"
	title := entity.MealSlotLunch.PushTitle()

	fan := &entity.User{
		ID:                  uuid.New(),
		Email:               "fan@school.kr",
		FavoriteMenus:       []string{"돈까스"},
		AllowNotifications:  true,
		AllowFavoriteAlerts: true,
	}
	indifferent := &entity.User{
		ID:                 uuid.New(),
		Email:              "plain@school.kr",
		AllowNotifications: true,
	}

	menuSource.EXPECT().
		FetchMenu(ctx, date, entity.MealSlotLunch).
		Return("김치찌개(9)<br/>치즈돈까스(1.5.6)<br/>쌀밥", nil)
	locker.EXPECT().Acquire(ctx, title, "ALL").Return(true, nil)
	userRepo.EXPECT().FindNotifiableUsers(ctx).Return([]*entity.User{fan, indifferent}, nil)
	deviceRepo.EXPECT().
		FindTokensForUsers(ctx, []uuid.UUID{fan.ID}).
		Return([]string{"token-fan"}, nil)
	pushSvc.EXPECT().
		SendBatchNotification(mock.Anything, []string{"token-fan"}, title, "⭐ 좋아하는 [돈까스] 메뉴가 오늘 나와요!", mock.Anything).
		Return(1, 0, nil, nil)
	campaignRepo.EXPECT().
		CreateCampaign(ctx, mock.MatchedBy(func(c *entity.Campaign) bool {
			return c.Title == title && c.Body == "김치찌개, 치즈돈까스, 쌀밥" && c.CreatedBy == "SYSTEM_SCHEDULER"
		})).
		Return(nil)
	campaignRepo.EXPECT().
		MarkDispatched(ctx, mock.Anything, entity.DeliveryOutcome{Total: 1, Success: 1, Failure: 0}).
		Return(nil)
	publisher.EXPECT().PublishCampaignDispatched(ctx, mock.Anything).Return(nil)

	err := service.DispatchMealCampaign(ctx, entity.MealSlotLunch, date)

	require.NoError(t, err)
}

func TestCampaignService_DispatchMealCampaign_AllergyAndFavoriteBody(t *testing.T) {
	service, campaignRepo, userRepo, deviceRepo, pushSvc, menuSource, locker, publisher := createTestCampaignService(t)

	ctx := context.Background()
	date := "20260302"
	title := entity.MealSlotDinner.PushTitle()

	user := &entity.User{
		ID:                  uuid.New(),
		Email:               "both@school.kr",
		Allergies:           []string{"새우"},
		FavoriteMenus:       []string{"돈까스"},
		AllowNotifications:  true,
		AllowAllergyAlerts:  true,
		AllowFavoriteAlerts: true,
	}

	menuSource.EXPECT().
		FetchMenu(ctx, date, entity.MealSlotDinner).
		Return("새우튀김(5.9)<br/>치즈돈까스(1.5)", nil)
	locker.EXPECT().Acquire(ctx, title, "ALL").Return(true, nil)
	userRepo.EXPECT().FindNotifiableUsers(ctx).Return([]*entity.User{user}, nil)
	deviceRepo.EXPECT().
		FindTokensForUsers(ctx, []uuid.UUID{user.ID}).
		Return([]string{"token-both"}, nil)

	expectedBody := "⚠️ 못 드시는 [새우] 성분이 포함되어 있어요.\n⭐ 좋아하는 [돈까스] 메뉴가 오늘 나와요!"
	pushSvc.EXPECT().
		SendBatchNotification(mock.Anything, []string{"token-both"}, title, expectedBody, mock.Anything).
		Return(1, 0, nil, nil)
	campaignRepo.EXPECT().CreateCampaign(ctx, mock.Anything).Return(nil)
	campaignRepo.EXPECT().
		MarkDispatched(ctx, mock.Anything, entity.DeliveryOutcome{Total: 1, Success: 1, Failure: 0}).
		Return(nil)
	publisher.EXPECT().PublishCampaignDispatched(ctx, mock.Anything).Return(nil)

	err := service.DispatchMealCampaign(ctx, entity.MealSlotDinner, date)

	require.NoError(t, err)
}

func TestCampaignService_DispatchMealCampaign_NoMenuDay(t *testing.T) {
	service, _, _, _, _, menuSource, _, _ := createTestCampaignService(t)

	ctx := context.Background()

	menuSource.EXPECT().
		FetchMenu(ctx, "20260301", entity.MealSlotMorning).
		Return("", nil)

	err := service.DispatchMealCampaign(ctx, entity.MealSlotMorning, "20260301")

	require.NoError(t, err)
}

func TestCampaignService_DispatchMealCampaign_LockMiss(t *testing.T) {
	service, _, _, _, _, menuSource, locker, _ := createTestCampaignService(t)

	ctx := context.Background()
	title := entity.MealSlotLunch.PushTitle()

	menuSource.EXPECT().
		FetchMenu(ctx, "20260302", entity.MealSlotLunch).
		Return("김치찌개(9)", nil)
	locker.EXPECT().Acquire(ctx, title, "ALL").Return(false, nil)

	err := service.DispatchMealCampaign(ctx, entity.MealSlotLunch, "20260302")

	require.NoError(t, err)
}

func TestCampaignService_DispatchMealCampaign_MutedUsersSkipped(t *testing.T) {
	service, campaignRepo, userRepo, _, _, menuSource, locker, publisher := createTestCampaignService(t)

	ctx := context.Background()
	title := entity.MealSlotLunch.PushTitle()

	mutedFavorites := &entity.User{
		ID:                  uuid.New(),
		Email:               "muted@school.kr",
		FavoriteMenus:       []string{"돈까스"},
		AllowNotifications:  true,
		AllowFavoriteAlerts: false,
	}

	menuSource.EXPECT().
		FetchMenu(ctx, "20260302", entity.MealSlotLunch).
		Return("치즈돈까스(1.5)", nil)
	locker.EXPECT().Acquire(ctx, title, "ALL").Return(true, nil)
	userRepo.EXPECT().FindNotifiableUsers(ctx).Return([]*entity.User{mutedFavorites}, nil)
	campaignRepo.EXPECT().CreateCampaign(ctx, mock.Anything).Return(nil)
	campaignRepo.EXPECT().
		MarkDispatched(ctx, mock.Anything, entity.DeliveryOutcome{}).
		Return(nil)
	publisher.EXPECT().PublishCampaignDispatched(ctx, mock.Anything).Return(nil)

	err := service.DispatchMealCampaign(ctx, entity.MealSlotLunch, "20260302")

	require.NoError(t, err)
}

func TestCampaignService_GetCampaignHistory(t *testing.T) {
	service, campaignRepo, _, _, _, _, _, _ := createTestCampaignService(t)

	ctx := context.Background()
	expected := []*entity.Campaign{{ID: uuid.New(), Title: "최근 공지"}}

	campaignRepo.EXPECT().FindRecentCampaigns(ctx, 20).Return(expected, nil)

	got, err := service.GetCampaignHistory(ctx, 20)

	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestCampaignService_GetCampaignStats(t *testing.T) {
	service, campaignRepo, _, _, _, _, _, _ := createTestCampaignService(t)

	ctx := context.Background()
	recent := []*entity.Campaign{{ID: uuid.New(), Title: "최근 공지"}}

	campaignRepo.EXPECT().FindRecentCampaigns(ctx, 10).Return(recent, nil)
	campaignRepo.EXPECT().CountCampaigns(ctx).Return(int64(42), nil)

	stats, err := service.GetCampaignStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, recent, stats.RecentLogs)
	assert.Equal(t, int64(42), stats.TotalSentCount)
}

func TestCampaignService_GetTotalSent_Error(t *testing.T) {
	service, campaignRepo, _, _, _, _, _, _ := createTestCampaignService(t)

	ctx := context.Background()

	campaignRepo.EXPECT().CountCampaigns(ctx).Return(int64(0), errors.New("database error"))

	_, err := service.GetTotalSent(ctx)

	assert.Error(t, err)
}
