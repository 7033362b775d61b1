package impl

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"sync"
	"time"

	"mealbell/config"
	"mealbell/internal/domain/entity"
	domainerrors "mealbell/internal/domain/errors"
	"mealbell/internal/domain/menu"
	"mealbell/internal/domain/repository"
	"mealbell/internal/domain/service"
	"mealbell/internal/errors"
	"mealbell/internal/usecase"

	"github.com/google/uuid"
)

const (
	// systemScheduler marks campaigns created by the automatic meal jobs.
	systemScheduler = "SYSTEM_SCHEDULER"

	// recentStatsLimit is the number of campaigns in the stats view.
	recentStatsLimit = 10

	// testTitleMarker exempts a campaign from the menu-empty body check.
	testTitleMarker = "테스트"
)

// bodyFiller matches whitespace and ASCII punctuation when judging whether
// a body carries real menu content.
var bodyFiller = regexp.MustCompile(`[\s\p{P}]`)

type campaignService struct {
	campaignRepo   repository.CampaignRepository
	userRepo       repository.UserRepository
	deviceRepo     repository.DeviceRepository
	pushSvc        service.PushService
	menuSource     service.MenuSource
	locker         service.CampaignLocker
	eventPublisher service.EventPublisher
	notifyCfg      config.NotifyConfig
	logger         *slog.Logger
}

// NewCampaignService creates a new campaign service instance
func NewCampaignService(
	campaignRepo repository.CampaignRepository,
	userRepo repository.UserRepository,
	deviceRepo repository.DeviceRepository,
	pushSvc service.PushService,
	menuSource service.MenuSource,
	locker service.CampaignLocker,
	eventPublisher service.EventPublisher,
	notifyCfg config.NotifyConfig,
	logger *slog.Logger,
) usecase.CampaignUsecase {
	return &campaignService{
		campaignRepo:   campaignRepo,
		userRepo:       userRepo,
		deviceRepo:     deviceRepo,
		pushSvc:        pushSvc,
		menuSource:     menuSource,
		locker:         locker,
		eventPublisher: eventPublisher,
		notifyCfg:      notifyCfg,
		logger:         logger,
	}
}

// SubmitCampaign validates and records an admin campaign.
func (s *campaignService) SubmitCampaign(ctx context.Context, req *usecase.CampaignRequest) (*entity.Campaign, error) {
	if err := validateCampaignRequest(req); err != nil {
		return nil, err
	}

	campaign := &entity.Campaign{
		ID:           uuid.New(),
		Title:        strings.TrimSpace(req.Title),
		Body:         strings.TrimSpace(req.Body),
		TargetType:   req.TargetType,
		TargetEmails: req.TargetEmails,
		TargetDate:   req.TargetDate,
		ScheduledAt:  req.ScheduledAt,
		Sent:         false,
		CreatedBy:    req.CreatedBy,
	}

	// A future scheduled time reserves the campaign for the minute poll.
	if req.ScheduledAt != nil && req.ScheduledAt.After(time.Now()) {
		if err := s.campaignRepo.CreateCampaign(ctx, campaign); err != nil {
			return nil, err
		}

		s.logger.Info("Campaign reserved",
			slog.String("campaign_id", campaign.ID.String()),
			slog.Time("scheduled_at", *req.ScheduledAt),
		)

		return campaign, nil
	}

	acquired, err := s.locker.Acquire(ctx, campaign.Title, campaign.TargetType.String())
	if err != nil {
		return nil, errors.Wrap(err, "acquire dedup lock")
	}
	if !acquired {
		s.logger.Warn("Duplicate campaign suppressed",
			slog.String("title", campaign.Title),
			slog.String("target_type", campaign.TargetType.String()),
		)

		return nil, domainerrors.ErrDuplicateCampaign
	}

	if err := s.campaignRepo.CreateCampaign(ctx, campaign); err != nil {
		if releaseErr := s.locker.Release(ctx, campaign.Title, campaign.TargetType.String()); releaseErr != nil {
			s.logger.Error("Failed to release dedup lock", slog.String("error", releaseErr.Error()))
		}

		return nil, err
	}

	if err := s.dispatch(ctx, campaign); err != nil {
		// Release only on failure so the campaign can be retried; a
		// successful dispatch keeps the lock for its TTL window.
		if releaseErr := s.locker.Release(ctx, campaign.Title, campaign.TargetType.String()); releaseErr != nil {
			s.logger.Error("Failed to release dedup lock", slog.String("error", releaseErr.Error()))
		}

		return nil, err
	}

	return campaign, nil
}

// DispatchDueCampaigns dispatches every reserved campaign whose time has passed.
func (s *campaignService) DispatchDueCampaigns(ctx context.Context, now time.Time) error {
	due, err := s.campaignRepo.FindDueCampaigns(ctx, now)
	if err != nil {
		return err
	}

	for _, campaign := range due {
		if err := s.dispatchReserved(ctx, campaign); err != nil {
			// One broken campaign must not starve the rest of the poll.
			s.logger.Error("Reserved campaign dispatch failed",
				slog.String("campaign_id", campaign.ID.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	return nil
}

func (s *campaignService) dispatchReserved(ctx context.Context, campaign *entity.Campaign) error {
	acquired, err := s.locker.Acquire(ctx, campaign.Title, campaign.TargetType.String())
	if err != nil {
		return errors.Wrap(err, "acquire dedup lock")
	}
	if !acquired {
		s.logger.Warn("Duplicate reserved campaign suppressed",
			slog.String("campaign_id", campaign.ID.String()),
		)

		return nil
	}

	if err := s.dispatch(ctx, campaign); err != nil {
		if releaseErr := s.locker.Release(ctx, campaign.Title, campaign.TargetType.String()); releaseErr != nil {
			s.logger.Error("Failed to release dedup lock", slog.String("error", releaseErr.Error()))
		}

		return err
	}

	return nil
}

// dispatch resolves the audience, fans out batches, and records the outcome.
// Provider failures inside a batch count as failures; only audience and
// persistence errors surface to the caller.
func (s *campaignService) dispatch(ctx context.Context, campaign *entity.Campaign) error {
	tokens, err := s.resolveTokens(ctx, campaign)
	if err != nil {
		return err
	}

	data := map[string]string{
		"campaign_id": campaign.ID.String(),
		"type":        "ADMIN",
	}
	if campaign.TargetDate != nil {
		data["date"] = *campaign.TargetDate
	}

	outcome := s.sendBatches(ctx, tokens, campaign.Title, campaign.Body, data)

	if err := s.finishDispatch(ctx, campaign, outcome); err != nil {
		return err
	}

	return nil
}

// resolveTokens produces the distinct token set for the campaign audience.
// Both audience kinds honor the per-user notifications-enabled switch.
func (s *campaignService) resolveTokens(ctx context.Context, campaign *entity.Campaign) ([]string, error) {
	var users []*entity.User
	var err error

	switch campaign.TargetType {
	case entity.TargetTypeAll:
		users, err = s.userRepo.FindNotifiableUsers(ctx)
	case entity.TargetTypeTarget:
		users, err = s.userRepo.FindUsersByEmails(ctx, campaign.TargetEmails)
	default:
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown target type")
	}
	if err != nil {
		return nil, errors.Wrap(err, "resolve campaign audience")
	}

	userIDs := make([]uuid.UUID, 0, len(users))
	for _, user := range users {
		if !user.AllowNotifications {
			continue
		}
		userIDs = append(userIDs, user.ID)
	}

	tokens, err := s.deviceRepo.FindTokensForUsers(ctx, userIDs)
	if err != nil {
		return nil, errors.Wrap(err, "resolve campaign tokens")
	}

	return tokens, nil
}

// finishDispatch records the outcome, flips sent, and emits the audit event.
func (s *campaignService) finishDispatch(ctx context.Context, campaign *entity.Campaign, outcome entity.DeliveryOutcome) error {
	if err := s.campaignRepo.MarkDispatched(ctx, campaign.ID, outcome); err != nil {
		return errors.Wrap(err, "record campaign outcome")
	}

	campaign.Sent = true
	campaign.TotalCount = outcome.Total
	campaign.SuccessCount = outcome.Success
	campaign.FailureCount = outcome.Failure

	s.logger.Info("Campaign dispatched",
		slog.String("campaign_id", campaign.ID.String()),
		slog.Int("total", outcome.Total),
		slog.Int("success", outcome.Success),
		slog.Int("failure", outcome.Failure),
	)

	event := &service.CampaignDispatchedEvent{
		CampaignID:   campaign.ID.String(),
		Title:        campaign.Title,
		TargetType:   campaign.TargetType.String(),
		TotalCount:   outcome.Total,
		SuccessCount: outcome.Success,
		FailureCount: outcome.Failure,
		CreatedBy:    campaign.CreatedBy,
	}
	if err := s.eventPublisher.PublishCampaignDispatched(ctx, event); err != nil {
		// Audit events are fire-and-forget; delivery already happened.
		s.logger.Error("Failed to publish campaign event",
			slog.String("campaign_id", campaign.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	return nil
}

// sendBatches fans the token set out to the push provider in bounded
// concurrent batches. A failed batch counts every token in it as failed
// and does not abort the rest. An empty set returns a zero outcome
// without touching the provider.
func (s *campaignService) sendBatches(ctx context.Context, tokens []string, title, body string, data map[string]string) entity.DeliveryOutcome {
	tokens = dedupeTokens(tokens)
	outcome := entity.DeliveryOutcome{Total: len(tokens)}
	if len(tokens) == 0 {
		return outcome
	}

	var (
		mu            sync.Mutex
		wg            sync.WaitGroup
		invalidTokens []string
		sem           = make(chan struct{}, s.notifyCfg.BatchWorkers)
	)

	for start := 0; start < len(tokens); start += s.notifyCfg.BatchSize {
		end := min(start+s.notifyCfg.BatchSize, len(tokens))
		batch := tokens[start:end]

		wg.Add(1)
		sem <- struct{}{}
		go func(batch []string) {
			defer wg.Done()
			defer func() { <-sem }()

			callCtx, cancel := context.WithTimeout(ctx, s.notifyCfg.PushTimeout)
			defer cancel()

			success, failure, batchInvalid, err := s.pushSvc.SendBatchNotification(callCtx, batch, title, body, data)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				outcome.Failure += len(batch)
				s.logger.Error("Push batch failed",
					slog.Int("batch_size", len(batch)),
					slog.String("error", err.Error()),
				)

				return
			}
			outcome.Success += success
			outcome.Failure += failure
			invalidTokens = append(invalidTokens, batchInvalid...)
		}(batch)
	}
	wg.Wait()

	s.pruneInvalidTokens(ctx, invalidTokens)

	return outcome
}

// pruneInvalidTokens drops registrations the provider reported as dead.
func (s *campaignService) pruneInvalidTokens(ctx context.Context, invalidTokens []string) {
	for _, token := range invalidTokens {
		if _, err := s.deviceRepo.DeleteDevicesByToken(ctx, token); err != nil {
			s.logger.Error("Failed to prune invalid token", slog.String("error", err.Error()))
		}
	}
}

// DispatchMealCampaign runs the automatic meal push for one slot.
func (s *campaignService) DispatchMealCampaign(ctx context.Context, slot entity.MealSlot, date string) error {
	raw, err := s.menuSource.FetchMenu(ctx, date, slot)
	if err != nil {
		return errors.Wrapf(err, "fetch %s menu", slot)
	}

	dishes := menu.Normalize(raw)
	if len(dishes) == 0 {
		s.logger.Info("No menu for slot, skipping meal push",
			slog.String("slot", slot.String()),
			slog.String("date", date),
		)

		return nil
	}

	title := slot.PushTitle()
	acquired, err := s.locker.Acquire(ctx, title, entity.TargetTypeAll.String())
	if err != nil {
		return errors.Wrap(err, "acquire dedup lock")
	}
	if !acquired {
		s.logger.Warn("Duplicate meal push suppressed", slog.String("slot", slot.String()))

		return nil
	}

	users, err := s.userRepo.FindNotifiableUsers(ctx)
	if err != nil {
		if releaseErr := s.locker.Release(ctx, title, entity.TargetTypeAll.String()); releaseErr != nil {
			s.logger.Error("Failed to release dedup lock", slog.String("error", releaseErr.Error()))
		}

		return errors.Wrap(err, "resolve meal audience")
	}

	outcome := s.sendMealPushes(ctx, users, dishes, slot, date, title)

	campaign := &entity.Campaign{
		ID:         uuid.New(),
		Title:      title,
		Body:       strings.Join(dishes, ", "),
		TargetType: entity.TargetTypeAll,
		TargetDate: &date,
		Sent:       false,
		CreatedBy:  systemScheduler,
	}
	if err := s.campaignRepo.CreateCampaign(ctx, campaign); err != nil {
		return errors.Wrap(err, "record meal campaign")
	}

	return s.finishDispatch(ctx, campaign, outcome)
}

// sendMealPushes matches each user's preferences against the dishes and
// sends a personalized body to the users with at least one match. Matching
// fans out across a bounded worker pool.
func (s *campaignService) sendMealPushes(ctx context.Context, users []*entity.User, dishes []string, slot entity.MealSlot, date, title string) entity.DeliveryOutcome {
	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		agg entity.DeliveryOutcome
		sem = make(chan struct{}, s.notifyCfg.MatchWorkers)
	)

	data := map[string]string{
		"date": date,
		"type": "MEAL_ALERT",
	}

	for _, user := range users {
		var matchedAllergies, matchedFavorites []string
		if user.WantsAllergyAlerts() {
			matchedAllergies = menu.Match(user.Allergies, dishes)
		}
		if user.WantsFavoriteAlerts() {
			matchedFavorites = menu.Match(user.FavoriteMenus, dishes)
		}
		if len(matchedAllergies) == 0 && len(matchedFavorites) == 0 {
			continue
		}

		body := composeMealBody(matchedAllergies, matchedFavorites)

		wg.Add(1)
		sem <- struct{}{}
		go func(userID uuid.UUID, body string) {
			defer wg.Done()
			defer func() { <-sem }()

			tokens, err := s.deviceRepo.FindTokensForUsers(ctx, []uuid.UUID{userID})
			if err != nil {
				s.logger.Error("Failed to load user tokens",
					slog.String("user_id", userID.String()),
					slog.String("error", err.Error()),
				)

				return
			}
			if len(tokens) == 0 {
				return
			}

			callCtx, cancel := context.WithTimeout(ctx, s.notifyCfg.PushTimeout)
			defer cancel()

			success, failure, invalid, err := s.pushSvc.SendBatchNotification(callCtx, tokens, title, body, data)

			mu.Lock()
			agg.Total += len(tokens)
			if err != nil {
				agg.Failure += len(tokens)
			} else {
				agg.Success += success
				agg.Failure += failure
			}
			mu.Unlock()

			if err != nil {
				s.logger.Error("Meal push failed",
					slog.String("user_id", userID.String()),
					slog.String("error", err.Error()),
				)

				return
			}
			s.pruneInvalidTokens(ctx, invalid)
		}(user.ID, body)
	}
	wg.Wait()

	return agg
}

// GetCampaignHistory retrieves the newest campaigns first, at most limit.
func (s *campaignService) GetCampaignHistory(ctx context.Context, limit int) ([]*entity.Campaign, error) {
	return s.campaignRepo.FindRecentCampaigns(ctx, limit)
}

// GetTotalSent returns the all-time number of recorded campaigns.
func (s *campaignService) GetTotalSent(ctx context.Context) (int64, error) {
	return s.campaignRepo.CountCampaigns(ctx)
}

// GetCampaignStats combines recent history with the all-time count.
func (s *campaignService) GetCampaignStats(ctx context.Context) (*usecase.CampaignStats, error) {
	recent, err := s.campaignRepo.FindRecentCampaigns(ctx, recentStatsLimit)
	if err != nil {
		return nil, err
	}

	total, err := s.campaignRepo.CountCampaigns(ctx)
	if err != nil {
		return nil, err
	}

	return &usecase.CampaignStats{
		RecentLogs:     recent,
		TotalSentCount: total,
	}, nil
}

// --- Helpers ---

// validateCampaignRequest rejects malformed submissions before persistence.
func validateCampaignRequest(req *usecase.CampaignRequest) error {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("title is required")
	}
	if !req.TargetType.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown target type")
	}
	if req.TargetType == entity.TargetTypeTarget && len(req.TargetEmails) == 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("target emails are required for TARGET campaigns")
	}

	// Menu-less bodies are rejected outright so the admin sees the
	// problem instead of a silently skipped send. Test pushes are exempt.
	if !strings.Contains(title, testTitleMarker) && isMenuEmptyBody(req.Body) {
		return domainerrors.ErrEmptyCampaignBody
	}

	return nil
}

// isMenuEmptyBody reports whether the body carries no real menu content
// once whitespace and punctuation are stripped.
func isMenuEmptyBody(body string) bool {
	clean := bodyFiller.ReplaceAllString(body, "")
	if clean == "" {
		return true
	}

	return strings.Contains(clean, "급식이없습니다") || strings.Contains(clean, "정보가없습니다")
}

// composeMealBody builds the personalized push body from matched terms.
func composeMealBody(matchedAllergies, matchedFavorites []string) string {
	var b strings.Builder
	if len(matchedAllergies) > 0 {
		b.WriteString("⚠️ 못 드시는 [")
		b.WriteString(strings.Join(matchedAllergies, ", "))
		b.WriteString("] 성분이 포함되어 있어요.\n")
	}
	if len(matchedFavorites) > 0 {
		b.WriteString("⭐ 좋아하는 [")
		b.WriteString(strings.Join(matchedFavorites, ", "))
		b.WriteString("] 메뉴가 오늘 나와요!\n")
	}

	return strings.TrimSpace(b.String())
}

// dedupeTokens drops duplicate and blank tokens while keeping order.
func dedupeTokens(tokens []string) []string {
	if len(tokens) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(tokens))
	deduped := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if token == "" {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		deduped = append(deduped, token)
	}

	return deduped
}
