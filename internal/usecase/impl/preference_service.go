package impl

import (
	"context"
	"log/slog"
	"strings"

	"mealbell/internal/domain/entity"
	domainerrors "mealbell/internal/domain/errors"
	"mealbell/internal/domain/repository"
	"mealbell/internal/domain/service"
	"mealbell/internal/errors"
	"mealbell/internal/usecase"
)

type preferenceService struct {
	userRepo repository.UserRepository
	mailer   service.Mailer
	logger   *slog.Logger
}

// NewPreferenceService creates a new preference service instance
func NewPreferenceService(
	userRepo repository.UserRepository,
	mailer service.Mailer,
	logger *slog.Logger,
) usecase.PreferenceUsecase {
	return &preferenceService{
		userRepo: userRepo,
		mailer:   mailer,
		logger:   logger,
	}
}

// GetPreferences retrieves the user's current alert settings.
func (s *preferenceService) GetPreferences(ctx context.Context, email string) (*entity.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, err
	}

	return user, nil
}

// UpdatePreferences replaces the user's preference lists and flags.
func (s *preferenceService) UpdatePreferences(ctx context.Context, email string, update *usecase.PreferencesUpdate) (*entity.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, err
	}

	wasEnabled := user.AllowNotifications

	user.Allergies = cleanTerms(update.Allergies)
	user.FavoriteMenus = cleanTerms(update.FavoriteMenus)
	user.AllowNotifications = update.AllowNotifications
	user.AllowAllergyAlerts = update.AllowAllergyAlerts
	user.AllowFavoriteAlerts = update.AllowFavoriteAlerts

	if err := s.userRepo.UpdatePreferences(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("Preferences updated",
		slog.String("user_id", user.ID.String()),
		slog.Bool("allow_notifications", user.AllowNotifications),
		slog.Int("allergies", len(user.Allergies)),
		slog.Int("favorites", len(user.FavoriteMenus)),
	)

	// Mail is fire-and-forget; the settings change already stuck.
	if wasEnabled != user.AllowNotifications {
		subject := "급식 알림이 켜졌습니다"
		if !user.AllowNotifications {
			subject = "급식 알림이 꺼졌습니다"
		}
		if err := s.mailer.SendAccountNotice(ctx, user.Email, subject, "알림 설정이 변경되었습니다."); err != nil {
			s.logger.Error("Failed to send account notice", slog.String("error", err.Error()))
		}
	}

	return user, nil
}

// cleanTerms trims entries and drops blanks, keeping order.
func cleanTerms(terms []string) []string {
	cleaned := make([]string, 0, len(terms))
	for _, term := range terms {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		cleaned = append(cleaned, term)
	}

	return cleaned
}
