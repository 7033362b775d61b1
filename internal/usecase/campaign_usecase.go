package usecase

import (
	"context"
	"time"

	"mealbell/internal/domain/entity"
)

// CampaignRequest represents an admin push submission
type CampaignRequest struct {
	Title        string            `json:"title"`
	Body         string            `json:"body"`
	TargetType   entity.TargetType `json:"target_type"`
	TargetEmails []string          `json:"target_emails"`
	TargetDate   *string           `json:"target_date"`
	ScheduledAt  *time.Time        `json:"scheduled_at"`
	CreatedBy    string            `json:"created_by"`
}

// CampaignStats is the admin reporting view: newest campaigns plus the
// all-time campaign count.
type CampaignStats struct {
	RecentLogs     []*entity.Campaign `json:"recent_logs"`
	TotalSentCount int64              `json:"total_sent_count"`
}

// CampaignUsecase defines the interface for campaign management use cases
type CampaignUsecase interface {
	// SubmitCampaign validates and records an admin campaign. A future
	// scheduled time reserves it for the minute poll; otherwise it
	// dispatches immediately.
	SubmitCampaign(ctx context.Context, req *CampaignRequest) (*entity.Campaign, error)

	// DispatchDueCampaigns dispatches every reserved campaign whose
	// scheduled time has passed. Failures are isolated per campaign.
	DispatchDueCampaigns(ctx context.Context, now time.Time) error

	// DispatchMealCampaign runs the automatic meal push for one slot:
	// fetch the menu, match per-user preferences, fan out, record history.
	// A day without that meal is a quiet no-op.
	DispatchMealCampaign(ctx context.Context, slot entity.MealSlot, date string) error

	// GetCampaignHistory retrieves the newest campaigns first, at most limit.
	GetCampaignHistory(ctx context.Context, limit int) ([]*entity.Campaign, error)

	// GetTotalSent returns the all-time number of recorded campaigns.
	GetTotalSent(ctx context.Context) (int64, error)

	// GetCampaignStats combines recent history with the all-time count.
	GetCampaignStats(ctx context.Context) (*CampaignStats, error)
}
