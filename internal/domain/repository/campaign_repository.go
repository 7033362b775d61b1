// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"mealbell/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for campaign persistence.
var (
	// ErrCampaignNotFound is returned when a campaign is not found.
	ErrCampaignNotFound = errors.New("campaign not found")
)

// CampaignRepository defines the interface for campaign database operations.
type CampaignRepository interface {
	// CreateCampaign persists a new campaign row.
	CreateCampaign(ctx context.Context, campaign *entity.Campaign) error

	// FindCampaignByID retrieves a campaign by its unique ID.
	FindCampaignByID(ctx context.Context, id uuid.UUID) (*entity.Campaign, error)

	// FindDueCampaigns retrieves unsent campaigns whose scheduled time is at
	// or before the given instant.
	FindDueCampaigns(ctx context.Context, now time.Time) ([]*entity.Campaign, error)

	// MarkDispatched flips the campaign to sent and records its outcome
	// counts. The write happens once per campaign.
	MarkDispatched(ctx context.Context, id uuid.UUID, outcome entity.DeliveryOutcome) error

	// FindRecentCampaigns retrieves the newest campaigns first, at most limit.
	FindRecentCampaigns(ctx context.Context, limit int) ([]*entity.Campaign, error)

	// CountCampaigns returns the all-time number of campaign rows.
	CountCampaigns(ctx context.Context) (int64, error)
}
