// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"mealbell/internal/domain/entity"
	domainerrors "mealbell/internal/domain/errors"
	"mealbell/internal/domain/repository"
	"mealbell/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// campaignRepository implements the repository.CampaignRepository interface.
type campaignRepository struct {
	db *gorm.DB
}

// NewCampaignRepository is the constructor for campaignRepository.
func NewCampaignRepository(db *gorm.DB) repository.CampaignRepository {
	return &campaignRepository{
		db: db,
	}
}

// CreateCampaign persists a new campaign row.
func (repo *campaignRepository) CreateCampaign(ctx context.Context, campaign *entity.Campaign) error {
	campaignM := fromCampaignDomain(campaign)

	if err := repo.db.WithContext(ctx).Create(campaignM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required campaign information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create campaign")
	}

	// Update the entity with generated values
	campaign.ID = campaignM.ID
	campaign.CreatedAt = campaignM.CreatedAt
	campaign.UpdatedAt = campaignM.UpdatedAt

	return nil
}

// FindCampaignByID retrieves a campaign by its unique ID.
func (repo *campaignRepository) FindCampaignByID(ctx context.Context, id uuid.UUID) (*entity.Campaign, error) {
	var campaignM model.CampaignModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&campaignM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCampaignNotFound
		}

		return nil, errors.Wrap(err, "failed to find campaign by ID")
	}

	return toCampaignDomain(&campaignM), nil
}

// FindDueCampaigns retrieves unsent campaigns whose scheduled time has passed.
func (repo *campaignRepository) FindDueCampaigns(ctx context.Context, now time.Time) ([]*entity.Campaign, error) {
	var campaignModels []*model.CampaignModel

	if err := repo.db.WithContext(ctx).
		Where("sent = ? AND scheduled_at IS NOT NULL AND scheduled_at <= ?", false, now).
		Order("scheduled_at ASC").
		Find(&campaignModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find due campaigns")
	}

	campaigns := make([]*entity.Campaign, 0, len(campaignModels))
	for _, campaignM := range campaignModels {
		campaigns = append(campaigns, toCampaignDomain(campaignM))
	}

	return campaigns, nil
}

// MarkDispatched flips the campaign to sent and records its outcome counts.
// The sent guard keeps the write once-only even under concurrent pollers.
func (repo *campaignRepository) MarkDispatched(ctx context.Context, id uuid.UUID, outcome entity.DeliveryOutcome) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CampaignModel{}).
		Where("id = ? AND sent = ?", id, false).
		Updates(map[string]interface{}{
			"sent":          true,
			"total_count":   outcome.Total,
			"success_count": outcome.Success,
			"failure_count": outcome.Failure,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark campaign dispatched")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCampaignNotFound
	}

	return nil
}

// FindRecentCampaigns retrieves the newest campaigns first, at most limit.
func (repo *campaignRepository) FindRecentCampaigns(ctx context.Context, limit int) ([]*entity.Campaign, error) {
	var campaignModels []*model.CampaignModel

	query := repo.db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&campaignModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recent campaigns")
	}

	campaigns := make([]*entity.Campaign, 0, len(campaignModels))
	for _, campaignM := range campaignModels {
		campaigns = append(campaigns, toCampaignDomain(campaignM))
	}

	return campaigns, nil
}

// CountCampaigns returns the all-time number of campaign rows.
func (repo *campaignRepository) CountCampaigns(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.CampaignModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count campaigns")
	}

	return count, nil
}

// --- Mapper Functions ---

// toCampaignDomain converts a GORM CampaignModel to a domain Campaign entity.
func toCampaignDomain(data *model.CampaignModel) *entity.Campaign {
	if data == nil {
		return nil
	}

	return &entity.Campaign{
		ID:           data.ID,
		Title:        data.Title,
		Body:         data.Body,
		TargetType:   entity.TargetType(data.TargetType),
		TargetEmails: splitList(data.TargetEmails),
		TargetDate:   data.TargetDate,
		ScheduledAt:  data.ScheduledAt,
		Sent:         data.Sent,
		TotalCount:   data.TotalCount,
		SuccessCount: data.SuccessCount,
		FailureCount: data.FailureCount,
		CreatedBy:    data.CreatedBy,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromCampaignDomain converts a domain Campaign entity to a GORM CampaignModel.
func fromCampaignDomain(data *entity.Campaign) *model.CampaignModel {
	if data == nil {
		return nil
	}

	return &model.CampaignModel{
		ID:           data.ID,
		Title:        data.Title,
		Body:         data.Body,
		TargetType:   data.TargetType.String(),
		TargetEmails: joinList(data.TargetEmails),
		TargetDate:   data.TargetDate,
		ScheduledAt:  data.ScheduledAt,
		Sent:         data.Sent,
		TotalCount:   data.TotalCount,
		SuccessCount: data.SuccessCount,
		FailureCount: data.FailureCount,
		CreatedBy:    data.CreatedBy,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
