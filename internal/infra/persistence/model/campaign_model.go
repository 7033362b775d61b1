package model

import (
	"time"

	"github.com/google/uuid"
)

// CampaignModel is the GORM-specific struct for the 'campaigns' table.
// Target emails are stored comma-joined, matching the legacy schema.
// The (sent, scheduled_at) index backs the minute poll for due campaigns.
type CampaignModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title        string     `gorm:"type:varchar(255);not null"`
	Body         string     `gorm:"type:text;not null"`
	TargetType   string     `gorm:"type:varchar(10);not null"`
	TargetEmails string     `gorm:"type:text"`
	TargetDate   *string    `gorm:"type:varchar(10)"`
	ScheduledAt  *time.Time `gorm:"index:idx_campaign_due,priority:2"`
	Sent         bool       `gorm:"not null;default:false;index:idx_campaign_due,priority:1"`
	TotalCount   int        `gorm:"not null;default:0"`
	SuccessCount int        `gorm:"not null;default:0"`
	FailureCount int        `gorm:"not null;default:0"`
	CreatedBy    string     `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time  `gorm:"index"`
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (CampaignModel) TableName() string {
	return "campaigns"
}
