// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// TargetType selects the audience of a campaign.
type TargetType string

const (
	// TargetTypeAll addresses every user with notifications enabled.
	TargetTypeAll TargetType = "ALL"
	// TargetTypeTarget addresses an explicit list of user emails.
	TargetTypeTarget TargetType = "TARGET"
)

// String returns the string representation of the TargetType.
func (t TargetType) String() string {
	return string(t)
}

// IsValid checks if the TargetType is a valid value.
func (t TargetType) IsValid() bool {
	switch t {
	case TargetTypeAll, TargetTypeTarget:
		return true
	default:
		return false
	}
}

// Campaign represents one push notification run, manual or meal-triggered.
// A reserved campaign persists with Sent=false until its scheduled time
// passes; Sent flips to true exactly once, together with the outcome counts.
type Campaign struct {
	ID           uuid.UUID  `json:"id"`            // The Global Unique Identifier (GUID) for the campaign.
	Title        string     `json:"title"`         // Push title shown on the device.
	Body         string     `json:"body"`          // Push body. Never empty once validated.
	TargetType   TargetType `json:"target_type"`   // Audience selector (ALL, TARGET).
	TargetEmails []string   `json:"target_emails"` // Explicit recipient emails when TargetType is TARGET.
	TargetDate   *string    `json:"target_date"`   // Optional menu date (yyyyMMdd) a meal campaign refers to.
	ScheduledAt  *time.Time `json:"scheduled_at"`  // Optional future dispatch time for reserved campaigns.
	Sent         bool       `json:"sent"`          // Whether dispatch has completed for this campaign.
	TotalCount   int        `json:"total_count"`   // Tokens targeted at dispatch time.
	SuccessCount int        `json:"success_count"` // Tokens accepted by the push provider.
	FailureCount int        `json:"failure_count"` // Tokens rejected or failed in whole-batch errors.
	CreatedBy    string     `json:"created_by"`    // Email of the admin or system actor that created the campaign.
	CreatedAt    time.Time  `json:"created_at"`    // Timestamp of when this record was created.
	UpdatedAt    time.Time  `json:"updated_at"`    // Timestamp of the last modification.
}

// IsDue reports whether a reserved campaign should dispatch at the given time.
func (c *Campaign) IsDue(now time.Time) bool {
	if c.Sent {
		return false
	}
	if c.ScheduledAt == nil {
		return true
	}

	return !c.ScheduledAt.After(now)
}

// DeliveryOutcome aggregates the result of one campaign dispatch.
// Success+Failure never exceeds Total; the difference is tokens dropped
// before any provider call (for example after dedup).
type DeliveryOutcome struct {
	Total   int `json:"total"`
	Success int `json:"success"`
	Failure int `json:"failure"`
}
