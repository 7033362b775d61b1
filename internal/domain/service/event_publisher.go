package service

import (
	"context"
)

// CampaignDispatchedEvent is published after a campaign's outcome is recorded
type CampaignDispatchedEvent struct {
	RequestID    string `json:"request_id,omitempty"` // For distributed tracing
	CampaignID   string `json:"campaign_id"`
	Title        string `json:"title"`
	TargetType   string `json:"target_type"`
	TotalCount   int    `json:"total_count"`
	SuccessCount int    `json:"success_count"`
	FailureCount int    `json:"failure_count"`
	CreatedBy    string `json:"created_by"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCampaignDispatched publishes a campaign outcome event for async consumers
	PublishCampaignDispatched(ctx context.Context, event *CampaignDispatchedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
