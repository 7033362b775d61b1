package service

import (
	"context"
)

// CampaignLocker defines the interface for the campaign dedup gate.
// Acquire is atomic across processes; a held key means a logically
// identical campaign is already dispatching.
type CampaignLocker interface {
	// Acquire attempts to take the dedup lock for a campaign identified by
	// title and target type. Returns false when another dispatch holds it.
	Acquire(ctx context.Context, title, targetType string) (bool, error)

	// Release drops the lock early. Used only when dispatch fails so the
	// campaign can be retried before the TTL expires.
	Release(ctx context.Context, title, targetType string) error
}
