package redis

import (
	"context"
	"strings"
	"time"
	"unicode"

	"mealbell/internal/domain/service"

	"github.com/pkg/errors"
)

const lockKeyPrefix = "notif_lock:"

type lockService struct {
	client *Client
	ttl    time.Duration
}

// NewLockService creates the campaign dedup gate backed by Redis SET NX.
// A key held for the TTL window collapses duplicate triggers of the same
// campaign, including overlapping scheduler runs.
func NewLockService(client *Client, ttl time.Duration) service.CampaignLocker {
	return &lockService{
		client: client,
		ttl:    ttl,
	}
}

// Acquire takes the lock for (title, targetType). The set is atomic, so
// exactly one of concurrent identical triggers wins.
func (s *lockService) Acquire(ctx context.Context, title, targetType string) (bool, error) {
	acquired, err := s.client.SetNX(ctx, lockKey(title, targetType), "LOCKED", s.ttl).Result()
	if err != nil {
		return false, errors.Wrap(err, "acquire campaign lock")
	}

	return acquired, nil
}

// Release drops the lock before the TTL expires. Callers release only on
// dispatch failure; a successful dispatch keeps the key until it lapses.
func (s *lockService) Release(ctx context.Context, title, targetType string) error {
	if err := s.client.Del(ctx, lockKey(title, targetType)).Err(); err != nil {
		return errors.Wrap(err, "release campaign lock")
	}

	return nil
}

// lockKey derives the dedup key from the campaign identity. Stripping
// non-alphanumeric runes keeps retyped titles with stray punctuation or
// spacing on the same key.
func lockKey(title, targetType string) string {
	var stripped strings.Builder
	stripped.Grow(len(title))
	for _, r := range title {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			stripped.WriteRune(r)
		}
	}

	return lockKeyPrefix + targetType + ":" + stripped.String()
}
