package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLockKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		title      string
		targetType string
		want       string
	}{
		{
			name:       "strips whitespace and punctuation",
			title:      "🍱 중식 급식 체크!",
			targetType: "ALL",
			want:       "notif_lock:ALL:중식급식체크",
		},
		{
			name:       "retyped title collapses to same key",
			title:      "점심  알림",
			targetType: "TARGET",
			want:       "notif_lock:TARGET:점심알림",
		},
		{
			name:       "keeps digits",
			title:      "공지 2026",
			targetType: "ALL",
			want:       "notif_lock:ALL:공지2026",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, lockKey(tt.title, tt.targetType))
		})
	}
}

func TestLockKeyIdentityMatters(t *testing.T) {
	t.Parallel()

	// Same title with a different audience must not collide.
	assert.NotEqual(t, lockKey("중식 알림", "ALL"), lockKey("중식 알림", "TARGET"))
}
