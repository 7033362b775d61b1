package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name       string
		value      string
		wantHour   int
		wantMinute int
		wantErr    bool
	}{
		{name: "morning", value: "07:30", wantHour: 7, wantMinute: 30},
		{name: "lunch", value: "12:20", wantHour: 12, wantMinute: 20},
		{name: "midnight", value: "00:00", wantHour: 0, wantMinute: 0},
		{name: "late evening", value: "23:59", wantHour: 23, wantMinute: 59},
		{name: "missing minutes", value: "12", wantErr: true},
		{name: "out of range", value: "25:00", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hour, minute, err := parseClock(tt.value)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHour, hour)
			assert.Equal(t, tt.wantMinute, minute)
		})
	}
}

func TestNextRun(t *testing.T) {
	seoul, err := time.LoadLocation("Asia/Seoul")
	require.NoError(t, err)

	t.Run("later today", func(t *testing.T) {
		now := time.Date(2026, 3, 2, 6, 0, 0, 0, seoul)

		next := nextRun(now, 7, 30)

		assert.Equal(t, time.Date(2026, 3, 2, 7, 30, 0, 0, seoul), next)
	})

	t.Run("already passed rolls to tomorrow", func(t *testing.T) {
		now := time.Date(2026, 3, 2, 13, 0, 0, 0, seoul)

		next := nextRun(now, 12, 20)

		assert.Equal(t, time.Date(2026, 3, 3, 12, 20, 0, 0, seoul), next)
	})

	t.Run("exact clock time rolls to tomorrow", func(t *testing.T) {
		now := time.Date(2026, 3, 2, 18, 0, 0, 0, seoul)

		next := nextRun(now, 18, 0)

		assert.Equal(t, time.Date(2026, 3, 3, 18, 0, 0, 0, seoul), next)
	})

	t.Run("month boundary", func(t *testing.T) {
		now := time.Date(2026, 2, 28, 20, 0, 0, 0, seoul)

		next := nextRun(now, 7, 30)

		assert.Equal(t, time.Date(2026, 3, 1, 7, 30, 0, 0, seoul), next)
	})
}
