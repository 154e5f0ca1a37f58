package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextStreak(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	daysAgo := func(n int) *time.Time {
		ts := now.AddDate(0, 0, -n)
		return &ts
	}

	tests := []struct {
		name       string
		lastActive *time.Time
		current    int
		want       int
	}{
		{"first ever activity", nil, 0, 1},
		{"same day repeat keeps streak", daysAgo(0), 4, 4},
		{"same day with zero streak floors to one", daysAgo(0), 0, 1},
		{"consecutive day increments", daysAgo(1), 4, 5},
		{"two day gap resets", daysAgo(2), 9, 1},
		{"long gap resets", daysAgo(30), 100, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nextStreak(tt.lastActive, tt.current, now))
		})
	}
}

func TestNextStreakUsesUTCDayBoundaries(t *testing.T) {
	// 23:50 and 00:10 the next day are one calendar day apart even
	// though the wall-clock gap is twenty minutes.
	last := time.Date(2025, 6, 14, 23, 50, 0, 0, time.UTC)
	now := time.Date(2025, 6, 15, 0, 10, 0, 0, time.UTC)
	assert.Equal(t, 3, nextStreak(&last, 2, now))

	// Local-time zones must not shift the day: 01:00 UTC+3 on the 15th
	// is still the 14th in UTC.
	lastLocal := time.Date(2025, 6, 15, 1, 0, 0, 0, time.FixedZone("UTC+3", 3*3600))
	sameUTCDay := time.Date(2025, 6, 14, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, 2, nextStreak(&lastLocal, 2, sameUTCDay))
}
