package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelForXP(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{50, 1},
		{99, 1},
		{100, 2},
		{399, 2},
		{400, 3},
		{899, 3},
		{900, 4},
		{10000, 11},
		{-5, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelForXP(tt.xp), "xp=%d", tt.xp)
	}
}

func TestLevelForXPNeverDecreases(t *testing.T) {
	prev := LevelForXP(0)
	for xp := 1; xp <= 5000; xp++ {
		level := LevelForXP(xp)
		if level < prev {
			t.Fatalf("level dropped from %d to %d at xp=%d", prev, level, xp)
		}
		prev = level
	}
}

func TestXPThresholdForLevel(t *testing.T) {
	assert.Equal(t, 0, XPThresholdForLevel(0))
	assert.Equal(t, 100, XPThresholdForLevel(1))
	assert.Equal(t, 400, XPThresholdForLevel(2))
	assert.Equal(t, 900, XPThresholdForLevel(3))
	assert.Equal(t, 0, XPThresholdForLevel(-1))
}

func TestLevelProgress(t *testing.T) {
	// Level 1 spans 0-99.
	assert.Equal(t, 0, LevelProgress(0))
	assert.Equal(t, 50, LevelProgress(50))
	assert.Equal(t, 99, LevelProgress(99))

	// Level 2 spans 100-399.
	assert.Equal(t, 0, LevelProgress(100))
	assert.Equal(t, 50, LevelProgress(250))
}
