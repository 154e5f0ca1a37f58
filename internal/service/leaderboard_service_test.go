package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestXPColumn(t *testing.T) {
	col, err := xpColumn(LeaderboardGlobal)
	assert.NoError(t, err)
	assert.Equal(t, "xp", col)

	col, err = xpColumn(LeaderboardWeekly)
	assert.NoError(t, err)
	assert.Equal(t, "weekly_xp", col)

	_, err = xpColumn("monthly")
	assert.ErrorIs(t, err, ErrInvalidLeaderboardType)
}

func TestApplyRankChanges(t *testing.T) {
	entries := []LeaderboardEntry{
		{Rank: 1, UserID: 10},
		{Rank: 2, UserID: 20},
		{Rank: 3, UserID: 30},
		{Rank: 4, UserID: 40},
	}
	previous := map[uint]int{
		10: 3, // climbed two
		20: 2, // held
		30: 1, // dropped two
		// 40 absent from the snapshot
	}

	applyRankChanges(entries, previous)

	assert.Equal(t, 2, entries[0].RankChange)
	assert.Equal(t, 0, entries[1].RankChange)
	assert.Equal(t, -2, entries[2].RankChange)
	assert.Equal(t, 0, entries[3].RankChange)
}

func TestApplyRankChangesEmptySnapshot(t *testing.T) {
	entries := []LeaderboardEntry{{Rank: 1, UserID: 10}}
	applyRankChanges(entries, map[uint]int{})
	assert.Equal(t, 0, entries[0].RankChange)
}
