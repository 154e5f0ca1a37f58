package service

import (
	"testing"

	"levelup_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func badge(id uint, criteria model.BadgeCriteria, value int) model.Badge {
	b := model.Badge{CriteriaType: criteria, CriteriaValue: value}
	b.ID = id
	return b
}

func TestEligibleBadges(t *testing.T) {
	catalog := []model.Badge{
		badge(1, model.CriteriaXP, 100),
		badge(2, model.CriteriaXP, 1000),
		badge(3, model.CriteriaQuizzes, 5),
		badge(4, model.CriteriaTopics, 3),
		badge(5, model.CriteriaStreak, 7),
	}

	stats := BadgeStats{XP: 150, Streak: 7, QuizAttempts: 4, TopicsCompleted: 3}

	eligible := eligibleBadges(stats, catalog, map[uint]bool{})

	var ids []uint
	for _, b := range eligible {
		ids = append(ids, b.ID)
	}
	// XP 150 >= 100, topics 3 >= 3, streak 7 >= 7; quizzes 4 < 5 and
	// XP 150 < 1000 miss.
	assert.Equal(t, []uint{1, 4, 5}, ids)
}

func TestEligibleBadgesThresholdIsInclusive(t *testing.T) {
	catalog := []model.Badge{badge(1, model.CriteriaXP, 500)}

	assert.Empty(t, eligibleBadges(BadgeStats{XP: 499}, catalog, nil))
	assert.Len(t, eligibleBadges(BadgeStats{XP: 500}, catalog, nil), 1)
}

func TestEligibleBadgesSkipsEarned(t *testing.T) {
	catalog := []model.Badge{
		badge(1, model.CriteriaXP, 100),
		badge(2, model.CriteriaStreak, 3),
	}
	earned := map[uint]bool{1: true}

	eligible := eligibleBadges(BadgeStats{XP: 100, Streak: 3}, catalog, earned)
	assert.Len(t, eligible, 1)
	assert.Equal(t, uint(2), eligible[0].ID)
}

func TestEligibleBadgesIgnoresUnknownCriteria(t *testing.T) {
	catalog := []model.Badge{
		badge(1, "logins", 10),
		badge(2, model.CriteriaXP, 50),
	}

	eligible := eligibleBadges(BadgeStats{XP: 100}, catalog, nil)
	assert.Len(t, eligible, 1)
	assert.Equal(t, uint(2), eligible[0].ID)
}
