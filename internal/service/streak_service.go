package service

import (
	"levelup_backend/internal/repository"
	"time"
)

// StreakService owns the daily-streak state machine. Days compare at
// calendar granularity in UTC.
type StreakService struct {
	UserRepo *repository.UserRepository
}

func NewStreakService(userRepo *repository.UserRepository) *StreakService {
	return &StreakService{UserRepo: userRepo}
}

type StreakResult struct {
	Streak         int  `json:"streak"`
	PreviousStreak int  `json:"previousStreak"`
	StreakChanged  bool `json:"streakChanged"`
}

func utcDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// nextStreak computes the streak after one qualifying activity at now.
// Same-day repeats are idempotent; a one-day gap increments; anything
// longer resets to 1.
func nextStreak(lastActive *time.Time, current int, now time.Time) int {
	if lastActive == nil {
		return 1
	}

	days := int(utcDay(now).Sub(utcDay(*lastActive)).Hours() / 24)
	switch {
	case days <= 0:
		if current < 1 {
			return 1
		}
		return current
	case days == 1:
		return current + 1
	default:
		return 1
	}
}

// Touch evaluates the streak for one qualifying user action and always
// moves last_active to now, whichever branch was taken.
func (s *StreakService) Touch(userID uint) (*StreakResult, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	streak := nextStreak(user.LastActive, user.Streak, now)

	if err := s.UserRepo.UpdateStreak(userID, streak, now); err != nil {
		return nil, err
	}

	return &StreakResult{
		Streak:         streak,
		PreviousStreak: user.Streak,
		StreakChanged:  streak != user.Streak,
	}, nil
}
