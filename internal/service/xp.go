package service

import (
	"fmt"
	"levelup_backend/internal/model"
	"levelup_backend/internal/repository"
	"levelup_backend/pkg/logger"
	"levelup_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// grantXP increments the XP counters; the level is recomputed inside the
// same UPDATE so it never drifts from the total, even when concurrent
// awards interleave. The row is re-read afterwards for the caller.
func grantXP(userRepo *repository.UserRepository, activityRepo *repository.ActivityRepository, userID uint, xp int, source string) (*model.User, bool, error) {
	if err := userRepo.AddXP(userID, xp); err != nil {
		return nil, false, err
	}
	monitoring.XPAwarded.WithLabelValues(source).Add(float64(xp))

	user, err := userRepo.FindByID(userID)
	if err != nil {
		return nil, false, err
	}

	leveledUp := LevelForXP(user.XP-xp) < LevelForXP(user.XP)
	if leveledUp {
		if err := activityRepo.Create(&model.Activity{
			UserID: userID,
			Type:   model.ActivityLevelUp,
			Detail: fmt.Sprintf("Reached level %d", user.Level),
		}); err != nil {
			logger.Log.Error("failed to log level-up activity", zap.Error(err))
		}
	}

	return user, leveledUp, nil
}
