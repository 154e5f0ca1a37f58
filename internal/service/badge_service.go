package service

import (
	"fmt"
	"levelup_backend/internal/model"
	"levelup_backend/internal/repository"
	"levelup_backend/pkg/logger"
	"levelup_backend/pkg/monitoring"

	"go.uber.org/zap"
)

type BadgeService struct {
	BadgeRepo    *repository.BadgeRepository
	UserRepo     *repository.UserRepository
	QuizRepo     *repository.QuizRepository
	TopicRepo    *repository.TopicRepository
	ActivityRepo *repository.ActivityRepository
}

func NewBadgeService(
	badgeRepo *repository.BadgeRepository,
	userRepo *repository.UserRepository,
	quizRepo *repository.QuizRepository,
	topicRepo *repository.TopicRepository,
	activityRepo *repository.ActivityRepository,
) *BadgeService {
	return &BadgeService{
		BadgeRepo:    badgeRepo,
		UserRepo:     userRepo,
		QuizRepo:     quizRepo,
		TopicRepo:    topicRepo,
		ActivityRepo: activityRepo,
	}
}

// BadgeStats is the snapshot of user counters a badge check runs against.
type BadgeStats struct {
	XP              int
	Streak          int
	QuizAttempts    int64
	TopicsCompleted int64
}

// eligibleBadges scans the catalog against the stats. Thresholds are
// inclusive. Criteria kinds the evaluator does not know (some seed rows
// carry quiz_perfect or uploads) are skipped, not failed.
func eligibleBadges(stats BadgeStats, catalog []model.Badge, earned map[uint]bool) []model.Badge {
	var eligible []model.Badge
	for _, badge := range catalog {
		if earned[badge.ID] {
			continue
		}
		qualifies := false
		switch badge.CriteriaType {
		case model.CriteriaXP:
			qualifies = stats.XP >= badge.CriteriaValue
		case model.CriteriaQuizzes:
			qualifies = stats.QuizAttempts >= int64(badge.CriteriaValue)
		case model.CriteriaTopics:
			qualifies = stats.TopicsCompleted >= int64(badge.CriteriaValue)
		case model.CriteriaStreak:
			qualifies = stats.Streak >= badge.CriteriaValue
		default:
			continue
		}
		if qualifies {
			eligible = append(eligible, badge)
		}
	}
	return eligible
}

// CheckBadges evaluates every unearned badge for the user and awards the
// ones whose criteria are met. Returns only newly awarded badges; a badge
// lost to a concurrent evaluation's insert is not reported by either.
func (s *BadgeService) CheckBadges(userID uint) ([]model.Badge, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	quizAttempts, err := s.QuizRepo.CountAttemptsByUser(userID)
	if err != nil {
		return nil, err
	}
	topicsCompleted, err := s.TopicRepo.CountCompletedByUser(userID)
	if err != nil {
		return nil, err
	}

	catalog, err := s.BadgeRepo.FindAll()
	if err != nil {
		return nil, err
	}
	earnedIDs, err := s.BadgeRepo.FindEarnedIDs(userID)
	if err != nil {
		return nil, err
	}
	earned := make(map[uint]bool, len(earnedIDs))
	for _, id := range earnedIDs {
		earned[id] = true
	}

	for _, badge := range catalog {
		switch badge.CriteriaType {
		case model.CriteriaXP, model.CriteriaQuizzes, model.CriteriaTopics, model.CriteriaStreak:
		default:
			if !earned[badge.ID] {
				logger.Log.Warn("badge has unevaluated criteria type, skipping",
					zap.Uint("badgeId", badge.ID),
					zap.String("criteriaType", string(badge.CriteriaType)))
			}
		}
	}

	stats := BadgeStats{
		XP:              user.XP,
		Streak:          user.Streak,
		QuizAttempts:    quizAttempts,
		TopicsCompleted: topicsCompleted,
	}

	newBadges := make([]model.Badge, 0)
	for _, badge := range eligibleBadges(stats, catalog, earned) {
		awarded, err := s.BadgeRepo.Award(userID, badge.ID)
		if err != nil {
			logger.Log.Error("failed to award badge",
				zap.Uint("userId", userID),
				zap.Uint("badgeId", badge.ID),
				zap.Error(err))
			continue
		}
		if !awarded {
			continue
		}

		newBadges = append(newBadges, badge)
		monitoring.BadgesAwarded.Inc()

		if err := s.ActivityRepo.Create(&model.Activity{
			UserID: userID,
			Type:   model.ActivityBadgeEarned,
			Detail: fmt.Sprintf("Earned badge %q", badge.Name),
		}); err != nil {
			logger.Log.Error("failed to log badge activity", zap.Error(err))
		}
	}

	return newBadges, nil
}

func (s *BadgeService) GetCatalog() ([]model.Badge, error) {
	return s.BadgeRepo.FindAll()
}

func (s *BadgeService) GetUserBadges(userID uint) ([]model.Badge, error) {
	return s.BadgeRepo.FindEarnedByUser(userID)
}
