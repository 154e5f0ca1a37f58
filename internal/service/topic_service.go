package service

import (
	"errors"
	"fmt"
	"levelup_backend/internal/model"
	"levelup_backend/internal/repository"
	"levelup_backend/internal/util"
	"levelup_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type TopicService struct {
	TopicRepo    *repository.TopicRepository
	UserRepo     *repository.UserRepository
	ActivityRepo *repository.ActivityRepository
}

func NewTopicService(
	topicRepo *repository.TopicRepository,
	userRepo *repository.UserRepository,
	activityRepo *repository.ActivityRepository,
) *TopicService {
	return &TopicService{
		TopicRepo:    topicRepo,
		UserRepo:     userRepo,
		ActivityRepo: activityRepo,
	}
}

type TopicWithStatus struct {
	model.Topic
	Completed bool `json:"completed"`
}

func (s *TopicService) GetTopics(userID uint) ([]TopicWithStatus, error) {
	topics, err := s.TopicRepo.FindPublished()
	if err != nil {
		return nil, err
	}

	completed := make(map[uint]bool)
	if userID != 0 {
		ids, err := s.TopicRepo.FindCompletedIDs(userID)
		if err != nil {
			return nil, err
		}
		for _, id := range ids {
			completed[id] = true
		}
	}

	out := make([]TopicWithStatus, len(topics))
	for i, t := range topics {
		out[i] = TopicWithStatus{Topic: t, Completed: completed[t.ID]}
	}
	return out, nil
}

type TopicCompletionResult struct {
	NewlyCompleted bool `json:"newlyCompleted"`
	XPEarned       int  `json:"xpEarned"`
	TotalXP        int  `json:"totalXp"`
	Level          int  `json:"level"`
}

// CompleteTopic records the completion and awards the topic's XP, once;
// repeat completions are no-ops with no further XP.
func (s *TopicService) CompleteTopic(userID, topicID uint) (*TopicCompletionResult, error) {
	topic, err := s.TopicRepo.FindByID(topicID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrTopicNotFound
		}
		return nil, err
	}

	newlyCompleted, err := s.TopicRepo.MarkCompleted(userID, topicID)
	if err != nil {
		return nil, err
	}

	result := &TopicCompletionResult{NewlyCompleted: newlyCompleted}

	if !newlyCompleted {
		user, err := s.UserRepo.FindByID(userID)
		if err != nil {
			return nil, err
		}
		result.TotalXP = user.XP
		result.Level = user.Level
		return result, nil
	}

	user, _, err := grantXP(s.UserRepo, s.ActivityRepo, userID, topic.XPReward, "topic")
	if err != nil {
		return nil, err
	}
	result.XPEarned = topic.XPReward
	result.TotalXP = user.XP
	result.Level = user.Level

	if err := s.ActivityRepo.Create(&model.Activity{
		UserID:  userID,
		Type:    model.ActivityTopicCompleted,
		Detail:  fmt.Sprintf("Completed topic %q", topic.Title),
		XPDelta: topic.XPReward,
	}); err != nil {
		logger.Log.Error("failed to log topic activity", zap.Error(err))
	}

	return result, nil
}
