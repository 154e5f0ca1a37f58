package service

import (
	"errors"
	"levelup_backend/internal/model"
	"levelup_backend/internal/repository"
	"levelup_backend/internal/util"

	"gorm.io/gorm"
)

type UserService struct {
	UserRepo     *repository.UserRepository
	BadgeRepo    *repository.BadgeRepository
	QuizRepo     *repository.QuizRepository
	TopicRepo    *repository.TopicRepository
	ActivityRepo *repository.ActivityRepository
}

func NewUserService(
	userRepo *repository.UserRepository,
	badgeRepo *repository.BadgeRepository,
	quizRepo *repository.QuizRepository,
	topicRepo *repository.TopicRepository,
	activityRepo *repository.ActivityRepository,
) *UserService {
	return &UserService{
		UserRepo:     userRepo,
		BadgeRepo:    badgeRepo,
		QuizRepo:     quizRepo,
		TopicRepo:    topicRepo,
		ActivityRepo: activityRepo,
	}
}

// Profile is the aggregate the frontend renders on the profile page.
type Profile struct {
	User            *model.User   `json:"user"`
	NextLevelXP     int           `json:"nextLevelXp"`
	LevelProgress   int           `json:"levelProgress"`
	Badges          []model.Badge `json:"badges"`
	QuizAttempts    int64         `json:"quizAttempts"`
	TopicsCompleted int64         `json:"topicsCompleted"`
}

func (s *UserService) GetProfile(userID uint) (*Profile, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	badges, err := s.BadgeRepo.FindEarnedByUser(userID)
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

	return &Profile{
		User:            user,
		NextLevelXP:     XPThresholdForLevel(user.Level),
		LevelProgress:   LevelProgress(user.XP),
		Badges:          badges,
		QuizAttempts:    quizAttempts,
		TopicsCompleted: topicsCompleted,
	}, nil
}

func (s *UserService) UpdateProfile(userID uint, name string) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}

	user.Name = name
	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) SetAvatar(userID uint, url string) error {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return util.ErrUserNotFound
	}
	user.Avatar = url
	return s.UserRepo.Update(user)
}

func (s *UserService) GetActivity(userID uint, limit int) ([]model.Activity, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.ActivityRepo.FindByUser(userID, limit)
}

func (s *UserService) SetBlocked(userID uint, blocked bool) error {
	if _, err := s.UserRepo.FindByID(userID); err != nil {
		return util.ErrUserNotFound
	}
	return s.UserRepo.SetBlocked(userID, blocked)
}
