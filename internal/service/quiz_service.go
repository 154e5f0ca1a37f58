package service

import (
	"errors"
	"fmt"
	"levelup_backend/internal/model"
	"levelup_backend/internal/repository"
	"levelup_backend/internal/util"
	"levelup_backend/pkg/logger"
	"math"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PassingScore is the fixed pass threshold for every quiz, in percent.
const PassingScore = 70

type QuizService struct {
	QuizRepo     *repository.QuizRepository
	UserRepo     *repository.UserRepository
	ActivityRepo *repository.ActivityRepository
}

func NewQuizService(
	quizRepo *repository.QuizRepository,
	userRepo *repository.UserRepository,
	activityRepo *repository.ActivityRepository,
) *QuizService {
	return &QuizService{
		QuizRepo:     quizRepo,
		UserRepo:     userRepo,
		ActivityRepo: activityRepo,
	}
}

type SubmitQuizRequest struct {
	Answers   []int `json:"answers" binding:"required"`
	TimeTaken int   `json:"timeTaken"`
}

type QuizSubmissionResult struct {
	Score          int  `json:"score"`
	Passed         bool `json:"passed"`
	CorrectCount   int  `json:"correctCount"`
	TotalQuestions int  `json:"totalQuestions"`
	XPEarned       int  `json:"xpEarned"`
	TotalXP        int  `json:"totalXp"`
	Level          int  `json:"level"`
	LeveledUp      bool `json:"leveledUp"`
}

// gradeAnswers compares submitted answer indices against the questions in
// their stored order. Missing or extra entries simply don't match. A quiz
// with no questions grades to zero.
func gradeAnswers(questions []model.QuizQuestion, answers []int) (correct, score int) {
	total := len(questions)
	if total == 0 {
		return 0, 0
	}
	for i, q := range questions {
		if i < len(answers) && answers[i] == q.CorrectAnswer {
			correct++
		}
	}
	score = int(math.Round(float64(correct) / float64(total) * 100))
	return correct, score
}

// xpForAttempt gives the full reward on a pass and 30% (floored) on a
// fail, so attempting is never worth zero.
func xpForAttempt(reward int, passed bool) int {
	if passed {
		return reward
	}
	return reward * 3 / 10
}

// SubmitQuiz grades the submission and applies the side effects. The
// attempt record and the XP update are each attempted regardless of the
// other's outcome; the activity entry is best-effort only.
func (s *QuizService) SubmitQuiz(userID, quizID uint, req SubmitQuizRequest) (*QuizSubmissionResult, error) {
	quiz, err := s.QuizRepo.FindByIDWithQuestions(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}

	correct, score := gradeAnswers(quiz.Questions, req.Answers)
	passed := score >= PassingScore
	xpEarned := xpForAttempt(quiz.XPReward, passed)

	attemptErr := s.QuizRepo.CreateAttempt(&model.QuizAttempt{
		UserID:         userID,
		QuizID:         quizID,
		Score:          score,
		TotalQuestions: len(quiz.Questions),
		CorrectCount:   correct,
		Passed:         passed,
		XPEarned:       xpEarned,
		TimeTaken:      req.TimeTaken,
	})
	if attemptErr != nil {
		logger.Log.Error("failed to record quiz attempt",
			zap.Uint("userId", userID),
			zap.Uint("quizId", quizID),
			zap.Error(attemptErr))
	}

	user, leveledUp, xpErr := grantXP(s.UserRepo, s.ActivityRepo, userID, xpEarned, "quiz")
	if xpErr != nil {
		logger.Log.Error("failed to award quiz XP",
			zap.Uint("userId", userID),
			zap.Uint("quizId", quizID),
			zap.Error(xpErr))
	}

	// Both primary writes failing means nothing was persisted; surface it.
	if attemptErr != nil && xpErr != nil {
		return nil, xpErr
	}

	activityType := model.ActivityQuizFailed
	if passed {
		activityType = model.ActivityQuizPassed
	}
	if err := s.ActivityRepo.Create(&model.Activity{
		UserID:  userID,
		Type:    activityType,
		Detail:  fmt.Sprintf("Scored %d%% on %q", score, quiz.Title),
		XPDelta: xpEarned,
	}); err != nil {
		logger.Log.Error("failed to log quiz activity", zap.Error(err))
	}

	result := &QuizSubmissionResult{
		Score:          score,
		Passed:         passed,
		CorrectCount:   correct,
		TotalQuestions: len(quiz.Questions),
		XPEarned:       xpEarned,
		LeveledUp:      leveledUp,
	}
	if user != nil {
		result.TotalXP = user.XP
		result.Level = user.Level
	}
	return result, nil
}

func (s *QuizService) GetQuizzes() ([]model.Quiz, error) {
	return s.QuizRepo.FindPublished()
}

// GetQuizForTaking loads a quiz with questions; correct answers are
// excluded from question JSON by the model.
func (s *QuizService) GetQuizForTaking(quizID uint) (*model.Quiz, error) {
	quiz, err := s.QuizRepo.FindByIDWithQuestions(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}
	return quiz, nil
}

func (s *QuizService) GetUserAttempts(userID uint, limit int) ([]model.QuizAttempt, error) {
	return s.QuizRepo.FindAttemptsByUser(userID, limit)
}
