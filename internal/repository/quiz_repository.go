package repository

import (
	"levelup_backend/internal/model"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

func (r *QuizRepository) FindPublished() ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.DB.Where("published = ?", true).Order("id").Find(&quizzes).Error
	return quizzes, err
}

// FindByIDWithQuestions loads the quiz with its questions in their stored
// order; answer indices in submissions are matched against this order.
func (r *QuizRepository) FindByIDWithQuestions(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("quiz_questions.`order`, quiz_questions.id")
	}).First(&quiz, id).Error
	return &quiz, err
}

func (r *QuizRepository) CreateAttempt(attempt *model.QuizAttempt) error {
	return r.DB.Create(attempt).Error
}

func (r *QuizRepository) CountAttemptsByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.QuizAttempt{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *QuizRepository) FindAttemptsByUser(userID uint, limit int) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&attempts).Error
	return attempts, err
}
