package service

import (
	"testing"

	"levelup_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func questionsWithAnswers(correct ...int) []model.QuizQuestion {
	qs := make([]model.QuizQuestion, len(correct))
	for i, c := range correct {
		qs[i] = model.QuizQuestion{CorrectAnswer: c}
	}
	return qs
}

func TestGradeAnswers(t *testing.T) {
	questions := questionsWithAnswers(0, 1, 2, 3, 0)

	tests := []struct {
		name        string
		answers     []int
		wantCorrect int
		wantScore   int
	}{
		{"all correct", []int{0, 1, 2, 3, 0}, 5, 100},
		{"four of five", []int{0, 1, 2, 3, 1}, 4, 80},
		{"two of five", []int{0, 1, 0, 0, 1}, 2, 40},
		{"none correct", []int{3, 3, 3, 0, 3}, 0, 0},
		{"short answer list", []int{0, 1}, 2, 40},
		{"extra answers ignored", []int{0, 1, 2, 3, 0, 2, 2}, 5, 100},
		{"empty answers", []int{}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			correct, score := gradeAnswers(questions, tt.answers)
			assert.Equal(t, tt.wantCorrect, correct)
			assert.Equal(t, tt.wantScore, score)
		})
	}
}

func TestGradeAnswersRounding(t *testing.T) {
	// 1/3 = 33.33 rounds to 33, 2/3 = 66.67 rounds to 67.
	questions := questionsWithAnswers(0, 0, 0)

	_, score := gradeAnswers(questions, []int{0, 1, 1})
	assert.Equal(t, 33, score)

	_, score = gradeAnswers(questions, []int{0, 0, 1})
	assert.Equal(t, 67, score)
}

func TestGradeAnswersNoQuestions(t *testing.T) {
	correct, score := gradeAnswers(nil, []int{0, 1})
	assert.Equal(t, 0, correct)
	assert.Equal(t, 0, score)
}

func TestXPForAttempt(t *testing.T) {
	assert.Equal(t, 100, xpForAttempt(100, true))
	assert.Equal(t, 30, xpForAttempt(100, false))
	// 30% of 25 floors to 7.
	assert.Equal(t, 7, xpForAttempt(25, false))
	assert.Equal(t, 0, xpForAttempt(0, false))
}

func TestPassBoundary(t *testing.T) {
	// 7/10 is exactly the passing score; 6/10 and 69 via rounding are not.
	questions := questionsWithAnswers(0, 0, 0, 0, 0, 0, 0, 0, 0, 0)

	_, score := gradeAnswers(questions, []int{0, 0, 0, 0, 0, 0, 0, 1, 1, 1})
	assert.Equal(t, 70, score)
	assert.True(t, score >= PassingScore)

	_, score = gradeAnswers(questions, []int{0, 0, 0, 0, 0, 0, 1, 1, 1, 1})
	assert.Equal(t, 60, score)
	assert.False(t, score >= PassingScore)
}
