package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// StringSlice stores question options as a JSON column.
type StringSlice []string

func (s StringSlice) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *StringSlice) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		str, ok := value.(string)
		if !ok {
			return errors.New("unsupported type for StringSlice")
		}
		bytes = []byte(str)
	}
	return json.Unmarshal(bytes, s)
}

// swagger:model Quiz
type Quiz struct {
	BaseModel
	Title     string         `gorm:"size:200;not null" json:"title"`
	TopicID   uint           `gorm:"index;type:bigint unsigned" json:"topicId"`
	XPReward  int            `gorm:"default:50" json:"xpReward"`
	Published bool           `gorm:"default:true" json:"published"`
	Questions []QuizQuestion `gorm:"foreignKey:QuizID" json:"questions,omitempty"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// QuizQuestion holds exactly one correct option index. CorrectAnswer is
// never serialized to clients taking the quiz.
type QuizQuestion struct {
	BaseModel
	QuizID        uint        `gorm:"index;type:bigint unsigned;not null" json:"quizId"`
	Text          string      `gorm:"type:text;not null" json:"text"`
	Options       StringSlice `gorm:"type:json" json:"options"`
	CorrectAnswer int         `gorm:"not null" json:"-"`
	Order         int         `gorm:"default:0" json:"order"`
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}

// QuizAttempt is append-only; rows are never updated after creation.
type QuizAttempt struct {
	BaseModel
	UserID         uint `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	QuizID         uint `gorm:"index;type:bigint unsigned;not null" json:"quizId"`
	Score          int  `gorm:"not null" json:"score"` // 0-100
	TotalQuestions int  `gorm:"not null" json:"totalQuestions"`
	CorrectCount   int  `gorm:"not null" json:"correctCount"`
	Passed         bool `gorm:"not null" json:"passed"`
	XPEarned       int  `gorm:"not null" json:"xpEarned"`
	TimeTaken      int  `gorm:"default:0" json:"timeTaken"` // seconds
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}
