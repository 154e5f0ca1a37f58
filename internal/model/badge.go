package model

import "time"

type BadgeCriteria string

const (
	CriteriaXP      BadgeCriteria = "xp"
	CriteriaQuizzes BadgeCriteria = "quizzes"
	CriteriaTopics  BadgeCriteria = "topics"
	CriteriaStreak  BadgeCriteria = "streak"
)

// Badge is a static definition; rows are only ever created or edited by
// admin tooling.
// swagger:model Badge
type Badge struct {
	BaseModel
	Name          string        `gorm:"size:100;not null" json:"name"`
	Icon          string        `gorm:"size:255" json:"icon"`
	CriteriaType  BadgeCriteria `gorm:"size:20;not null" json:"criteriaType"`
	CriteriaValue int           `gorm:"not null" json:"criteriaValue"`
}

func (Badge) TableName() string {
	return "badges"
}

// UserBadge records one earned badge. The composite unique index is what
// makes awarding idempotent under concurrent checks.
type UserBadge struct {
	BaseModel
	UserID   uint      `gorm:"index:idx_user_badge,unique;type:bigint unsigned;not null" json:"userId"`
	BadgeID  uint      `gorm:"index:idx_user_badge,unique;type:bigint unsigned;not null" json:"badgeId"`
	EarnedAt time.Time `gorm:"not null" json:"earnedAt"`
}

func (UserBadge) TableName() string {
	return "user_badges"
}
