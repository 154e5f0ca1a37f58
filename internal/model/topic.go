package model

import "time"

// swagger:model Topic
type Topic struct {
	BaseModel
	Title       string `gorm:"size:200;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	XPReward    int    `gorm:"default:10" json:"xpReward"`
	Order       int    `gorm:"default:0" json:"order"`
	Published   bool   `gorm:"default:true" json:"published"`
}

func (Topic) TableName() string {
	return "topics"
}

// TopicCompletion marks a topic done by a user, at most once per pair.
type TopicCompletion struct {
	BaseModel
	UserID      uint      `gorm:"index:idx_user_topic,unique;type:bigint unsigned;not null" json:"userId"`
	TopicID     uint      `gorm:"index:idx_user_topic,unique;type:bigint unsigned;not null" json:"topicId"`
	CompletedAt time.Time `gorm:"not null" json:"completedAt"`
}

func (TopicCompletion) TableName() string {
	return "topic_completions"
}
