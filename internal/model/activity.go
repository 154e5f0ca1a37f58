package model

type ActivityType string

const (
	ActivityQuizPassed     ActivityType = "quiz_passed"
	ActivityQuizFailed     ActivityType = "quiz_failed"
	ActivityTopicCompleted ActivityType = "topic_completed"
	ActivityBadgeEarned    ActivityType = "badge_earned"
	ActivityLevelUp        ActivityType = "level_up"
)

// Activity is the append-only event log shown on the user's timeline.
// Writes are best-effort; a failed insert never blocks the primary
// operation that produced it.
type Activity struct {
	BaseModel
	UserID  uint         `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	Type    ActivityType `gorm:"size:30;not null" json:"type"`
	Detail  string       `gorm:"size:255" json:"detail"`
	XPDelta int          `gorm:"default:0" json:"xpDelta"`
}

func (Activity) TableName() string {
	return "activities"
}
