package model

import "time"

// LeaderboardHistory stores one (user, rank) pair per daily snapshot,
// used only for day-over-day rank deltas.
type LeaderboardHistory struct {
	BaseModel
	SnapshotDate time.Time `gorm:"index:idx_snapshot_user,unique;type:date;not null" json:"snapshotDate"`
	UserID       uint      `gorm:"index:idx_snapshot_user,unique;type:bigint unsigned;not null" json:"userId"`
	Rank         int       `gorm:"not null" json:"rank"`
}

func (LeaderboardHistory) TableName() string {
	return "leaderboard_history"
}

// WeeklyResetHistory archives the weekly board at reset time. Append-only,
// one row per reset cycle.
type WeeklyResetHistory struct {
	BaseModel
	ResetAt      time.Time `gorm:"not null" json:"resetAt"`
	TopUsers     string    `gorm:"type:json" json:"-"` // serialized top-10 entries
	Participants int       `gorm:"not null" json:"participants"`
}

func (WeeklyResetHistory) TableName() string {
	return "weekly_reset_history"
}
