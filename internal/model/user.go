package model

import (
	"time"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// User carries both identity and the gamification counters. Level is
// denormalized but always recomputed from XP on every XP write.
// swagger:model User
type User struct {
	BaseModel
	Name       string     `gorm:"size:100;not null" json:"name"`
	Email      string     `gorm:"size:100;unique;not null" json:"email"`
	Password   string     `gorm:"size:100;not null" json:"-"`
	Role       UserRole   `gorm:"type:enum('user','admin');default:'user'" json:"role"`
	XP         int        `gorm:"default:0" json:"xp"`
	WeeklyXP   int        `gorm:"default:0" json:"weeklyXp"`
	Level      int        `gorm:"default:1" json:"level"`
	Streak     int        `gorm:"default:0" json:"streak"`
	LastActive *time.Time `json:"lastActive"` // nil until the first qualifying activity
	LastSeen   time.Time  `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastSeen"`
	Blocked    bool       `gorm:"default:false" json:"blocked"`
	Avatar     string     `gorm:"size:255" json:"avatar"`
}

func (User) TableName() string {
	return "users"
}
