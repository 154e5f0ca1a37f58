package database

import (
	"fmt"
	"levelup_backend/internal/config"
	"levelup_backend/internal/model"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB opens the MySQL connection. Schema migration and seeding only
// run when migrate is set, so release deployments control it explicitly.
func InitDB(cfg *config.DatabaseConfig, migrate bool) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if !migrate {
		return db, nil
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Badge{},
		&model.UserBadge{},
		&model.Topic{},
		&model.TopicCompletion{},
		&model.Quiz{},
		&model.QuizQuestion{},
		&model.QuizAttempt{},
		&model.Activity{},
		&model.LeaderboardHistory{},
		&model.WeeklyResetHistory{},
		&model.AppSetting{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	seedSettings(db)
	seedBadges(db)

	return db, nil
}

// seedSettings inserts the default app settings once. Existing rows are
// never overwritten so admin changes survive restarts.
func seedSettings(db *gorm.DB) {
	defaults := map[string]string{
		model.SettingAutoWeeklyReset:     "true",
		model.SettingWeeklyResetDay:      "Monday",
		model.SettingLastWeeklyResetDate: "",
		model.SettingMaintenanceMode:     "false",
		model.SettingAllowRegistration:   "true",
		model.SettingSessionTimeTracking: "true",
	}

	for key, value := range defaults {
		var count int64
		db.Model(&model.AppSetting{}).Where("`key` = ?", key).Count(&count)
		if count == 0 {
			if err := db.Create(&model.AppSetting{Key: key, Value: value}).Error; err != nil {
				log.Printf("failed to seed setting %s: %v", key, err)
			}
		}
	}
}

// seedBadges inserts the starter badge catalog when the table is empty.
// Some rows use criteria kinds the evaluator does not score yet; they are
// carried as catalog data and skipped at evaluation time.
func seedBadges(db *gorm.DB) {
	var count int64
	db.Model(&model.Badge{}).Count(&count)
	if count > 0 {
		return
	}

	defaultBadges := []model.Badge{
		{Name: "First Steps", Icon: "footprints", CriteriaType: model.CriteriaXP, CriteriaValue: 100},
		{Name: "Rising Star", Icon: "star", CriteriaType: model.CriteriaXP, CriteriaValue: 1000},
		{Name: "XP Legend", Icon: "crown", CriteriaType: model.CriteriaXP, CriteriaValue: 10000},
		{Name: "Quiz Rookie", Icon: "pencil", CriteriaType: model.CriteriaQuizzes, CriteriaValue: 1},
		{Name: "Quiz Veteran", Icon: "medal", CriteriaType: model.CriteriaQuizzes, CriteriaValue: 25},
		{Name: "Topic Explorer", Icon: "map", CriteriaType: model.CriteriaTopics, CriteriaValue: 5},
		{Name: "Topic Master", Icon: "graduation-cap", CriteriaType: model.CriteriaTopics, CriteriaValue: 25},
		{Name: "Getting Started", Icon: "flame", CriteriaType: model.CriteriaStreak, CriteriaValue: 3},
		{Name: "Week Warrior", Icon: "fire", CriteriaType: model.CriteriaStreak, CriteriaValue: 7},
		{Name: "Monthly Master", Icon: "trophy", CriteriaType: model.CriteriaStreak, CriteriaValue: 30},
		{Name: "Flawless", Icon: "gem", CriteriaType: "quiz_perfect", CriteriaValue: 1},
		{Name: "Contributor", Icon: "upload", CriteriaType: "uploads", CriteriaValue: 5},
	}
	for _, b := range defaultBadges {
		if err := db.Create(&b).Error; err != nil {
			log.Printf("failed to seed badge %s: %v", b.Name, err)
		}
	}
}
