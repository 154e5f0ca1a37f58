package repository

import (
	"levelup_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsRepository struct {
	DB *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{DB: db}
}

func (r *SettingsRepository) FindAll() ([]model.AppSetting, error) {
	var settings []model.AppSetting
	err := r.DB.Order("`key`").Find(&settings).Error
	return settings, err
}

func (r *SettingsRepository) Get(key string) (string, error) {
	var setting model.AppSetting
	err := r.DB.Where("`key` = ?", key).First(&setting).Error
	if err != nil {
		return "", err
	}
	return setting.Value, nil
}

func (r *SettingsRepository) Set(key, value string) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"value": value}),
	}).Create(&model.AppSetting{Key: key, Value: value}).Error
}

// CompareAndSet updates the value only if it still equals expected.
// Returns true when this caller won the update. Concurrent writers racing
// the same transition see RowsAffected == 0 and back off.
func (r *SettingsRepository) CompareAndSet(tx *gorm.DB, key, expected, value string) (bool, error) {
	res := tx.Model(&model.AppSetting{}).
		Where("`key` = ? AND value = ?", key, expected).
		Update("value", value)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// InsertIfAbsent creates the setting only when no row for the key exists
// yet, for claims against a key that was never seeded. Returns true when
// this caller created the row.
func (r *SettingsRepository) InsertIfAbsent(tx *gorm.DB, key, value string) (bool, error) {
	res := tx.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.AppSetting{Key: key, Value: value})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
