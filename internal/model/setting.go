package model

// AppSetting is a key/value row; booleans are stored as "true"/"false".
// Read through SettingsService, never queried ad hoc.
type AppSetting struct {
	BaseModel
	Key   string `gorm:"size:100;unique;not null" json:"key"`
	Value string `gorm:"size:255;not null" json:"value"`
}

func (AppSetting) TableName() string {
	return "app_settings"
}

// Known setting keys.
const (
	SettingAutoWeeklyReset     = "auto_weekly_reset"
	SettingWeeklyResetDay      = "weekly_reset_day"
	SettingLastWeeklyResetDate = "last_weekly_reset_date"
	SettingMaintenanceMode     = "maintenance_mode"
	SettingAllowRegistration   = "allow_registration"
	SettingSessionTimeTracking = "session_time_tracking"
)
