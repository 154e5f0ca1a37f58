package service

import (
	"errors"
	"levelup_backend/internal/model"
	"levelup_backend/internal/repository"
	"levelup_backend/internal/util"

	"gorm.io/gorm"
)

// SettingsService is the single path to app_settings. Values are read
// fresh per operation; nothing here caches across requests.
type SettingsService struct {
	Repo *repository.SettingsRepository
}

func NewSettingsService(repo *repository.SettingsRepository) *SettingsService {
	return &SettingsService{Repo: repo}
}

func (s *SettingsService) All() ([]model.AppSetting, error) {
	return s.Repo.FindAll()
}

func (s *SettingsService) GetString(key, fallback string) string {
	value, err := s.Repo.Get(key)
	if err != nil {
		return fallback
	}
	return value
}

func (s *SettingsService) GetBool(key string, fallback bool) bool {
	value, err := s.Repo.Get(key)
	if err != nil {
		return fallback
	}
	return util.ParseBoolSetting(value)
}

// GetRaw returns the stored value verbatim, distinguishing a missing row
// from an empty value.
func (s *SettingsService) GetRaw(key string) (string, bool, error) {
	value, err := s.Repo.Get(key)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *SettingsService) Set(key, value string) error {
	return s.Repo.Set(key, value)
}

func (s *SettingsService) SetMany(values map[string]string) error {
	for key, value := range values {
		if err := s.Repo.Set(key, value); err != nil {
			return err
		}
	}
	return nil
}
