package service

import (
	"errors"
	"levelup_backend/internal/config"
	"levelup_backend/internal/model"
	"levelup_backend/internal/repository"
	"levelup_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Settings *SettingsService
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, settings *SettingsService, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Settings: settings,
		Cfg:      cfg,
	}
}

func (s *AuthService) Register(user *model.User) error {
	if !s.Settings.GetBool(model.SettingAllowRegistration, true) {
		return util.ErrRegistrationClosed
	}

	_, err := s.UserRepo.FindByEmail(user.Email)
	if err == nil {
		return util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashedPassword)
	user.Level = 1
	return s.UserRepo.Create(user)
}

// Login verifies credentials and returns a signed token with the user.
// Blocked accounts are refused before the password check result leaks
// anything.
func (s *AuthService) Login(email, password string) (string, *model.User, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return "", nil, util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, util.ErrInvalidCredentials
	}

	if user.Blocked {
		return "", nil, util.ErrUserBlocked
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
