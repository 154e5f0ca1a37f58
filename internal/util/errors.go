package util

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailRegistered     = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUserBlocked         = errors.New("account is blocked")
	ErrRegistrationClosed  = errors.New("registration is currently disabled")
	ErrQuizNotFound        = errors.New("quiz not found")
	ErrTopicNotFound       = errors.New("topic not found")
	ErrResetAlreadyClaimed = errors.New("weekly reset already performed for this cycle")
)
