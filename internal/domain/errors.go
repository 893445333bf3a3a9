package domain

import "errors"

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrInvalidUserID = errors.New("invalid user id")
	ErrInvalidLimits = errors.New("invalid limit values")
	ErrEmptyAnswer   = errors.New("completion returned no answer")
)
