package errors

import "errors"

var (
	ErrInvalidRequest  = errors.New("invalid request")
	ErrThemeNotFound   = errors.New("theme not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrUnauthenticated = errors.New("authentication required")
)
