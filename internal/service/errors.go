package service

import (
	"errors"
)

var (
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserInactive       = errors.New("user is inactive")
	ErrUsernameTaken      = errors.New("username already registered")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidRole        = errors.New("invalid role")
	ErrAdNotFound         = errors.New("advertisement not found")
	ErrAuthRequired       = errors.New(ReasonAuthRequired)
	ErrPermissionDenied   = errors.New(ReasonNotPermitted)
)

// denyError maps a deny decision to its sentinel error
func denyError(d Decision) error {
	if d.Reason == ReasonAuthRequired {
		return ErrAuthRequired
	}
	return ErrPermissionDenied
}
