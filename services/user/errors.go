package user

import "errors"

var (
	// ErrUsernameTaken signals a registration with an already used username or email.
	ErrUsernameTaken = errors.New("username is already taken")
	// ErrInvalidCredentials signals a failed username/password check.
	ErrInvalidCredentials = errors.New("incorrect username or password")
)
