package domain

import "errors"

var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
