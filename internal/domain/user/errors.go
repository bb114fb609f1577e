package user

import "errors"

var (
	ErrUserNotFound          = errors.New("User not found")
	ErrManagerAccessRequired = errors.New("Manager access required")
)
