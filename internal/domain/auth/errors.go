package auth

import "errors"

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrNotSameGym         = errors.New("user belongs to another gym")
	ErrCannotDeleteOwner  = errors.New("the owner account cannot be deleted")
)
