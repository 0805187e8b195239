package auth

import "meetingrooms/internal/pkg/apperror"

var (
	ErrValidation         = apperror.Validation("VALIDATION_ERROR", "invalid registration data")
	ErrUserExists         = apperror.Conflict("USER_EXISTS", "user already exists")
	ErrInvalidCredentials = apperror.Auth("INVALID_CREDENTIALS", "invalid email or password")
	ErrUnauthorized       = apperror.Auth("UNAUTHORIZED", "not logged in")
)
