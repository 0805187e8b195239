package admin

import "meetingrooms/internal/pkg/apperror"

var (
	ErrValidation   = apperror.Validation("VALIDATION_ERROR", "invalid user data")
	ErrUserNotFound = apperror.NotFound("USER_NOT_FOUND", "user not found")
	ErrUserExists   = apperror.Conflict("USER_EXISTS", "user already exists")
	ErrDeleteSelf   = apperror.Validation("CANNOT_DELETE_SELF", "you cannot delete your own account")
	ErrDemoteSelf   = apperror.Validation("CANNOT_CHANGE_OWN_ROLE", "you cannot change your own role")
)
