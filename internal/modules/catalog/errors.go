package catalog

import "meetingrooms/internal/pkg/apperror"

var (
	ErrRoomNotFound   = apperror.NotFound("ROOM_NOT_FOUND", "room not found")
	ErrRoomValidation = apperror.Validation("VALIDATION_ERROR", "invalid room data")
	ErrRoomNameTaken  = apperror.Conflict("ROOM_EXISTS", "room name already exists")
)
