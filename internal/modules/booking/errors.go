package booking

import "meetingrooms/internal/pkg/apperror"

var (
	ErrTitleRequired   = apperror.Validation("VALIDATION_ERROR", "title is required")
	ErrInvalidTime     = apperror.Validation("INVALID_TIME", "invalid start or end time")
	ErrInvalidRange    = apperror.Validation("INVALID_TIME_RANGE", "start time must be before end time")
	ErrRoomNotFound    = apperror.NotFound("ROOM_NOT_FOUND", "room not found")
	ErrUserNotFound    = apperror.NotFound("USER_NOT_FOUND", "user not found")
	ErrBookingNotFound = apperror.NotFound("BOOKING_NOT_FOUND", "booking not found")
	ErrConflict        = apperror.Conflict("BOOKING_CONFLICT", "room is already booked for the selected time")
	ErrNotOwner        = apperror.Auth("NOT_BOOKING_OWNER", "you can only cancel your own bookings")
)
