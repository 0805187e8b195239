package domain

import (
	"time"

	"github.com/google/uuid"
)

// Booking reserves a room for the half-open interval [StartTime, EndTime).
type Booking struct {
	ID        string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	Title     string    `json:"title" gorm:"not null"`
	RoomID    string    `json:"roomId" gorm:"type:varchar(36);not null;index:idx_bookings_room_time,priority:1"`
	UserID    string    `json:"userId" gorm:"type:varchar(36);not null;index"`
	StartTime time.Time `json:"startTime" gorm:"not null;index:idx_bookings_room_time,priority:2"`
	EndTime   time.Time `json:"endTime" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewBooking(userID, roomID, title string, start, end time.Time) *Booking {
	return &Booking{
		ID:        uuid.NewString(),
		Title:     title,
		RoomID:    roomID,
		UserID:    userID,
		StartTime: start,
		EndTime:   end,
	}
}

// Overlaps applies the half-open rule: touching intervals do not overlap.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.StartTime.Before(end) && b.EndTime.After(start)
}

type BookingRoom struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity,omitempty"`
	Location string `json:"location"`
}

type BookingUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// BookingView is a booking joined with the room and, for admin listings,
// the owning user.
type BookingView struct {
	Booking
	Room *BookingRoom `json:"room,omitempty"`
	User *BookingUser `json:"user,omitempty"`
}

// Availability answers whether a room is free for an interval.
type Availability struct {
	Available           bool      `json:"available"`
	ConflictingBookings []Booking `json:"conflictingBookings"`
}
