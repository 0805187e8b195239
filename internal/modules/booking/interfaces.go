package booking

import (
	"context"
	"time"

	"meetingrooms/internal/domain"
	"meetingrooms/internal/modules/events"
)

// BookingRepository defines the booking store operations the service uses
type BookingRepository interface {
	HasConflict(ctx context.Context, roomID string, start, end time.Time, excludeID string) (bool, error)
	FindConflicts(ctx context.Context, roomID string, start, end time.Time, excludeID string) ([]domain.Booking, error)
	CreateExclusive(ctx context.Context, b *domain.Booking) error
	UpdateExclusive(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetView(ctx context.Context, id string) (*domain.BookingView, error)
	Delete(ctx context.Context, id string) error
	ListByUser(ctx context.Context, userID string) ([]domain.BookingView, error)
	ListAll(ctx context.Context) ([]domain.BookingView, error)
	ListRecent(ctx context.Context, limit int) ([]domain.BookingView, error)
	Count(ctx context.Context) (int64, error)
	CountStartingBetween(ctx context.Context, from, to time.Time) (int64, error)
}

// RoomRepository defines the room lookup the service uses
type RoomRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Room, error)
}

// UserRepository defines the user lookup for bookings made on behalf of
// someone else
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// Publisher receives committed booking changes.
type Publisher interface {
	Publish(e events.Event)
}
