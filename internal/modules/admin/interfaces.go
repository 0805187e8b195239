package admin

import (
	"context"

	"meetingrooms/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	FindTaken(ctx context.Context, username, email, excludeID string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// SessionRevoker ends every session of a user.
type SessionRevoker interface {
	RevokeUser(ctx context.Context, userID string) error
}

type RoomCounter interface {
	CountRooms(ctx context.Context) (int64, error)
}

type BookingCounter interface {
	CountBookings(ctx context.Context) (int64, error)
	CountToday(ctx context.Context) (int64, error)
}
