package catalog

import (
	"context"

	"meetingrooms/internal/domain"
)

type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	GetByID(ctx context.Context, id string) (*domain.Room, error)
	NameTaken(ctx context.Context, name, excludeID string) (bool, error)
	List(ctx context.Context) ([]domain.Room, error)
	Update(ctx context.Context, room *domain.Room) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// AvailabilityChecker answers the availability query for a room. It is
// implemented by the booking service.
type AvailabilityChecker interface {
	CheckAvailability(ctx context.Context, roomID, start, end string) (*domain.Availability, error)
}
