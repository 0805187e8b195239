package catalog

import (
	"context"
	"errors"

	"meetingrooms/internal/domain"
	"meetingrooms/internal/pkg/apperror"
	"meetingrooms/internal/pkg/validator"
	"meetingrooms/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	rooms RoomRepository
}

func NewService(rooms RoomRepository) *Service {
	return &Service{rooms: rooms}
}

// ListRooms returns every room ordered by name.
func (s *Service) ListRooms(ctx context.Context) ([]domain.Room, error) {
	rooms, err := s.rooms.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return rooms, nil
}

func (s *Service) GetRoom(ctx context.Context, id string) (*domain.Room, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOrInternal(err)
	}
	return room, nil
}

func (s *Service) CreateRoom(ctx context.Context, req RoomRequest) (*domain.Room, error) {
	req, err := s.validate(ctx, req, "")
	if err != nil {
		return nil, err
	}

	room := domain.NewRoom(req.fields())
	if err := s.rooms.Create(ctx, room); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrRoomNameTaken
		}
		return nil, apperror.Internal(err)
	}
	return room, nil
}

// UpdateRoom overwrites every writable field of the room.
func (s *Service) UpdateRoom(ctx context.Context, id string, req RoomRequest) (*domain.Room, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOrInternal(err)
	}

	req, err = s.validate(ctx, req, id)
	if err != nil {
		return nil, err
	}

	room.Apply(req.fields())
	if err := s.rooms.Update(ctx, room); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrRoomNameTaken
		}
		return nil, apperror.Internal(err)
	}
	return room, nil
}

// DeleteRoom removes the room together with its bookings.
func (s *Service) DeleteRoom(ctx context.Context, id string) error {
	if err := s.rooms.Delete(ctx, id); err != nil {
		return notFoundOrInternal(err)
	}
	return nil
}

func (s *Service) CountRooms(ctx context.Context) (int64, error) {
	n, err := s.rooms.Count(ctx)
	if err != nil {
		return 0, apperror.Internal(err)
	}
	return n, nil
}

func (s *Service) validate(ctx context.Context, req RoomRequest, excludeID string) (RoomRequest, error) {
	req = req.normalized()
	if fields := validator.Validate(req); fields != nil {
		return req, ErrRoomValidation.WithDetails(fields)
	}

	taken, err := s.rooms.NameTaken(ctx, req.Name, excludeID)
	if err != nil {
		return req, apperror.Internal(err)
	}
	if taken {
		return req, ErrRoomNameTaken
	}
	return req, nil
}

func notFoundOrInternal(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRoomNotFound
	}
	return apperror.Internal(err)
}
