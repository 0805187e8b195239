package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"meetingrooms/internal/domain"
	"meetingrooms/internal/modules/events"
	"meetingrooms/internal/pkg/apperror"
	"meetingrooms/internal/pkg/timeparse"
	"meetingrooms/internal/repository"

	"gorm.io/gorm"
)

const recentLimit = 10

type Service struct {
	bookings BookingRepository
	rooms    RoomRepository
	users    UserRepository
	events   Publisher
	loc      *time.Location
	now      func() time.Time
}

// NewService builds the booking service. Local wall-clock times are read
// in loc. events may be nil.
func NewService(bookings BookingRepository, rooms RoomRepository, users UserRepository, events Publisher, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{
		bookings: bookings,
		rooms:    rooms,
		users:    users,
		events:   events,
		loc:      loc,
		now:      time.Now,
	}
}

// HasConflict reports whether another booking of roomID intersects
// [start, end). excludeID may be empty.
func (s *Service) HasConflict(ctx context.Context, roomID string, start, end time.Time, excludeID string) (bool, error) {
	ok, err := s.bookings.HasConflict(ctx, roomID, timeparse.Normalize(start), timeparse.Normalize(end), excludeID)
	if err != nil {
		return false, apperror.Internal(err)
	}
	return ok, nil
}

func (s *Service) CreateBooking(ctx context.Context, userID string, req CreateBookingRequest) (*domain.Booking, error) {
	return s.create(ctx, userID, req)
}

// CreateBookingFor books on behalf of another user. An empty userID books
// for the requester.
func (s *Service) CreateBookingFor(ctx context.Context, requesterID string, req AdminCreateBookingRequest) (*domain.Booking, error) {
	userID := strings.TrimSpace(req.UserID)
	if userID == "" {
		userID = requesterID
	} else if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.create(ctx, userID, req.CreateBookingRequest)
}

func (s *Service) create(ctx context.Context, userID string, req CreateBookingRequest) (*domain.Booking, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	if err := s.requireRoom(ctx, req.RoomID); err != nil {
		return nil, err
	}

	start, end, err := s.parseRange(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	b := domain.NewBooking(userID, req.RoomID, title, start, end)
	if err := s.bookings.CreateExclusive(ctx, b); err != nil {
		return nil, mapWriteError(err)
	}

	s.publish(events.BookingCreated, *b)
	return b, nil
}

// UpdateBooking applies the set fields of req. The conflict check ignores
// the booking being updated.
func (s *Service) UpdateBooking(ctx context.Context, id string, req UpdateBookingRequest) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, bookingNotFoundOrInternal(err)
	}

	if req.Title != nil {
		b.Title = strings.TrimSpace(*req.Title)
		if b.Title == "" {
			return nil, ErrTitleRequired
		}
	}
	if req.UserID != nil && *req.UserID != b.UserID {
		if err := s.requireUser(ctx, *req.UserID); err != nil {
			return nil, err
		}
		b.UserID = *req.UserID
	}
	if req.RoomID != nil && *req.RoomID != b.RoomID {
		if err := s.requireRoom(ctx, *req.RoomID); err != nil {
			return nil, err
		}
		b.RoomID = *req.RoomID
	}

	start, end := b.StartTime, b.EndTime
	if req.StartTime != nil {
		if start, err = timeparse.Parse(*req.StartTime, s.loc); err != nil {
			return nil, ErrInvalidTime
		}
	}
	if req.EndTime != nil {
		if end, err = timeparse.Parse(*req.EndTime, s.loc); err != nil {
			return nil, ErrInvalidTime
		}
	}
	if !start.Before(end) {
		return nil, ErrInvalidRange
	}
	b.StartTime, b.EndTime = start, end

	if err := s.bookings.UpdateExclusive(ctx, b); err != nil {
		return nil, mapWriteError(err)
	}

	s.publish(events.BookingUpdated, *b)
	return b, nil
}

// CancelBooking deletes a booking. Only its owner or an admin may do so.
func (s *Service) CancelBooking(ctx context.Context, requesterID, bookingID string, requesterIsAdmin bool) error {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return bookingNotFoundOrInternal(err)
	}
	if b.UserID != requesterID && !requesterIsAdmin {
		return ErrNotOwner
	}

	if err := s.bookings.Delete(ctx, bookingID); err != nil {
		return bookingNotFoundOrInternal(err)
	}

	s.publish(events.BookingCancelled, *b)
	return nil
}

// CheckAvailability lists the bookings that would block [start, end).
func (s *Service) CheckAvailability(ctx context.Context, roomID, startStr, endStr string) (*domain.Availability, error) {
	start, end, err := s.parseRange(startStr, endStr)
	if err != nil {
		return nil, err
	}

	if err := s.requireRoom(ctx, roomID); err != nil {
		return nil, err
	}

	conflicts, err := s.bookings.FindConflicts(ctx, roomID, start, end, "")
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if conflicts == nil {
		conflicts = []domain.Booking{}
	}
	return &domain.Availability{
		Available:           len(conflicts) == 0,
		ConflictingBookings: conflicts,
	}, nil
}

// ListForUser returns the user's bookings, latest first, with room details.
func (s *Service) ListForUser(ctx context.Context, userID string) ([]domain.BookingView, error) {
	out, err := s.bookings.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return out, nil
}

func (s *Service) ListAll(ctx context.Context) ([]domain.BookingView, error) {
	out, err := s.bookings.ListAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return out, nil
}

// ListRecent returns the ten latest bookings by start time.
func (s *Service) ListRecent(ctx context.Context) ([]domain.BookingView, error) {
	out, err := s.bookings.ListRecent(ctx, recentLimit)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return out, nil
}

func (s *Service) GetBooking(ctx context.Context, id string) (*domain.BookingView, error) {
	v, err := s.bookings.GetView(ctx, id)
	if err != nil {
		return nil, bookingNotFoundOrInternal(err)
	}
	return v, nil
}

func (s *Service) CountBookings(ctx context.Context) (int64, error) {
	n, err := s.bookings.Count(ctx)
	if err != nil {
		return 0, apperror.Internal(err)
	}
	return n, nil
}

// CountToday counts bookings starting within the current local day.
func (s *Service) CountToday(ctx context.Context) (int64, error) {
	from, to := timeparse.DayBounds(s.now(), s.loc)
	n, err := s.bookings.CountStartingBetween(ctx, from, to)
	if err != nil {
		return 0, apperror.Internal(err)
	}
	return n, nil
}

func (s *Service) requireRoom(ctx context.Context, roomID string) error {
	if strings.TrimSpace(roomID) == "" {
		return ErrRoomNotFound
	}
	if _, err := s.rooms.GetByID(ctx, roomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoomNotFound
		}
		return apperror.Internal(err)
	}
	return nil
}

func (s *Service) requireUser(ctx context.Context, userID string) error {
	if strings.TrimSpace(userID) == "" {
		return ErrUserNotFound
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return apperror.Internal(err)
	}
	return nil
}

func (s *Service) parseRange(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := timeparse.Parse(startStr, s.loc)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidTime
	}
	end, err := timeparse.Parse(endStr, s.loc)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidTime
	}
	if !start.Before(end) {
		return time.Time{}, time.Time{}, ErrInvalidRange
	}
	return start, end, nil
}

func (s *Service) publish(t events.Type, b domain.Booking) {
	if s.events == nil {
		return
	}
	s.events.Publish(events.Event{Type: t, Booking: b, At: s.now().UTC()})
}

func mapWriteError(err error) error {
	switch {
	case errors.Is(err, repository.ErrOverlap):
		return ErrConflict
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrRoomNotFound
	default:
		return apperror.Internal(err)
	}
}

func bookingNotFoundOrInternal(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrBookingNotFound
	}
	return apperror.Internal(err)
}
