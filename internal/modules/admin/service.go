package admin

import (
	"context"
	"errors"
	"strings"

	"meetingrooms/internal/domain"
	"meetingrooms/internal/pkg/apperror"
	"meetingrooms/internal/pkg/validator"
	"meetingrooms/internal/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Service struct {
	users    UserRepository
	sessions SessionRevoker
	rooms    RoomCounter
	bookings BookingCounter
	log      *logrus.Logger
}

func NewService(users UserRepository, sessions SessionRevoker, rooms RoomCounter, bookings BookingCounter, log *logrus.Logger) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		rooms:    rooms,
		bookings: bookings,
		log:      log,
	}
}

func (s *Service) ListUsers(ctx context.Context) ([]domain.UserPublic, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	out := make([]domain.UserPublic, 0, len(users))
	for i := range users {
		out = append(out, users[i].Public())
	}
	return out, nil
}

func (s *Service) GetUser(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, userNotFoundOrInternal(err)
	}
	return u, nil
}

func (s *Service) CreateUser(ctx context.Context, req CreateUserRequest) (*domain.User, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = domain.NormalizeEmail(req.Email)
	if fields := validator.Validate(req); fields != nil {
		return nil, ErrValidation.WithDetails(fields)
	}

	if err := s.ensureUnique(ctx, req.Username, req.Email, ""); err != nil {
		return nil, err
	}

	u, err := domain.NewUser(req.Username, req.Email, req.Password, roleOrDefault(req.Role))
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, writeError(err)
	}
	return u, nil
}

// UpdateUser edits an account. A role change on the requester's own account
// is rejected the same way UpdateRole rejects it.
func (s *Service) UpdateUser(ctx context.Context, requesterID, id string, req UpdateUserRequest) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, userNotFoundOrInternal(err)
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = domain.NormalizeEmail(req.Email)
	if fields := validator.Validate(req); fields != nil {
		return nil, ErrValidation.WithDetails(fields)
	}

	if requesterID == id && req.Role != "" && domain.UserRole(req.Role) != u.Role {
		return nil, ErrDemoteSelf
	}

	if err := s.ensureUnique(ctx, req.Username, req.Email, id); err != nil {
		return nil, err
	}

	u.Username = req.Username
	u.Email = req.Email
	if req.Role != "" {
		u.Role = domain.UserRole(req.Role)
	}
	if req.Password != "" {
		if err := u.SetPassword(req.Password); err != nil {
			return nil, apperror.Internal(err)
		}
	}

	if err := s.users.Update(ctx, u); err != nil {
		return nil, writeError(err)
	}
	return u, nil
}

// UpdateRole changes another user's role. Admins cannot change their own.
func (s *Service) UpdateRole(ctx context.Context, requesterID, id string, req UpdateRoleRequest) (*domain.User, error) {
	if fields := validator.Validate(req); fields != nil {
		return nil, ErrValidation.WithDetails(fields)
	}
	if requesterID == id {
		return nil, ErrDemoteSelf
	}

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, userNotFoundOrInternal(err)
	}

	u.Role = domain.UserRole(req.Role)
	if err := s.users.Update(ctx, u); err != nil {
		return nil, writeError(err)
	}
	return u, nil
}

// DeleteUser removes the account with its bookings and sessions.
func (s *Service) DeleteUser(ctx context.Context, requesterID, id string) error {
	if requesterID == id {
		return ErrDeleteSelf
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return userNotFoundOrInternal(err)
	}

	if s.sessions != nil {
		if err := s.sessions.RevokeUser(ctx, id); err != nil {
			s.log.WithError(err).WithField("user_id", id).Warn("admin: revoking sessions of deleted user failed")
		}
	}
	return nil
}

func (s *Service) CountUsers(ctx context.Context) (int64, error) {
	n, err := s.users.Count(ctx)
	if err != nil {
		return 0, apperror.Internal(err)
	}
	return n, nil
}

// GetStats collects the dashboard counters in one response.
func (s *Service) GetStats(ctx context.Context) (*Stats, error) {
	var (
		st  Stats
		err error
	)
	if st.Users, err = s.CountUsers(ctx); err != nil {
		return nil, err
	}
	if st.Rooms, err = s.rooms.CountRooms(ctx); err != nil {
		return nil, err
	}
	if st.Bookings, err = s.bookings.CountBookings(ctx); err != nil {
		return nil, err
	}
	if st.TodayBookings, err = s.bookings.CountToday(ctx); err != nil {
		return nil, err
	}
	return &st, nil
}

func (s *Service) ensureUnique(ctx context.Context, username, email, excludeID string) error {
	taken, err := s.users.FindTaken(ctx, username, email, excludeID)
	if err != nil {
		return apperror.Internal(err)
	}
	if taken != nil {
		return ErrUserExists
	}
	return nil
}

func roleOrDefault(role string) domain.UserRole {
	if role == "" {
		return domain.RoleUser
	}
	return domain.UserRole(role)
}

func writeError(err error) error {
	if errors.Is(err, repository.ErrDuplicate) {
		return ErrUserExists
	}
	return apperror.Internal(err)
}

func userNotFoundOrInternal(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	return apperror.Internal(err)
}
