package auth

import (
	"context"
	"errors"
	"strings"

	"meetingrooms/internal/domain"
	"meetingrooms/internal/pkg/apperror"
	"meetingrooms/internal/pkg/validator"
	"meetingrooms/internal/repository"

	"gorm.io/gorm"
)

// Service contains the business logic for accounts and credentials.
type Service struct {
	users UserRepository
}

func NewService(users UserRepository) *Service {
	return &Service{users: users}
}

// Register creates a user-role account. Username and email must both be
// unused; emails compare case-insensitively.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = domain.NormalizeEmail(req.Email)

	if fields := validator.Validate(req); fields != nil {
		return nil, ErrValidation.WithDetails(fields)
	}

	taken, err := s.users.FindTaken(ctx, req.Username, req.Email, "")
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if taken != nil {
		return nil, ErrUserExists
	}

	u, err := domain.NewUser(req.Username, req.Email, req.Password, domain.RoleUser)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserExists
		}
		return nil, apperror.Internal(err)
	}
	return u, nil
}

// Login checks credentials. An unknown email and a wrong password produce
// the same error.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*domain.User, error) {
	email := domain.NormalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, apperror.Internal(err)
	}

	ok, err := u.CheckPassword(req.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// CurrentUser loads the account behind a resolved session.
func (s *Service) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, apperror.Internal(err)
	}
	return u, nil
}
