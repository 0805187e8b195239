package auth

import (
	"context"
	"net/http"

	"meetingrooms/internal/domain"
)

// UserRepository is the subset of the user store the auth service uses.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	FindTaken(ctx context.Context, username, email, excludeID string) (*domain.User, error)
}

// Sessions is the part of session.Manager the handler needs.
type Sessions interface {
	Start(ctx context.Context, w http.ResponseWriter, userID string) (*domain.Session, error)
	Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error
}
