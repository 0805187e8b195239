package session

import (
	"context"
	"errors"

	"meetingrooms/internal/domain"
)

var ErrNotFound = errors.New("session not found")

// Store persists server-side sessions. Get returns ErrNotFound for unknown
// ids; Delete of an unknown id is not an error.
type Store interface {
	Save(ctx context.Context, s *domain.Session) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID string) error
}
