package session

import (
	"context"

	"meetingrooms/internal/domain"
)

// Identity is the caller resolved once per request from the session
// cookie.
type Identity struct {
	UserID    string
	Role      domain.UserRole
	SessionID string
}

func (i Identity) IsAdmin() bool { return i.Role == domain.RoleAdmin }

type identityKey struct{}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}
