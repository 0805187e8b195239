package middleware

import (
	"context"
	"errors"
	"net/http"

	"meetingrooms/internal/domain"
	"meetingrooms/internal/pkg/apperror"
	"meetingrooms/internal/pkg/response"
	"meetingrooms/internal/session"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var (
	ErrAuthRequired = apperror.Auth("UNAUTHORIZED", "authentication required")
	ErrAdminOnly    = apperror.Forbidden("FORBIDDEN", "admin access required")
)

type SessionResolver interface {
	Resolve(ctx context.Context, r *http.Request) (*domain.Session, error)
}

type UserLookup interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// SessionAuth resolves the caller once per request. It never rejects: an
// anonymous request simply carries no identity. The role is read from the
// user row so that role changes apply to live sessions.
func SessionAuth(sessions SessionResolver, users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		s, err := sessions.Resolve(ctx, c.Request)
		if err != nil {
			if !errors.Is(err, session.ErrNotFound) {
				response.FromError(c, apperror.Internal(err))
				c.Abort()
				return
			}
			c.Next()
			return
		}

		u, err := users.GetByID(ctx, s.UserID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				response.FromError(c, apperror.Internal(err))
				c.Abort()
				return
			}
			c.Next()
			return
		}

		id := session.Identity{UserID: u.ID, Role: u.Role, SessionID: s.ID}
		c.Request = c.Request.WithContext(session.WithIdentity(ctx, id))
		c.Set("user_id", id.UserID)
		c.Set("role", string(id.Role))
		c.Next()
	}
}

// IdentityFrom returns the identity resolved by SessionAuth.
func IdentityFrom(c *gin.Context) (session.Identity, bool) {
	return session.IdentityFrom(c.Request.Context())
}

// RequireAuth rejects anonymous requests with 401.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := IdentityFrom(c); !ok {
			response.FromError(c, ErrAuthRequired)
			c.Abort()
			return
		}
		c.Next()
	}
}
