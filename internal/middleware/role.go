package middleware

import (
	"meetingrooms/internal/domain"
	"meetingrooms/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireRole ensures that the authenticated user has the specified role.
// Anonymous callers get 401, the wrong role gets 403.
func RequireRole(requiredRole domain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := IdentityFrom(c)
		if !ok {
			response.FromError(c, ErrAuthRequired)
			c.Abort()
			return
		}

		if id.Role != requiredRole {
			response.FromError(c, ErrAdminOnly)
			c.Abort()
			return
		}

		c.Next()
	}
}

// AdminOnly middleware requires admin role
func AdminOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleAdmin)
}
