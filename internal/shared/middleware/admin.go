package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RoleResolver looks up a user's role from the profiles store.
// The bearer token carries no role claim; role changes made by the
// administrative process must take effect without reissuing tokens.
type RoleResolver interface {
	GetRole(ctx context.Context, userID uuid.UUID) (string, error)
}

// RequireAdmin gates a route group to admin-role users.
// Must run after Auth.
func RequireAdmin(roles RoleResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := UserIDFromContext(c)
		if userID == uuid.Nil {
			forbidAdmin(c)
			return
		}

		role, err := roles.GetRole(c.Request.Context(), userID)
		if err != nil || role != "admin" {
			forbidAdmin(c)
			return
		}

		c.Next()
	}
}

func forbidAdmin(c *gin.Context) {
	c.JSON(http.StatusForbidden, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "FORBIDDEN",
			"message": "admin role required",
		},
	})
	c.Abort()
}
