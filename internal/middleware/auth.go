package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	jwtsvc "gymdesk/internal/pkg/jwt"
	"gymdesk/internal/pkg/response"
)

// Auth validates the Bearer token and stores user_id, gym_id and role
// in the request context. Every tenant-scoped handler reads gym_id from here,
// never from the request body.
func Auth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing Authorization header")
			c.Abort()
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid Authorization header")
			c.Abort()
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Empty token")
			c.Abort()
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("gym_id", claims.GymID)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// GymID returns the tenant id stored by Auth, or 0 when unauthenticated.
func GymID(c *gin.Context) int64 {
	return c.GetInt64("gym_id")
}
