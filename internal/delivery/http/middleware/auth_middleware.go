package middleware

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

const sessionCookieName = "token"

// SessionAuth gates protected routes on the session cookie. A missing cookie
// short-circuits with 401 before any token parsing happens; an invalid or
// expired token gets the same status. On success the user ID travels down the
// chain in the gin context.
func SessionAuth(tokens *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(sessionCookieName)
		if err != nil || cookie == "" {
			response.Error(c, http.StatusUnauthorized, "No token provided", nil)
			c.Abort()
			return
		}

		claims, err := tokens.Verify(cookie)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid or expired token", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), claims.UserID)
		c.Next()
	}
}
