package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newProtectedRouter(t *testing.T, tokens *auth.JWTManager) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/protected", middleware.SessionAuth(tokens), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(string(domain.KeyUserID)))
	})
	return r
}

func newTokens(t *testing.T, ttl time.Duration) *auth.JWTManager {
	t.Helper()
	tokens, err := auth.NewJWTManager("test-secret", ttl)
	assert.NoError(t, err)
	return tokens
}

func TestSessionAuth(t *testing.T) {
	t.Run("Should reject a request without the cookie", func(t *testing.T) {
		r := newProtectedRouter(t, newTokens(t, time.Hour))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "No token provided")
	})

	t.Run("Should reject a garbage token", func(t *testing.T) {
		r := newProtectedRouter(t, newTokens(t, time.Hour))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: "not-a-jwt"})
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Should reject an expired token", func(t *testing.T) {
		expired := newTokens(t, -time.Hour)
		token, err := expired.Issue("64f000000000000000000001")
		assert.NoError(t, err)

		r := newProtectedRouter(t, newTokens(t, time.Hour))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: token})
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Should reject a token signed with another secret", func(t *testing.T) {
		other, err := auth.NewJWTManager("other-secret", time.Hour)
		assert.NoError(t, err)
		token, err := other.Issue("64f000000000000000000001")
		assert.NoError(t, err)

		r := newProtectedRouter(t, newTokens(t, time.Hour))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: token})
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Should pass a valid cookie through and annotate the context", func(t *testing.T) {
		tokens := newTokens(t, time.Hour)
		token, err := tokens.Issue("64f000000000000000000001")
		assert.NoError(t, err)

		r := newProtectedRouter(t, tokens)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: token})
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "64f000000000000000000001", w.Body.String())
	})
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Should mint an id and echo it in the response header", func(t *testing.T) {
		r := gin.New()
		r.Use(middleware.RequestID())
		r.GET("/", func(c *gin.Context) {
			c.String(http.StatusOK, c.GetString(string(domain.KeyRequestID)))
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		r.ServeHTTP(w, req)

		assert.NotEmpty(t, w.Body.String())
		assert.Equal(t, w.Body.String(), w.Header().Get("X-Request-ID"))
	})

	t.Run("Should keep an inbound id", func(t *testing.T) {
		r := gin.New()
		r.Use(middleware.RequestID())
		r.GET("/", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "abc-123")
		r.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
	})
}
