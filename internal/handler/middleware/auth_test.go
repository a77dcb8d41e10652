//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"storefront/internal/domain/user"
	"storefront/internal/handler/middleware"
	"storefront/internal/pkg/jwt"
	"storefront/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func newRouter(t *testing.T) (*gin.Engine, *jwt.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := jwt.NewService(secret, "")
	auth := middleware.NewAuthMiddleware(svc)

	whoami := func(c *gin.Context) {
		actor, ok := middleware.GetActor(c)
		if !ok {
			c.JSON(http.StatusOK, gin.H{"anonymous": true})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": actor.UserID.String(), "role": actor.Role.String(), "email": actor.Email})
	}

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.GET("/required", auth.RequireAuth(), whoami)
	r.GET("/optional", auth.OptionalAuth(), whoami)
	r.GET("/admin", auth.RequireAuth(), auth.RequireAdmin(), whoami)
	return r, svc
}

func token(t *testing.T, svc *jwt.Service, id uuid.UUID, role user.Role, ttl time.Duration) string {
	t.Helper()
	tok, err := svc.GenerateToken(id, "Ada@Example.com", role, ttl)
	require.NoError(t, err)
	return tok
}

func TestRequireAuth(t *testing.T) {
	r, svc := newRouter(t)
	id := uuid.New()

	t.Run("valid bearer token", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/required", nil, token(t, svc, id, user.RoleCustomer, time.Hour))
		var got map[string]string
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		assert.Equal(t, id.String(), got["user_id"])
		assert.Equal(t, "ada@example.com", got["email"])
		assert.Equal(t, "customer", got["role"])
	})

	t.Run("valid cookie token", func(t *testing.T) {
		cookie := &http.Cookie{Name: "access_token", Value: token(t, svc, id, user.RoleCustomer, time.Hour)}
		w := httptest.PerformRequestWithCookies(t, r, http.MethodGet, "/required", nil, []*http.Cookie{cookie}, "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/required", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Authentication required")
	})

	t.Run("expired token", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/required", nil, token(t, svc, id, user.RoleCustomer, -time.Minute))
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other := jwt.NewService("other-secret", "")
		w := httptest.PerformRequest(t, r, http.MethodGet, "/required", nil, token(t, other, id, user.RoleCustomer, time.Hour))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestOptionalAuth(t *testing.T) {
	r, svc := newRouter(t)

	t.Run("anonymous passes through", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/optional", nil, "")
		var got map[string]bool
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		assert.True(t, got["anonymous"])
	})

	t.Run("invalid token is treated as anonymous", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/optional", nil, "garbage")
		var got map[string]bool
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		assert.True(t, got["anonymous"])
	})

	t.Run("valid token attaches the actor", func(t *testing.T) {
		id := uuid.New()
		w := httptest.PerformRequest(t, r, http.MethodGet, "/optional", nil, token(t, svc, id, user.RoleCustomer, time.Hour))
		var got map[string]any
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		assert.Equal(t, id.String(), got["user_id"])
	})
}

func TestRequireAdmin(t *testing.T) {
	r, svc := newRouter(t)

	t.Run("admin", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/admin", nil, token(t, svc, uuid.New(), user.RoleAdmin, time.Hour))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("customer", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/admin", nil, token(t, svc, uuid.New(), user.RoleCustomer, time.Hour))
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Forbidden")
	})
}
