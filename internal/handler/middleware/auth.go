package middleware

import (
	"net/http"
	"strings"

	"storefront/internal/handler/httperr"
	"storefront/internal/pkg/cookie"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/jwt"
	"storefront/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const actorKey = "actor"

type tokenValidator interface {
	ValidateToken(token string) (*jwt.Identity, error)
}

type AuthMiddleware struct {
	validator tokenValidator
}

func NewAuthMiddleware(validator *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{validator: validator}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthenticated, "Authentication required", nil)
			return
		}
		identity, err := m.validator.ValidateToken(token)
		if err != nil {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.Mark(err, errs.ErrUnauthenticated), "Invalid or expired token", nil)
			return
		}
		setActor(c, identity)
		c.Next()
	}
}

func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthenticated, "Authentication required", nil)
			return
		}
		if !actor.IsAdmin() {
			httperr.AbortWithError(c, http.StatusForbidden, errs.ErrForbidden, "Forbidden", nil)
			return
		}
		c.Next()
	}
}

// OptionalAuth attaches an actor when a valid token is present and otherwise continues anonymously.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := extractToken(c); token != "" {
			if identity, err := m.validator.ValidateToken(token); err == nil {
				setActor(c, identity)
			}
		}
		c.Next()
	}
}

func GetActor(c *gin.Context) (*commands.Actor, bool) {
	v, exists := c.Get(actorKey)
	if !exists {
		return nil, false
	}
	actor, ok := v.(*commands.Actor)
	return actor, ok && actor != nil
}

// SetActor is exported for handler tests.
func SetActor(c *gin.Context, actor *commands.Actor) {
	c.Set(actorKey, actor)
}

func setActor(c *gin.Context, identity *jwt.Identity) {
	SetActor(c, &commands.Actor{
		UserID: identity.UserID,
		Email:  identity.Email,
		Role:   identity.Role,
	})
}

func extractToken(c *gin.Context) string {
	if auth := c.GetHeader("Authorization"); auth != "" {
		if token, ok := strings.CutPrefix(auth, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	return cookie.GetAccessToken(c)
}
