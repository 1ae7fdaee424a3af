// Package middleware provides the request interceptors that guard
// protected routes: bearer-token authentication and role checks.
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"spots_backend/internal/feature/auth/domain"
	"spots_backend/internal/feature/auth/domain/entity"
)

// contextUserKey is the Gin context key under which the resolved user is
// stored. Downstream handlers read it through CurrentUser only.
const contextUserKey = "currentUser"

// TokenVerifier validates a bearer token and returns the subject user ID.
// Following Go convention, interfaces are defined by the consumer (middleware), not the provider (platform/token).
type TokenVerifier interface {
	Parse(tokenStr string) (uint, error)
}

// UserFinder loads the user behind a verified token subject.
type UserFinder interface {
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// Auth is the access gate applied to protected routes. It never writes
// to the user store; it only reads.
type Auth struct {
	tokens TokenVerifier
	users  UserFinder
}

// NewAuth creates the access gate with its injected collaborators.
func NewAuth(tokens TokenVerifier, users UserFinder) *Auth {
	return &Auth{tokens: tokens, users: users}
}

// Authenticate returns a Gin middleware that turns a bearer token into a
// resolved user. Each step rejects with 401: missing/non-Bearer header,
// failed token verification, unknown subject. On success the user is
// attached to the request context for downstream handlers.
func (a *Auth) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		userID, err := a.tokens.Parse(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		// The token only proves possession; the account itself is
		// resolved fresh on every request. Only a missing account is an
		// authentication failure; a store failure is a server error.
		user, err := a.users.FindByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
				return
			}
			slog.Error("user lookup failed", "error", err, "user_id", userID)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		SetCurrentUser(c, user)
		c.Next()
	}
}

// RequireRoles returns a Gin middleware that rejects with 403 unless the
// authenticated user's role is in the allowed set. An empty set means no
// restriction beyond authentication. It must run after Authenticate.
func RequireRoles(roles ...entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		if len(roles) > 0 && !roleAllowed(user.Role, roles) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			return
		}
		c.Next()
	}
}

// roleAllowed reports whether role is in the allowed set.
func roleAllowed(role entity.Role, allowed []entity.Role) bool {
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}

// SetCurrentUser attaches the resolved user to the request context.
// Handlers read it back through CurrentUser.
func SetCurrentUser(c *gin.Context, u *entity.User) {
	c.Set(contextUserKey, u)
}

// CurrentUser returns the user attached by Authenticate, if any.
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	v, ok := c.Get(contextUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*entity.User)
	return user, ok
}
