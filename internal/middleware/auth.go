package middleware

import (
	"database/sql"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/MarliRenee/aware-api/internal/models"
)

const (
	userContextKey    = "user"
	basicSchemePrefix = "basic "
)

// UserLookup resolves a username to its stored user row.
type UserLookup interface {
	GetByUsername(username string) (models.User, error)
}

// UserFromContext returns the authenticated user attached by BasicAuth.
func UserFromContext(c *gin.Context) (models.User, bool) {
	value, ok := c.Get(userContextKey)
	if !ok {
		return models.User{}, false
	}
	user, ok := value.(models.User)
	return user, ok
}

// BasicAuth gates a route behind HTTP Basic Authentication. Credentials
// are compared against the stored user row by exact string equality, and
// the matched row is attached to the request context.
func BasicAuth(users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if len(authHeader) < len(basicSchemePrefix) ||
			!strings.EqualFold(authHeader[:len(basicSchemePrefix)], basicSchemePrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Missing basic token",
			})
			return
		}

		decoded, err := base64.StdEncoding.DecodeString(authHeader[len(basicSchemePrefix):])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Unauthorized request",
			})
			return
		}

		username, password, found := strings.Cut(string(decoded), ":")
		if !found || username == "" || password == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Unauthorized request",
			})
			return
		}

		user, err := users.GetByUsername(username)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			_ = c.Error(err)
			c.Abort()
			return
		}
		if errors.Is(err, sql.ErrNoRows) || user.Password != password {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Unauthorized request, wrong username or password",
			})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}
