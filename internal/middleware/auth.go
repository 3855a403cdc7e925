package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lukaszlop/ketoggler/internal/types"
)

// UserIDKey is the gin context key holding the caller's id
const UserIDKey = "user_id"

// TokenValidator is an interface for validating JWT tokens
type TokenValidator interface {
	ValidateToken(token string) (*types.TokenClaims, error)
}

// AuthMiddleware creates a middleware that requires a valid bearer token
func AuthMiddleware(validator TokenValidator) gin.HandlerFunc {
	return Identity(validator, true, "")
}

// Identity resolves the caller and stores its id under UserIDKey.
// When required is false a request without an Authorization header runs as
// defaultUserID. A header that is present must always carry a valid token.
func Identity(validator TokenValidator, required bool, defaultUserID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			if required || defaultUserID == "" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "missing authorization header"})
				return
			}
			c.Set(UserIDKey, defaultUserID)
			c.Next()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid authorization header format"})
			return
		}

		claims, err := validator.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid or expired token"})
			return
		}

		c.Set(UserIDKey, claims.UserID())
		c.Next()
	}
}

// UserID returns the id stored by Identity
func UserID(c *gin.Context) (string, bool) {
	id := c.GetString(UserIDKey)
	return id, id != ""
}
