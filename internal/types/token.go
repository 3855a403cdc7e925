package types

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims represents the claims in a JWT token. The owner identity of
// every request is the registered subject.
type TokenClaims struct {
	jwt.RegisteredClaims
}

// UserID returns the subject the token was issued for
func (c *TokenClaims) UserID() string {
	return c.Subject
}
