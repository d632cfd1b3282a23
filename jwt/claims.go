// Package jwt reads identity hints out of backend-issued bearer tokens
// without verifying them. The client never holds the backend's signing key,
// so every peek is unverified by construction; the result may only steer
// navigation and UI state, never authorization decisions.
package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenMalformed is an exported constant or variable used by the token peeker.
var ErrTokenMalformed = errors.New("token malformed")

// TokenClaims defines a public type used by bullsbears APIs.
//
// TokenClaims instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type TokenClaims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Expired reports whether the token carried an exp claim that is past now.
// Tokens without an exp claim never report expired.
func (c *TokenClaims) Expired(now time.Time) bool {
	if c.ExpiresAt == nil {
		return false
	}
	return c.ExpiresAt.Time.Before(now)
}

// Peek decodes the claims of token without signature verification. It is
// used to recover the role after a restart when only the raw token survived.
//
// Peek may return an error when input validation, dependency calls, or security checks fail.
// Peek does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func Peek(token string) (*TokenClaims, error) {
	if token == "" {
		return nil, ErrTokenMalformed
	}
	parser := jwt.NewParser()
	claims := &TokenClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, ErrTokenMalformed
	}
	return claims, nil
}
