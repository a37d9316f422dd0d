package service

import (
	"errors"
	"time"

	"agadev/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Verification failures returned by TokenService.Verify.
var (
	ErrTokenMalformed        = errors.New("token malformed")
	ErrTokenInvalidSignature = errors.New("token signature invalid")
	ErrTokenExpired          = errors.New("token expired")
)

// Claims defines the custom claims for the session token.
// Subject carries the account ID and ID the token ID used for revocation.
type Claims struct {
	UserID   uuid.UUID   `json:"user_id"`
	Username string      `json:"username"`
	Role     entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed session tokens. It performs no I/O.
type TokenService interface {
	// Issue signs a token for the account with the configured TTL.
	Issue(user *entity.AdminUser) (token string, claims *Claims, err error)

	// Verify checks signature and expiry. Errors are one of
	// ErrTokenMalformed, ErrTokenInvalidSignature or ErrTokenExpired.
	Verify(tokenString string) (*Claims, error)

	// TTL returns the lifetime of issued tokens.
	TTL() time.Duration
}
