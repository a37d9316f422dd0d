// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"encoding/base64"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"agadev/config"
	"agadev/internal/domain/entity"
	"agadev/internal/domain/service"
	"agadev/internal/errors"
)

const signingAlgorithm = "HS256"

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte        // Server-held signing key.
	ttl    time.Duration // Lifetime of every issued token.
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	ttl := time.Duration(0)
	if cfg.Auth != nil {
		ttl = cfg.Auth.TokenTTL
	}

	svc, err := newJWTService(cfg.SecretKey.Access, ttl, time.Now)
	if err != nil {
		return nil, err
	}

	return svc, nil
}

func newJWTService(secret string, ttl time.Duration, now func() time.Time) (*jwtService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if ttl <= 0 {
		return nil, errors.New("jwt ttl must be positive")
	}

	return &jwtService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    now,
	}, nil
}

// Issue signs a token carrying the account ID, username and role.
func (s *jwtService) Issue(user *entity.AdminUser) (string, *service.Claims, error) {
	if user == nil {
		return "", nil, errors.New("cannot issue a token without an account")
	}

	issuedAt := s.now()
	claims := &service.Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", nil, errors.Wrap(err, "failed to sign token")
	}

	return signed, claims, nil
}

// Verify checks the signature first, so any altered byte is reported as an invalid
// signature, then decodes the claims and checks expiry.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" {
		return nil, service.ErrTokenMalformed
	}

	signature, err := base64.RawURLEncoding.Strict().DecodeString(parts[2])
	if err != nil {
		return nil, errors.Wrap(service.ErrTokenInvalidSignature, "signature is not valid base64url")
	}
	if err := jwt.SigningMethodHS256.Verify(parts[0]+"."+parts[1], signature, s.secret); err != nil {
		return nil, service.ErrTokenInvalidSignature
	}

	claims := &service.Claims{}
	_, err = jwt.ParseWithClaims(tokenString, claims, s.keyFunc,
		jwt.WithValidMethods([]string{signingAlgorithm}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithStrictDecoding(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, classifyParseError(err)
	}

	if claims.Subject != claims.UserID.String() {
		return nil, errors.Wrap(service.ErrTokenMalformed, "subject does not match user id")
	}

	return claims, nil
}

// TTL returns the lifetime of issued tokens.
func (s *jwtService) TTL() time.Duration {
	return s.ttl
}

func (s *jwtService) keyFunc(token *jwt.Token) (any, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, jwt.ErrSignatureInvalid
	}

	return s.secret, nil
}

func classifyParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return errors.Wrap(service.ErrTokenExpired, err.Error())
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return errors.Wrap(service.ErrTokenInvalidSignature, err.Error())
	default:
		return errors.Wrap(service.ErrTokenMalformed, err.Error())
	}
}
