package auth

import (
	"strings"
	"testing"
	"time"

	"agadev/config"
	"agadev/internal/domain/entity"
	"agadev/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func newTestJWTService(t *testing.T, clock *fakeClock) *jwtService {
	t.Helper()

	svc, err := newJWTService(testSecret, 24*time.Hour, clock.Now)
	require.NoError(t, err)

	return svc
}

func testAccount(role entity.Role) *entity.AdminUser {
	return &entity.AdminUser{
		ID:       uuid.New(),
		Username: "admin",
		Role:     role,
		Active:   true,
	}
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)}
	svc := newTestJWTService(t, clock)
	account := testAccount(entity.RoleAdmin)

	token, issued, err := svc.Issue(account)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, issued.ID)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, account.ID, claims.UserID)
	assert.Equal(t, account.ID.String(), claims.Subject)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
	assert.Equal(t, issued.ID, claims.ID)
	assert.Equal(t, 24*time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestJWTService_Expired(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)}
	svc := newTestJWTService(t, clock)

	token, _, err := svc.Issue(testAccount(entity.RoleEditor))
	require.NoError(t, err)

	clock.now = clock.now.Add(23 * time.Hour)
	_, err = svc.Verify(token)
	require.NoError(t, err)

	clock.now = clock.now.Add(time.Hour + time.Second)
	claims, err := svc.Verify(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
}

func TestJWTService_AnyAlteredByteInvalidatesSignature(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	svc := newTestJWTService(t, clock)

	token, _, err := svc.Issue(testAccount(entity.RoleAdmin))
	require.NoError(t, err)

	for i := 0; i < len(token); i++ {
		if token[i] == '.' {
			continue
		}

		replacement := byte('A')
		if token[i] == 'A' {
			replacement = 'B'
		}
		altered := token[:i] + string(replacement) + token[i+1:]

		_, err := svc.Verify(altered)
		require.ErrorIs(t, err, service.ErrTokenInvalidSignature, "position %d", i)
	}
}

func TestJWTService_TamperedExpiredTokenReportsSignature(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)}
	svc := newTestJWTService(t, clock)

	token, _, err := svc.Issue(testAccount(entity.RoleAdmin))
	require.NoError(t, err)

	clock.now = clock.now.Add(48 * time.Hour)
	mid := len(token) - 10
	altered := token[:mid] + "x" + token[mid+1:]
	if altered == token {
		altered = token[:mid] + "y" + token[mid+1:]
	}

	_, err = svc.Verify(altered)
	assert.ErrorIs(t, err, service.ErrTokenInvalidSignature)
}

func TestJWTService_WrongSecret(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	issuer := newTestJWTService(t, clock)
	other, err := newJWTService("another-secret", time.Hour, clock.Now)
	require.NoError(t, err)

	token, _, err := issuer.Issue(testAccount(entity.RoleAdmin))
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.ErrorIs(t, err, service.ErrTokenInvalidSignature)
}

func TestJWTService_RejectsOtherAlgorithms(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	svc := newTestJWTService(t, clock)
	account := testAccount(entity.RoleAdmin)

	claims := &service.Claims{
		UserID: account.ID,
		Role:   account.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.ID.String(),
			ExpiresAt: jwt.NewNumericDate(clock.now.Add(time.Hour)),
		},
	}

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	_, err = svc.Verify(hs512)
	assert.ErrorIs(t, err, service.ErrTokenInvalidSignature)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = svc.Verify(unsigned)
	assert.ErrorIs(t, err, service.ErrTokenInvalidSignature)
}

func TestJWTService_Malformed(t *testing.T) {
	svc := newTestJWTService(t, &fakeClock{now: time.Now()})

	for _, token := range []string{"", "clearly-not-a-jwt-token-format", "a.b", "..sig", strings.Repeat(".", 4)} {
		_, err := svc.Verify(token)
		assert.ErrorIs(t, err, service.ErrTokenMalformed, "token %q", token)
	}
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{TokenTTL: time.Hour}}

	svc, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, svc)

	cfg.SecretKey.Access = testSecret
	svc, err = NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, svc.TTL())
}
