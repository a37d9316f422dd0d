package impl

import (
	"context"
	"testing"
	"time"

	"agadev/internal/domain/entity"
	domainerrors "agadev/internal/domain/errors"
	"agadev/internal/domain/repository"
	"agadev/internal/domain/service"
	"agadev/internal/errors"
	mockRepo "agadev/internal/mocks/repository"
	mockSvc "agadev/internal/mocks/service"
	"agadev/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service usecase.AuthUsecase
	users   *mockRepo.MockAdminUserRepository
	hasher  *mockSvc.MockPasswordHasher
	tokens  *mockSvc.MockTokenService
	revoker *mockSvc.MockTokenRevoker
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	users := mockRepo.NewMockAdminUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenService(t)
	revoker := mockSvc.NewMockTokenRevoker(t)

	srv := NewAuthService(users, hasher, tokens, revoker, newDiscardLogger())
	srv.(*authService).now = fixedClock

	return authServiceFixtures{
		service: srv,
		users:   users,
		hasher:  hasher,
		tokens:  tokens,
		revoker: revoker,
	}
}

func activeAdmin() *entity.AdminUser {
	return &entity.AdminUser{
		ID:           uuid.New(),
		Username:     "admin",
		Email:        "admin@agadev-gabon.com",
		PasswordHash: "hash",
		Role:         entity.RoleAdmin,
		Active:       true,
	}
}

func claimsFor(user *entity.AdminUser, jti string) *service.Claims {
	return &service.Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(fixedNow),
			ExpiresAt: jwt.NewNumericDate(fixedNow.Add(24 * time.Hour)),
		},
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := activeAdmin()

	fx.users.EXPECT().FindByUsername(ctx, "admin").Return(user, nil)
	fx.hasher.EXPECT().Check("Secret123", "hash").Return(true)
	fx.users.EXPECT().UpdateLastLogin(ctx, user.ID, fixedNow).Return(nil)
	fx.tokens.EXPECT().Issue(user).Return("signed", claimsFor(user, "jti-1"), nil)

	out, err := fx.service.Login(ctx, usecase.LoginInput{Username: "admin", Password: "Secret123"})
	require.NoError(t, err)
	assert.Equal(t, "signed", out.Token)
	assert.Equal(t, user.ID, out.User.ID)
	require.NotNil(t, out.User.LastLogin)
	assert.Equal(t, fixedNow, *out.User.LastLogin)
	assert.Equal(t, fixedNow.Add(24*time.Hour), out.ExpiresAt)
}

func TestAuthService_Login_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown username", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.users.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrAdminUserNotFound)

		_, err := fx.service.Login(ctx, usecase.LoginInput{Username: "ghost", Password: "x"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAuthService(t)
		user := activeAdmin()
		fx.users.EXPECT().FindByUsername(ctx, "admin").Return(user, nil)
		fx.hasher.EXPECT().Check("bad", "hash").Return(false)

		_, err := fx.service.Login(ctx, usecase.LoginInput{Username: "admin", Password: "bad"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("inactive account", func(t *testing.T) {
		fx := createTestAuthService(t)
		user := activeAdmin()
		user.Active = false
		fx.users.EXPECT().FindByUsername(ctx, "admin").Return(user, nil)

		_, err := fx.service.Login(ctx, usecase.LoginInput{Username: "admin", Password: "Secret123"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestAuthService_Authenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("active account resolves identity", func(t *testing.T) {
		fx := createTestAuthService(t)
		user := activeAdmin()
		fx.tokens.EXPECT().Verify("tok").Return(claimsFor(user, "jti-1"), nil)
		fx.revoker.EXPECT().IsRevoked(ctx, "jti-1").Return(false, nil)
		fx.users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

		identity, err := fx.service.Authenticate(ctx, "tok")
		require.NoError(t, err)
		assert.Equal(t, user.ID, identity.UserID)
		assert.Equal(t, entity.RoleAdmin, identity.Role)
		assert.Equal(t, "jti-1", identity.TokenID)
		assert.Equal(t, fixedNow.Add(24*time.Hour), identity.ExpiresAt)
	})

	t.Run("expired token", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.tokens.EXPECT().Verify("old").Return(nil, service.ErrTokenExpired)

		_, err := fx.service.Authenticate(ctx, "old")
		assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
	})

	t.Run("bad signature", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.tokens.EXPECT().Verify("forged").Return(nil, service.ErrTokenInvalidSignature)

		_, err := fx.service.Authenticate(ctx, "forged")
		assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
	})

	t.Run("revoked token", func(t *testing.T) {
		fx := createTestAuthService(t)
		user := activeAdmin()
		fx.tokens.EXPECT().Verify("tok").Return(claimsFor(user, "jti-2"), nil)
		fx.revoker.EXPECT().IsRevoked(ctx, "jti-2").Return(true, nil)

		_, err := fx.service.Authenticate(ctx, "tok")
		assert.ErrorIs(t, err, domainerrors.ErrTokenRevoked)
	})

	t.Run("deactivated after issue", func(t *testing.T) {
		fx := createTestAuthService(t)
		user := activeAdmin()
		fx.tokens.EXPECT().Verify("tok").Return(claimsFor(user, "jti-3"), nil)
		fx.revoker.EXPECT().IsRevoked(ctx, "jti-3").Return(false, nil)
		inactive := *user
		inactive.Active = false
		fx.users.EXPECT().FindByID(ctx, user.ID).Return(&inactive, nil)

		_, err := fx.service.Authenticate(ctx, "tok")
		assert.ErrorIs(t, err, domainerrors.ErrAccountInactive)
	})

	t.Run("revocation store failure fails closed", func(t *testing.T) {
		fx := createTestAuthService(t)
		user := activeAdmin()
		fx.tokens.EXPECT().Verify("tok").Return(claimsFor(user, "jti-4"), nil)
		fx.revoker.EXPECT().IsRevoked(ctx, "jti-4").Return(false, errors.New("redis down"))

		_, err := fx.service.Authenticate(ctx, "tok")
		assert.Error(t, err)
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctx := context.Background()
	user := activeAdmin()

	t.Run("wrong current password", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.hasher.EXPECT().Check("nope", "hash").Return(false)

		err := fx.service.ChangePassword(ctx, usecase.ChangePasswordInput{UserID: user.ID, CurrentPassword: "nope", NewPassword: "NewSecret1"})
		assert.ErrorIs(t, err, domainerrors.ErrCurrentPasswordIncorrect)
	})

	t.Run("re-hashes new password", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.hasher.EXPECT().Check("Secret123", "hash").Return(true)
		fx.hasher.EXPECT().Hash("NewSecret1").Return("new-hash", nil)
		fx.users.EXPECT().UpdatePassword(ctx, user.ID, "new-hash").Return(nil)

		err := fx.service.ChangePassword(ctx, usecase.ChangePasswordInput{UserID: user.ID, CurrentPassword: "Secret123", NewPassword: "NewSecret1"})
		require.NoError(t, err)
	})
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("creates active account with default role", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.hasher.EXPECT().Hash("Password1").Return("hashed", nil)
		fx.users.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.AdminUser")).
			Run(func(_ context.Context, user *entity.AdminUser) {
				assert.Equal(t, "hashed", user.PasswordHash)
				assert.Equal(t, entity.RoleEditor, user.Role)
				assert.True(t, user.Active)
			}).
			Return(nil)

		user, err := fx.service.Register(ctx, usecase.RegisterInput{Username: "editor", Email: "e@agadev-gabon.com", Password: "Password1", FullName: "Ed"})
		require.NoError(t, err)
		assert.Equal(t, "editor", user.Username)
	})

	t.Run("duplicate surfaces conflict", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.hasher.EXPECT().Hash("Password1").Return("hashed", nil)
		fx.users.EXPECT().Create(ctx, mock.Anything).Return(domainerrors.ErrUserAlreadyExists)

		_, err := fx.service.Register(ctx, usecase.RegisterInput{Username: "admin", Email: "a@b.c", Password: "Password1", Role: entity.RoleAdmin})
		assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	})

	t.Run("unknown role", func(t *testing.T) {
		fx := createTestAuthService(t)

		_, err := fx.service.Register(ctx, usecase.RegisterInput{Username: "x", Password: "Password1", Role: "root"})
		var validationErr *domainerrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "role", validationErr.Fields[0].Field)
	})
}

func TestAuthService_LogoutAndSetActive(t *testing.T) {
	ctx := context.Background()
	user := activeAdmin()
	identity := user.Identity()
	identity.TokenID = "jti-9"
	identity.ExpiresAt = fixedNow.Add(time.Hour)

	t.Run("logout revokes until expiry", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.revoker.EXPECT().Revoke(ctx, "jti-9", identity.ExpiresAt).Return(nil)

		require.NoError(t, fx.service.Logout(ctx, identity))
	})

	t.Run("cannot deactivate self", func(t *testing.T) {
		fx := createTestAuthService(t)

		_, err := fx.service.SetActive(ctx, identity, user.ID, false)
		assert.ErrorIs(t, err, domainerrors.ErrSelfDeactivation)
	})

	t.Run("deactivates another account", func(t *testing.T) {
		fx := createTestAuthService(t)
		other := activeAdmin()
		other.Active = false
		fx.users.EXPECT().SetActive(ctx, other.ID, false).Return(nil)
		fx.users.EXPECT().FindByID(ctx, other.ID).Return(other, nil)

		updated, err := fx.service.SetActive(ctx, identity, other.ID, false)
		require.NoError(t, err)
		assert.False(t, updated.Active)
	})

	t.Run("unknown account", func(t *testing.T) {
		fx := createTestAuthService(t)
		missing := uuid.New()
		fx.users.EXPECT().SetActive(ctx, missing, true).Return(repository.ErrAdminUserNotFound)

		_, err := fx.service.SetActive(ctx, identity, missing, true)
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}
