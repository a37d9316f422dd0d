package impl

import (
	"context"
	"log/slog"
	"time"

	"agadev/internal/domain/entity"
	domainerrors "agadev/internal/domain/errors"
	"agadev/internal/domain/repository"
	"agadev/internal/domain/service"
	"agadev/internal/errors"
	"agadev/internal/usecase"

	"github.com/google/uuid"
)

// authService implements the AuthUsecase interface.
type authService struct {
	users   repository.AdminUserRepository
	hasher  service.PasswordHasher
	tokens  service.TokenService
	revoker service.TokenRevoker
	logger  *slog.Logger
	now     func() time.Time
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	users repository.AdminUserRepository,
	hasher service.PasswordHasher,
	tokens service.TokenService,
	revoker service.TokenRevoker,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		users:   users,
		hasher:  hasher,
		tokens:  tokens,
		revoker: revoker,
		logger:  logger,
		now:     time.Now,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return scopedLogger(ctx, srv.logger)
}

// Login checks the credentials of an active account and issues a token.
// Unknown usernames, inactive accounts and wrong passwords are indistinguishable.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.users.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrAdminUserNotFound) {
			srv.log(ctx).Info("Login rejected: unknown username", slog.String("username", input.Username))

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find admin user")
	}

	if !user.CanAuthenticate() || !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Info("Login rejected", slog.String("username", input.Username), slog.Bool("active", user.Active))

		return nil, domainerrors.ErrInvalidCredentials
	}

	now := srv.now()
	if err := srv.users.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return nil, errors.Wrap(err, "failed to record last login")
	}
	user.LastLogin = &now

	token, claims, err := srv.tokens.Issue(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Info("Admin logged in", slog.String("user_id", user.ID.String()), slog.String("role", user.Role.String()))

	return &usecase.LoginOutput{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
		User:      user,
	}, nil
}

// Authenticate verifies the token, rejects revoked ones and re-checks the account on every call.
func (srv *authService) Authenticate(ctx context.Context, token string) (entity.Identity, error) {
	claims, err := srv.tokens.Verify(token)
	if err != nil {
		if errors.Is(err, service.ErrTokenExpired) {
			return entity.Identity{}, domainerrors.ErrTokenExpired
		}

		return entity.Identity{}, domainerrors.ErrTokenInvalid.WithDetails(err.Error())
	}

	revoked, err := srv.revoker.IsRevoked(ctx, claims.ID)
	if err != nil {
		return entity.Identity{}, errors.Wrap(err, "failed to check token revocation")
	}
	if revoked {
		return entity.Identity{}, domainerrors.ErrTokenRevoked
	}

	user, err := srv.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrAdminUserNotFound) {
			return entity.Identity{}, domainerrors.ErrAccountInactive
		}

		return entity.Identity{}, errors.Wrap(err, "failed to load token subject")
	}
	if !user.CanAuthenticate() {
		return entity.Identity{}, domainerrors.ErrAccountInactive
	}

	identity := user.Identity()
	identity.TokenID = claims.ID
	if claims.ExpiresAt != nil {
		identity.ExpiresAt = claims.ExpiresAt.Time
	}

	return identity, nil
}

func (srv *authService) Me(ctx context.Context, userID uuid.UUID) (*entity.AdminUser, error) {
	user, err := srv.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrAdminUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin user")
	}

	return user, nil
}

func (srv *authService) ChangePassword(ctx context.Context, input usecase.ChangePasswordInput) error {
	user, err := srv.Me(ctx, input.UserID)
	if err != nil {
		return err
	}

	if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
		return domainerrors.ErrCurrentPasswordIncorrect
	}

	hash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		srv.log(ctx).Error("Failed to hash new password", slog.Any("error", err))

		return domainerrors.ErrPasswordHashFailed
	}

	if err := srv.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		return errors.Wrap(err, "failed to update password")
	}

	srv.log(ctx).Info("Password changed", slog.String("user_id", user.ID.String()))

	return nil
}

func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.AdminUser, error) {
	role := input.Role
	if role == "" {
		role = entity.RoleEditor
	}
	if !role.IsValid() {
		return nil, domainerrors.NewValidationError(domainerrors.FieldError{Field: "role", Message: "must be admin or editor"})
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed
	}

	user := &entity.AdminUser{
		Username:     input.Username,
		Email:        input.Email,
		FullName:     input.FullName,
		PasswordHash: hash,
		Role:         role,
		Active:       true,
	}
	if err := srv.users.Create(ctx, user); err != nil {
		return nil, errors.WithStack(err)
	}

	srv.log(ctx).Info("Admin account registered", slog.String("user_id", user.ID.String()), slog.String("role", role.String()))

	return user, nil
}

func (srv *authService) Logout(ctx context.Context, identity entity.Identity) error {
	if identity.TokenID == "" {
		return domainerrors.ErrTokenInvalid
	}

	if err := srv.revoker.Revoke(ctx, identity.TokenID, identity.ExpiresAt); err != nil {
		return errors.Wrap(err, "failed to revoke token")
	}

	return nil
}

func (srv *authService) ListUsers(ctx context.Context) ([]*entity.AdminUser, error) {
	users, err := srv.users.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list admin users")
	}

	return users, nil
}

// SetActive never lets an admin deactivate the account they are using.
func (srv *authService) SetActive(ctx context.Context, actor entity.Identity, userID uuid.UUID, active bool) (*entity.AdminUser, error) {
	if actor.UserID == userID && !active {
		return nil, domainerrors.ErrSelfDeactivation
	}

	if err := srv.users.SetActive(ctx, userID, active); err != nil {
		if errors.Is(err, repository.ErrAdminUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to update account state")
	}

	srv.log(ctx).Info("Account state changed",
		slog.String("user_id", userID.String()),
		slog.Bool("active", active),
		slog.String("by", actor.UserID.String()),
	)

	return srv.Me(ctx, userID)
}
