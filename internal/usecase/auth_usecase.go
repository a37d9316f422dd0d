// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"agadev/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// LoginInput defines the credentials presented at login.
type LoginInput struct {
	Username string
	Password string
}

// RegisterInput defines the data required to create an admin account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	FullName string
	Role     entity.Role
}

// ChangePasswordInput defines a password rotation for the calling account.
type ChangePasswordInput struct {
	UserID          uuid.UUID
	CurrentPassword string
	NewPassword     string
}

// --- Output DTOs ---

// LoginOutput returns the signed token and the authenticated account.
type LoginOutput struct {
	Token     string
	ExpiresAt time.Time
	User      *entity.AdminUser
}

// AuthUsecase defines account and session operations.
type AuthUsecase interface {
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	// Authenticate resolves a bearer token into the identity of an active account.
	Authenticate(ctx context.Context, token string) (entity.Identity, error)
	Me(ctx context.Context, userID uuid.UUID) (*entity.AdminUser, error)
	ChangePassword(ctx context.Context, input ChangePasswordInput) error
	Register(ctx context.Context, input RegisterInput) (*entity.AdminUser, error)
	// Logout revokes the presented token until it would have expired anyway.
	Logout(ctx context.Context, identity entity.Identity) error
	ListUsers(ctx context.Context) ([]*entity.AdminUser, error)
	SetActive(ctx context.Context, actor entity.Identity, userID uuid.UUID, active bool) (*entity.AdminUser, error)
}
