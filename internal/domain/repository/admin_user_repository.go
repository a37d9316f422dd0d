// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"agadev/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAdminUserNotFound is returned when no account matches the lookup.
var ErrAdminUserNotFound = errors.New("admin user not found")

// AdminUserRepository is the credential store.
type AdminUserRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AdminUser, error)

	// FindByUsername retrieves a single account by its exact username.
	FindByUsername(ctx context.Context, username string) (*entity.AdminUser, error)

	// List returns every account, newest first.
	List(ctx context.Context) ([]*entity.AdminUser, error)

	// Create persists a new account. Duplicate username or email yields ErrUserAlreadyExists.
	Create(ctx context.Context, user *entity.AdminUser) error

	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}
