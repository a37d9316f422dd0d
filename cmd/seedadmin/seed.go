package main

import (
	"context"
	"strings"

	"agadev/internal/domain/entity"
	"agadev/internal/domain/repository"
	"agadev/internal/domain/service"

	"github.com/pkg/errors"
)

const minPasswordLength = 8

type seedOptions struct {
	Username string
	Email    string
	FullName string
	Password string
	Reset    bool
}

type seedOutcome string

const (
	outcomeCreated seedOutcome = "created"
	outcomeReset   seedOutcome = "reset"
	outcomeSkipped seedOutcome = "skipped"
)

func (o seedOptions) validate() error {
	switch {
	case strings.TrimSpace(o.Username) == "":
		return errors.New("username is required")
	case strings.TrimSpace(o.Email) == "":
		return errors.New("email is required")
	case len(o.Password) < minPasswordLength:
		return errors.Errorf("password must be at least %d characters", minPasswordLength)
	}

	return nil
}

// seed creates an active admin account. An existing account is left alone
// unless Reset is set, in which case its password and active flag are restored.
func seed(ctx context.Context, users repository.AdminUserRepository, hasher service.PasswordHasher, opts seedOptions) (seedOutcome, error) {
	if err := opts.validate(); err != nil {
		return "", err
	}

	existing, err := users.FindByUsername(ctx, opts.Username)
	if err != nil && !errors.Is(err, repository.ErrAdminUserNotFound) {
		return "", errors.Wrap(err, "failed to look up account")
	}

	if existing != nil && !opts.Reset {
		return outcomeSkipped, nil
	}

	hash, err := hasher.Hash(opts.Password)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash password")
	}

	if existing != nil {
		if err := users.UpdatePassword(ctx, existing.ID, hash); err != nil {
			return "", errors.Wrap(err, "failed to reset password")
		}
		if err := users.SetActive(ctx, existing.ID, true); err != nil {
			return "", errors.Wrap(err, "failed to reactivate account")
		}

		return outcomeReset, nil
	}

	user := &entity.AdminUser{
		Username:     opts.Username,
		Email:        opts.Email,
		FullName:     opts.FullName,
		PasswordHash: hash,
		Role:         entity.RoleAdmin,
		Active:       true,
	}
	if err := users.Create(ctx, user); err != nil {
		return "", errors.Wrap(err, "failed to create account")
	}

	return outcomeCreated, nil
}
