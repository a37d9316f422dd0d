package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"agadev/config"
	"agadev/internal/domain/repository"
	"agadev/internal/domain/service"
	"agadev/internal/infra/auth"
	logs "agadev/internal/infra/log"
	"agadev/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// seedadmin creates the first back-office account, or resets an existing one.
//
//	seedadmin -username admin -email admin@example.org -password ... [-reset]
//
// The password may also come from SEED_ADMIN_PASSWORD.
func main() {
	opts := seedOptions{}
	flag.StringVar(&opts.Username, "username", "admin", "Login name of the account")
	flag.StringVar(&opts.Email, "email", "", "Contact email of the account")
	flag.StringVar(&opts.FullName, "full-name", "Administrator", "Display name of the account")
	flag.StringVar(&opts.Password, "password", os.Getenv("SEED_ADMIN_PASSWORD"), "Password of the account")
	flag.BoolVar(&opts.Reset, "reset", false, "Reset the password and reactivate the account when it already exists")
	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(1)
	}
}

func run(opts seedOptions) error {
	var (
		users  repository.AdminUserRepository
		hasher service.PasswordHasher
		logger *slog.Logger
	)

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			postgres.NewAdminUserRepository,
			auth.NewBcryptHasher,
		),
		fx.Populate(&users, &hasher, &logger),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build dependencies")
	}

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start")
	}
	defer func() {
		if err := app.Stop(ctx); err != nil {
			logger.Error("Failed to stop", slog.Any("error", err))
		}
	}()

	outcome, err := seed(ctx, users, hasher, opts)
	if err != nil {
		return err
	}

	logger.Info("Admin account seeded", slog.String("username", opts.Username), slog.String("outcome", string(outcome)))

	return nil
}
