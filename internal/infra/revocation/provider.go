// Package revocation stores the IDs of logged-out tokens until they expire.
package revocation

import (
	"context"
	"log/slog"

	"agadev/config"
	"agadev/internal/domain/lifecycle"
	"agadev/internal/domain/service"

	"go.uber.org/fx"
)

// Params defines the parameters required for the token revoker
type Params struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Lifecycle fx.Lifecycle
}

// NewTokenRevoker uses Redis when redis.url is set and an in-process set otherwise.
func NewTokenRevoker(params Params) (service.TokenRevoker, error) {
	if params.Config.Redis == nil || params.Config.Redis.URL == "" {
		params.Logger.Info("Token revocation uses in-memory storage")

		return NewMemoryRevoker(nil), nil
	}

	revoker, err := NewRedisRevoker(params.Config.Redis.URL, params.Config.Redis.Prefix)
	if err != nil {
		return nil, err
	}

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := revoker.Ping(pingCtx); err != nil {
				return err
			}
			params.Logger.Info("Token revocation uses redis", slog.String("prefix", revoker.prefix))

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return revoker.Close()
		},
	})

	return revoker, nil
}
