package main

import (
	"context"
	"log/slog"
	"os"

	"agadev/config"
	"agadev/internal/delivery"
	"agadev/internal/delivery/http"
	"agadev/internal/delivery/http/middleware"
	"agadev/internal/delivery/http/router/handler"
	"agadev/internal/infra/auth"
	logs "agadev/internal/infra/log"
	"agadev/internal/infra/persistence/postgres"
	"agadev/internal/infra/pubsub"
	"agadev/internal/infra/qrcode"
	"agadev/internal/infra/revocation"
	"agadev/internal/infra/sanitize"
	"agadev/internal/infra/storage"
	"agadev/internal/infra/translation"
	"agadev/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAdminUserRepository,
			postgres.NewNewsRepository,
			postgres.NewProjectRepository,
			postgres.NewMediaRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			revocation.NewTokenRevoker,
			translation.NewTranslator,
			sanitize.NewHTMLSanitizer,
			storage.NewAssetStorage,
			pubsub.NewEventPublisher,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewNewsService,
			impl.NewProjectService,
			impl.NewMediaService,
			impl.NewAdminService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewNewsHandler,
			handler.NewProjectHandler,
			handler.NewMediaHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
