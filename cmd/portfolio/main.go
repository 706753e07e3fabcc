package main

import (
	"context"
	"log/slog"
	"os"

	"portfolio/config"
	"portfolio/internal/delivery"
	"portfolio/internal/delivery/http"
	httpmiddleware "portfolio/internal/delivery/http/middleware"
	"portfolio/internal/delivery/http/router/handler"
	requestid "portfolio/internal/delivery/middleware"
	"portfolio/internal/infra/auth"
	logs "portfolio/internal/infra/log"
	"portfolio/internal/infra/persistence/postgres"
	"portfolio/internal/infra/ratelimit"
	"portfolio/internal/usecase/impl"

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
			postgres.NewUserRepository,
			postgres.NewProjectRepository,
			postgres.NewSkillRepository,
			postgres.NewExperienceRepository,
			postgres.NewEducationRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			ratelimit.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewIdentityService,
			impl.NewAuthService,
			impl.NewProfileService,
			impl.NewProjectService,
			impl.NewSkillService,
			impl.NewExperienceService,
			impl.NewContactService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			requestid.NewRequestIDMiddleware,
			httpmiddleware.NewAuthMiddleware,
			httpmiddleware.NewErrorMiddleware,
			httpmiddleware.NewRateLimitMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewProjectHandler,
			handler.NewProfileHandler,
			handler.NewSkillHandler,
			handler.NewExperienceHandler,
			handler.NewContactHandler,
			handler.NewHealthHandler,
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
