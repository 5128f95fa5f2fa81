package main

import (
	"context"
	"log/slog"
	"os"

	"vetclinic/config"
	"vetclinic/internal/delivery"
	"vetclinic/internal/delivery/http"
	"vetclinic/internal/delivery/http/middleware"
	"vetclinic/internal/delivery/http/router/handler"
	"vetclinic/internal/infra/auth"
	"vetclinic/internal/infra/clock"
	logs "vetclinic/internal/infra/log"
	"vetclinic/internal/infra/persistence/postgres"
	"vetclinic/internal/usecase/impl"

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
			postgres.NewUsuarioRepository,
			postgres.NewMascotaRepository,
			postgres.NewCitaRepository,
			postgres.NewVacunaRepository,
			postgres.NewFacturaRepository,
			postgres.NewRecetaRepository,
			postgres.NewDashboardRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewPBKDF2Hasher,
			auth.NewJWTService,
			clock.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewUsuarioService,
			impl.NewMascotaService,
			impl.NewCitaService,
			impl.NewVacunaService,
			impl.NewFacturaService,
			impl.NewRecetaService,
			impl.NewDashboardService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUsuarioHandler,
			handler.NewMascotaHandler,
			handler.NewCitaHandler,
			handler.NewVacunaHandler,
			handler.NewFacturaHandler,
			handler.NewRecetaHandler,
			handler.NewDashboardHandler,
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
