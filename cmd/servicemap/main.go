package main

import (
	"context"
	"log/slog"
	"os"

	"servicemap/config"
	"servicemap/internal/delivery"
	"servicemap/internal/delivery/http"
	"servicemap/internal/delivery/http/router/handler"
	"servicemap/internal/infra/directory"
	"servicemap/internal/infra/locationstate"
	logs "servicemap/internal/infra/log"
	"servicemap/internal/infra/persistence/postgres"
	"servicemap/internal/infra/selection"
	"servicemap/internal/usecase"
	"servicemap/internal/usecase/impl"

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
		injectHandler(),
		fx.Invoke(
			loadDirectory,
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
			postgres.NewServiceLocationRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			directory.New,
			locationstate.New,
			selection.NewLogHandler,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewMapService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewMapHandler,
			handler.NewAddressHandler,
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

// loadDirectory fills the map once the app has started. The fetch outlives
// the start hook, so it gets its own context, cancelled on stop.
func loadDirectory(ctx context.Context, lc fx.Lifecycle, mapUC usecase.MapUsecase) {
	loadCtx, cancel := context.WithCancel(ctx)

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			mapUC.Load(loadCtx)

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()

			return nil
		},
	})
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
