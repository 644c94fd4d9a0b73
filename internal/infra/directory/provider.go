// Package directory provides the service-location directory implementations.
package directory

import (
	"log/slog"

	"servicemap/config"
	"servicemap/internal/domain/repository"
	"servicemap/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the DirectoryService, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Repo   repository.ServiceLocationRepository `optional:"true"`
}

// New selects the directory implementation from directory.source.
func New(params Params) (service.DirectoryService, error) {
	cfg := params.Config.Directory
	logger := params.Logger

	switch cfg.Source {
	case config.DirectorySourceHTTP:
		logger.Info("Using HTTP service-location directory",
			slog.String("endpoint", cfg.Endpoint),
			slog.Duration("timeout", cfg.Timeout),
		)

		return NewHTTPDirectory(cfg.Endpoint, cfg.Timeout, logger), nil

	case config.DirectorySourcePostgres:
		if params.Repo == nil {
			return nil, errors.New("postgres directory requires a configured database")
		}
		logger.Info("Using PostgreSQL service-location directory")

		return NewRepositoryDirectory(params.Repo), nil

	case config.DirectorySourceStatic:
		logger.Info("Using static service-location directory",
			slog.Int("locations", len(cfg.Locations)),
		)

		return NewStaticDirectory(cfg.Locations), nil

	default:
		return nil, errors.Errorf("unknown directory source: %s", cfg.Source)
	}
}
