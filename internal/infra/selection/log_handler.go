// Package selection delivers placemark selections to interested parties.
package selection

import (
	"context"
	"log/slog"

	deliverycontext "servicemap/internal/delivery/context"
	"servicemap/internal/domain/entity"
	"servicemap/internal/domain/service"
)

type logHandler struct {
	logger *slog.Logger
}

// NewLogHandler records every selection in the request-scoped log.
func NewLogHandler(logger *slog.Logger) service.PlacemarkSelectionHandler {
	return &logHandler{logger: logger}
}

func (h *logHandler) OnPlacemarkSelected(ctx context.Context, placemark entity.Placemark) {
	deliverycontext.GetLoggerOrDefault(ctx, h.logger).InfoContext(ctx, "Placemark selected",
		slog.String("title", placemark.Title),
		slog.Float64("latitude", placemark.Coordinate.Latitude),
		slog.Float64("longitude", placemark.Coordinate.Longitude),
	)
}
