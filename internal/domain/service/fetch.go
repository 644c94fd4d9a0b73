package service

import (
	"context"
	"log/slog"

	"servicemap/internal/domain/entity"
)

// FetchCallback receives the result of Fetch. ok is false when the directory
// produced no result, either because it failed or because it returned nothing.
type FetchCallback func(locations []*entity.ServiceLocation, ok bool)

// Fetch loads the directory in the background and reports through callback
// exactly once. There is no retry. Errors are logged and reported as ok=false.
func Fetch(ctx context.Context, svc DirectoryService, filter *DirectoryFilter, logger *slog.Logger, callback FetchCallback) {
	go func() {
		locations, ok := FetchSync(ctx, svc, filter, logger)
		callback(locations, ok)
	}()
}

// FetchSync is the blocking form of Fetch.
func FetchSync(ctx context.Context, svc DirectoryService, filter *DirectoryFilter, logger *slog.Logger) ([]*entity.ServiceLocation, bool) {
	locations, err := svc.GetServiceLocations(ctx, filter)
	if err != nil {
		logger.WarnContext(ctx, "Failed to fetch service locations", slog.Any("error", err))

		return nil, false
	}
	if locations == nil {
		logger.DebugContext(ctx, "Directory returned no result")

		return nil, false
	}

	return locations, true
}
