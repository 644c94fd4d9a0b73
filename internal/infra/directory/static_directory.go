package directory

import (
	"context"
	"slices"

	"servicemap/config"
	"servicemap/internal/domain/entity"
	"servicemap/internal/domain/service"

	"github.com/google/uuid"
)

// staticDirectory serves locations declared in configuration.
type staticDirectory struct {
	locations []*entity.ServiceLocation
}

// NewStaticDirectory builds a directory from the directory.locations config list.
// IDs are derived from the entry name so they are stable across restarts.
func NewStaticDirectory(entries []config.StaticLocation) service.DirectoryService {
	locations := make([]*entity.ServiceLocation, 0, len(entries))
	for _, entry := range entries {
		locations = append(locations, &entity.ServiceLocation{
			ID:        uuid.NewSHA1(uuid.NameSpaceOID, []byte(entry.Name)),
			Name:      entry.Name,
			Category:  entity.ParseCategory(entry.Category),
			Latitude:  entry.Latitude,
			Longitude: entry.Longitude,
		})
	}

	return &staticDirectory{locations: locations}
}

// GetServiceLocations returns copies so callers cannot mutate the configured set.
func (d *staticDirectory) GetServiceLocations(_ context.Context, filter *service.DirectoryFilter) ([]*entity.ServiceLocation, error) {
	result := make([]*entity.ServiceLocation, 0, len(d.locations))
	for _, location := range d.locations {
		if filter != nil && len(filter.Categories) > 0 && !slices.Contains(filter.Categories, location.Category) {
			continue
		}
		clone := *location
		result = append(result, &clone)
	}

	return result, nil
}
