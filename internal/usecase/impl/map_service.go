package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"servicemap/config"
	deliverycontext "servicemap/internal/delivery/context"
	"servicemap/internal/domain/address"
	"servicemap/internal/domain/entity"
	domainerrors "servicemap/internal/domain/errors"
	"servicemap/internal/domain/geo"
	"servicemap/internal/domain/search"
	"servicemap/internal/domain/service"
	"servicemap/internal/usecase"

	"github.com/google/uuid"
)

type mapService struct {
	directory       service.DirectoryService
	selection       service.PlacemarkSelectionHandler
	locationContext service.LocationContext
	mapConfig       *config.MapConfig
	initialFilter   *service.DirectoryFilter
	logger          *slog.Logger
	now             func() time.Time

	mu        sync.RWMutex
	locations []*entity.ServiceLocation
	loadedAt  time.Time
}

// NewMapService creates the map screen use case.
func NewMapService(
	directory service.DirectoryService,
	selection service.PlacemarkSelectionHandler,
	locationContext service.LocationContext,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.MapUsecase {
	mapConfig := cfg.Map
	if mapConfig == nil {
		mapConfig = config.DefaultMapConfig()
	}

	var initialFilter *service.DirectoryFilter
	if cfg.Directory != nil && len(cfg.Directory.Categories) > 0 {
		initialFilter = &service.DirectoryFilter{Categories: parseCategories(cfg.Directory.Categories)}
	}

	return &mapService{
		directory:       directory,
		selection:       selection,
		locationContext: locationContext,
		mapConfig:       mapConfig,
		initialFilter:   initialFilter,
		logger:          logger,
		now:             time.Now,
	}
}

// Load fetches the directory in the background and applies the result when it arrives.
func (s *mapService) Load(ctx context.Context) {
	service.Fetch(ctx, s.directory, s.initialFilter, s.logger, func(locations []*entity.ServiceLocation, ok bool) {
		if s.apply(locations, ok) {
			s.logger.Info("Service locations loaded", slog.Int("count", len(locations)))
		}
	})
}

// Refresh fetches the directory and replaces the current set on success.
func (s *mapService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.MapSnapshot, bool) {
	filter := s.initialFilter
	if input != nil && len(input.Categories) > 0 {
		filter = &service.DirectoryFilter{Categories: parseCategories(input.Categories)}
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	locations, ok := service.FetchSync(ctx, s.directory, filter, logger)
	refreshed := s.apply(locations, ok)
	if !refreshed {
		logger.WarnContext(ctx, "Directory refresh had no result, keeping current locations")
	}

	return s.Snapshot(ctx), refreshed
}

// apply swaps in a new location set. An absent result leaves the state untouched.
func (s *mapService) apply(locations []*entity.ServiceLocation, ok bool) bool {
	if !ok {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.locations = locations
	s.loadedAt = s.now()

	return true
}

func (s *mapService) Snapshot(_ context.Context) *usecase.MapSnapshot {
	s.mu.RLock()
	locations := s.locations
	loadedAt := s.loadedAt
	s.mu.RUnlock()

	center := geo.AverageCoordinate(locations, s.fallbackCenter())
	snapshot := &usecase.MapSnapshot{
		Annotations: search.Annotations(locations),
		Region:      geo.RegionAround(center, s.mapConfig.RegionRadiusMeters),
	}
	if !loadedAt.IsZero() {
		snapshot.LoadedAt = &loadedAt
	}
	if s.locationContext != nil {
		if current := s.locationContext.Current(); current.Permission.Authorized() && current.Coordinate != nil {
			snapshot.UserLocation = &current
		}
	}

	return snapshot
}

func (s *mapService) Search(_ context.Context, query string) []entity.Annotation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return search.Filter(s.locations, query)
}

// Location serves from the loaded set only; it never calls the directory.
func (s *mapService) Location(_ context.Context, id uuid.UUID) (*usecase.LocationResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, location := range s.locations {
		if location.ID != id {
			continue
		}

		return &usecase.LocationResult{
			ID:         location.ID,
			Annotation: search.ToAnnotation(location),
			Region:     geo.PinRegion(location.Coordinate(), s.mapConfig.PinSpanDegrees),
		}, nil
	}

	return nil, domainerrors.ErrNotFound.WithDetails("service location " + id.String() + " is not loaded")
}

// DropPin zooms to the placemark. A missing title is filled from the address.
func (s *mapService) DropPin(ctx context.Context, placemark entity.Placemark) (*usecase.PinResult, error) {
	if !validCoordinate(placemark.Coordinate) {
		return nil, domainerrors.ErrInvalidCoordinate
	}

	if placemark.Title == "" && placemark.Address != nil {
		placemark.Title = address.Format(*placemark.Address)
	}

	if s.selection != nil {
		s.selection.OnPlacemarkSelected(ctx, placemark)
	}

	return &usecase.PinResult{
		Placemark: placemark,
		Region:    geo.PinRegion(placemark.Coordinate, s.mapConfig.PinSpanDegrees),
	}, nil
}

func (s *mapService) ReportUserLocation(_ context.Context, input *usecase.UserLocationInput) (*entity.UserLocation, error) {
	if (input.Latitude == nil) != (input.Longitude == nil) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("latitude and longitude must be reported together")
	}

	var coordinate *entity.Coordinate
	if input.Latitude != nil {
		coordinate = &entity.Coordinate{Latitude: *input.Latitude, Longitude: *input.Longitude}
		if !validCoordinate(*coordinate) {
			return nil, domainerrors.ErrInvalidCoordinate
		}
		if !input.Permission.Authorized() {
			return nil, domainerrors.ErrUserLocationUnavailable
		}
	}

	current := s.locationContext.Update(input.Permission, coordinate)

	return &current, nil
}

func (s *mapService) fallbackCenter() entity.Coordinate {
	return entity.Coordinate{
		Latitude:  s.mapConfig.DefaultCenterLatitude,
		Longitude: s.mapConfig.DefaultCenterLongitude,
	}
}

func parseCategories(labels []string) []entity.Category {
	categories := make([]entity.Category, 0, len(labels))
	for _, label := range labels {
		categories = append(categories, entity.ParseCategory(label))
	}

	return categories
}

func validCoordinate(c entity.Coordinate) bool {
	return c.Latitude >= -90 && c.Latitude <= 90 && c.Longitude >= -180 && c.Longitude <= 180
}
