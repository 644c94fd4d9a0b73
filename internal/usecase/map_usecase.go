package usecase

import (
	"context"
	"time"

	"servicemap/internal/domain/entity"

	"github.com/google/uuid"
)

// RefreshInput narrows a directory reload to some categories.
type RefreshInput struct {
	Categories []string `json:"categories"`
}

// UserLocationInput is a permission/position report from the client.
type UserLocationInput struct {
	Permission entity.LocationPermission `json:"permission"`
	Latitude   *float64                  `json:"latitude,omitempty"`
	Longitude  *float64                  `json:"longitude,omitempty"`
}

// MapSnapshot is everything the map surface needs to draw the screen.
type MapSnapshot struct {
	Annotations  []entity.Annotation  `json:"annotations"`
	Region       entity.MapRegion     `json:"region"`
	UserLocation *entity.UserLocation `json:"user_location,omitempty"`
	LoadedAt     *time.Time           `json:"loaded_at,omitempty"`
}

// PinResult is the answer to a placemark selection.
type PinResult struct {
	Placemark entity.Placemark `json:"placemark"`
	Region    entity.MapRegion `json:"region"`
}

// LocationResult is one loaded directory entry and the region that frames it.
type LocationResult struct {
	ID         uuid.UUID         `json:"id"`
	Annotation entity.Annotation `json:"annotation"`
	Region     entity.MapRegion  `json:"region"`
}

// MapUsecase defines the use cases of the service-location map screen
type MapUsecase interface {
	// Load starts a background directory fetch. It returns immediately.
	Load(ctx context.Context)

	// Refresh reloads the directory synchronously. refreshed is false when the
	// directory had no result, in which case the previous state is kept.
	Refresh(ctx context.Context, input *RefreshInput) (snapshot *MapSnapshot, refreshed bool)

	// Snapshot returns the current annotations and map framing.
	Snapshot(ctx context.Context) *MapSnapshot

	// Search filters the current locations by name prefix.
	Search(ctx context.Context, query string) []entity.Annotation

	// Location looks up a loaded location by its directory id.
	Location(ctx context.Context, id uuid.UUID) (*LocationResult, error)

	// DropPin frames a selected placemark and notifies the selection handler.
	DropPin(ctx context.Context, placemark entity.Placemark) (*PinResult, error)

	// ReportUserLocation records the client's permission and position.
	ReportUserLocation(ctx context.Context, input *UserLocationInput) (*entity.UserLocation, error)
}
