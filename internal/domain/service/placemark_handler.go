package service

import (
	"context"

	"servicemap/internal/domain/entity"
)

// PlacemarkSelectionHandler is notified when a search result is picked and the map drops a pin.
type PlacemarkSelectionHandler interface {
	OnPlacemarkSelected(ctx context.Context, placemark entity.Placemark)
}

// PlacemarkSelectionFunc adapts a function to PlacemarkSelectionHandler.
type PlacemarkSelectionFunc func(ctx context.Context, placemark entity.Placemark)

// OnPlacemarkSelected calls f.
func (f PlacemarkSelectionFunc) OnPlacemarkSelected(ctx context.Context, placemark entity.Placemark) {
	f(ctx, placemark)
}
