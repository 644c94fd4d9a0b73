package service

import "servicemap/internal/domain/entity"

// LocationContext owns the client's location permission and last reported position.
// It replaces a process-wide location manager and is injected where needed.
type LocationContext interface {
	// Update records a new permission state and, when authorized, a position.
	Update(permission entity.LocationPermission, coordinate *entity.Coordinate) entity.UserLocation

	// Current returns the latest state.
	Current() entity.UserLocation
}
