// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/google/uuid"
)

// ServiceLocation is a single entry of the service-location directory.
// The directory owns these records; this service only reads them.
type ServiceLocation struct {
	ID        uuid.UUID // Directory identifier of the location.
	Name      string    // Display name, matched by search.
	Category  Category  // What kind of place this is.
	Latitude  float64   // The geographic latitude.
	Longitude float64   // The geographic longitude.
}

// Coordinate returns the location's position.
func (l *ServiceLocation) Coordinate() Coordinate {
	return Coordinate{Latitude: l.Latitude, Longitude: l.Longitude}
}

// HasPosition reports whether the location carries a real coordinate.
// (0, 0) is the directory's "unset" value.
func (l *ServiceLocation) HasPosition() bool {
	return !l.Coordinate().IsZero()
}
