package entity

import "time"

// LocationPermission mirrors the platform's location authorization states.
type LocationPermission string

const (
	LocationPermissionNotDetermined LocationPermission = "not_determined"
	LocationPermissionDenied        LocationPermission = "denied"
	LocationPermissionWhenInUse     LocationPermission = "when_in_use"
	LocationPermissionAlways        LocationPermission = "always"
)

// Authorized reports whether the permission allows reading the user's position.
func (p LocationPermission) Authorized() bool {
	return p == LocationPermissionWhenInUse || p == LocationPermissionAlways
}

// UserLocation is the last position reported by the client together with its permission state.
type UserLocation struct {
	Permission LocationPermission `json:"permission"`
	Coordinate *Coordinate        `json:"coordinate,omitempty"`
	ReportedAt time.Time          `json:"reported_at"`
}
