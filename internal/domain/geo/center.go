// Package geo computes where the map should be framed.
package geo

import (
	"servicemap/internal/domain/entity"
)

// AverageCoordinate returns the mean position of all locations that carry a
// coordinate. Locations at exactly (0, 0) are treated as unset and skipped.
//
// fallback is returned when no location has a position, and also when either
// averaged component comes out as exactly 0. The latter means points that
// cancel out across the equator or prime meridian also frame the fallback.
func AverageCoordinate(locations []*entity.ServiceLocation, fallback entity.Coordinate) entity.Coordinate {
	var sumLatitude, sumLongitude float64
	count := 0

	for _, location := range locations {
		if location == nil || !location.HasPosition() {
			continue
		}
		sumLatitude += location.Latitude
		sumLongitude += location.Longitude
		count++
	}

	if count == 0 {
		return fallback
	}

	average := entity.Coordinate{
		Latitude:  sumLatitude / float64(count),
		Longitude: sumLongitude / float64(count),
	}
	if average.Latitude == 0 || average.Longitude == 0 {
		return fallback
	}

	return average
}
