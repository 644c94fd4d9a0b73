package geo

import (
	"servicemap/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// RegionAround frames a circle of radiusMeters around center.
func RegionAround(center entity.Coordinate, radiusMeters float64) entity.MapRegion {
	bound := geo.NewBoundAroundPoint(center.Point(), radiusMeters)

	return entity.MapRegion{
		Center:         center,
		RadiusMeters:   radiusMeters,
		LatitudeDelta:  bound.Max.Lat() - bound.Min.Lat(),
		LongitudeDelta: bound.Max.Lon() - bound.Min.Lon(),
		Bounds:         toBounds(bound),
	}
}

// PinRegion frames a fixed span in degrees around a dropped pin.
func PinRegion(center entity.Coordinate, spanDegrees float64) entity.MapRegion {
	half := spanDegrees / 2
	bound := orb.Bound{
		Min: orb.Point{center.Longitude - half, center.Latitude - half},
		Max: orb.Point{center.Longitude + half, center.Latitude + half},
	}

	return entity.MapRegion{
		Center:         center,
		RadiusMeters:   geo.Distance(center.Point(), orb.Point{center.Longitude, center.Latitude + half}),
		LatitudeDelta:  spanDegrees,
		LongitudeDelta: spanDegrees,
		Bounds:         toBounds(bound),
	}
}

func toBounds(b orb.Bound) entity.Bounds {
	return entity.Bounds{
		SouthWest: entity.CoordinateFromPoint(b.Min),
		NorthEast: entity.CoordinateFromPoint(b.Max),
	}
}
