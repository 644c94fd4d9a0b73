package geo

import (
	"testing"

	"servicemap/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestRegionAround(t *testing.T) {
	center := entity.Coordinate{Latitude: 30.2895659, Longitude: -97.739267}

	region := RegionAround(center, 1500)

	assert.Equal(t, center, region.Center)
	assert.Equal(t, 1500.0, region.RadiusMeters)
	// 1500 m either side is roughly 0.027 degrees of latitude.
	assert.InDelta(t, 0.027, region.LatitudeDelta, 0.001)
	assert.Greater(t, region.LongitudeDelta, region.LatitudeDelta)
	assert.Less(t, region.Bounds.SouthWest.Latitude, center.Latitude)
	assert.Greater(t, region.Bounds.NorthEast.Latitude, center.Latitude)
	assert.Less(t, region.Bounds.SouthWest.Longitude, center.Longitude)
	assert.Greater(t, region.Bounds.NorthEast.Longitude, center.Longitude)
}

func TestPinRegion(t *testing.T) {
	center := entity.Coordinate{Latitude: 30.28, Longitude: -97.73}

	region := PinRegion(center, 0.01)

	assert.Equal(t, center, region.Center)
	assert.Equal(t, 0.01, region.LatitudeDelta)
	assert.Equal(t, 0.01, region.LongitudeDelta)
	assert.InDelta(t, 30.275, region.Bounds.SouthWest.Latitude, 1e-9)
	assert.InDelta(t, -97.725, region.Bounds.NorthEast.Longitude, 1e-9)
	// Half of 0.01 degrees latitude is about 556 m.
	assert.InDelta(t, 556, region.RadiusMeters, 5)
}
