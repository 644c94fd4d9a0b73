package entity

// Placemark is a resolved geographic point with an optional structured address.
type Placemark struct {
	Coordinate Coordinate     `json:"coordinate"`
	Title      string         `json:"title,omitempty"`
	Address    *PostalAddress `json:"address,omitempty"`
}

// MapRegion is the area the map surface should frame.
type MapRegion struct {
	Center         Coordinate `json:"center"`
	RadiusMeters   float64    `json:"radius_meters,omitempty"`
	LatitudeDelta  float64    `json:"latitude_delta"`
	LongitudeDelta float64    `json:"longitude_delta"`
	Bounds         Bounds     `json:"bounds"`
}

// Bounds is a south-west / north-east box.
type Bounds struct {
	SouthWest Coordinate `json:"south_west"`
	NorthEast Coordinate `json:"north_east"`
}
