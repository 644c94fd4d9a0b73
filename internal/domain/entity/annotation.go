package entity

// Annotation is a renderable map marker derived from a ServiceLocation.
// It is created per render pass and handed to the map surface.
type Annotation struct {
	Title      string     `json:"title"`
	Subtitle   string     `json:"subtitle"`
	Coordinate Coordinate `json:"coordinate"`
	Category   Category   `json:"category"`
}
