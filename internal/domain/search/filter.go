// Package search implements search-as-you-type over the service-location directory.
package search

import (
	"strings"

	"servicemap/internal/domain/entity"
)

// Filter returns annotations for every location whose name starts with query.
// The comparison is case-sensitive and the input order is preserved.
// An empty query matches nothing.
func Filter(locations []*entity.ServiceLocation, query string) []entity.Annotation {
	matches := make([]entity.Annotation, 0)
	if query == "" {
		return matches
	}

	for _, location := range locations {
		if location == nil {
			continue
		}
		if strings.HasPrefix(location.Name, query) {
			matches = append(matches, ToAnnotation(location))
		}
	}

	return matches
}

// ToAnnotation maps a location to its map marker.
func ToAnnotation(location *entity.ServiceLocation) entity.Annotation {
	return entity.Annotation{
		Title:      location.Name,
		Subtitle:   location.Category.String(),
		Coordinate: location.Coordinate(),
		Category:   location.Category,
	}
}

// Annotations maps every location, skipping nil entries.
func Annotations(locations []*entity.ServiceLocation) []entity.Annotation {
	annotations := make([]entity.Annotation, 0, len(locations))
	for _, location := range locations {
		if location == nil {
			continue
		}
		annotations = append(annotations, ToAnnotation(location))
	}

	return annotations
}
