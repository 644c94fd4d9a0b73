// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"servicemap/internal/domain/entity"
)

// ServiceLocationRepository reads the service-location directory table.
type ServiceLocationRepository interface {
	// FindServiceLocations returns directory entries in directory order.
	// A nil or empty category list returns every entry.
	FindServiceLocations(ctx context.Context, categories []entity.Category) ([]*entity.ServiceLocation, error)
}
