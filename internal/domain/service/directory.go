// Package service declares the external collaborators the map screen depends on.
package service

import (
	"context"

	"servicemap/internal/domain/entity"
)

// DirectoryFilter narrows a directory fetch. A nil filter fetches everything.
type DirectoryFilter struct {
	Categories []entity.Category
}

// DirectoryService is the remote service-location directory.
type DirectoryService interface {
	// GetServiceLocations returns the directory entries matching filter.
	// A nil slice with a nil error means the directory had no result.
	GetServiceLocations(ctx context.Context, filter *DirectoryFilter) ([]*entity.ServiceLocation, error)
}
