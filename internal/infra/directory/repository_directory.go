package directory

import (
	"context"

	"servicemap/internal/domain/entity"
	"servicemap/internal/domain/repository"
	"servicemap/internal/domain/service"

	"github.com/pkg/errors"
)

// repositoryDirectory serves the directory straight from its database table.
type repositoryDirectory struct {
	repo repository.ServiceLocationRepository
}

// NewRepositoryDirectory wraps a ServiceLocationRepository as a DirectoryService.
func NewRepositoryDirectory(repo repository.ServiceLocationRepository) service.DirectoryService {
	return &repositoryDirectory{repo: repo}
}

func (d *repositoryDirectory) GetServiceLocations(ctx context.Context, filter *service.DirectoryFilter) ([]*entity.ServiceLocation, error) {
	var categories []entity.Category
	if filter != nil {
		categories = filter.Categories
	}

	locations, err := d.repo.FindServiceLocations(ctx, categories)
	if err != nil {
		return nil, errors.WithMessage(err, "repository directory")
	}

	return locations, nil
}
