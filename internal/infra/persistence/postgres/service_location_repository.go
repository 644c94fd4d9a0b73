// Package postgres reads the service-location directory from PostgreSQL using GORM.
package postgres

import (
	"context"

	"servicemap/internal/domain/entity"
	domainerrors "servicemap/internal/domain/errors"
	"servicemap/internal/domain/repository"
	"servicemap/internal/infra/persistence/model"
	"servicemap/internal/infra/persistence/postgres/query"

	"gorm.io/gorm"
)

type serviceLocationRepository struct {
	q *query.Query
}

// NewServiceLocationRepository is the constructor for serviceLocationRepository.
// It returns nil when no database is configured.
func NewServiceLocationRepository(db *gorm.DB) repository.ServiceLocationRepository {
	if db == nil {
		return nil
	}

	return &serviceLocationRepository{q: query.Use(db)}
}

// FindServiceLocations returns directory entries ordered as the directory lists them.
// Reads go to a replica when go-lib registered any.
func (repo *serviceLocationRepository) FindServiceLocations(ctx context.Context, categories []entity.Category) ([]*entity.ServiceLocation, error) {
	sl := repo.q.ServiceLocationModel
	do := sl.WithContext(ctx).ReadDB()
	if labels := categoryLabels(categories); len(labels) > 0 {
		do = do.Where(sl.Category.In(labels...))
	}

	rows, err := do.Order(sl.SortOrder.Asc(), sl.CreatedAt.Asc()).Find()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find service locations")
	}

	locations := make([]*entity.ServiceLocation, 0, len(rows))
	for _, row := range rows {
		locations = append(locations, toServiceLocationDomain(row))
	}

	return locations, nil
}

func categoryLabels(categories []entity.Category) []string {
	if len(categories) == 0 {
		return nil
	}

	labels := make([]string, 0, len(categories))
	for _, category := range categories {
		labels = append(labels, category.String())
	}

	return labels
}

// --- Mapper Functions ---

// toServiceLocationDomain converts a GORM ServiceLocationModel to a domain ServiceLocation entity.
func toServiceLocationDomain(data *model.ServiceLocationModel) *entity.ServiceLocation {
	if data == nil {
		return nil
	}

	return &entity.ServiceLocation{
		ID:        data.ID,
		Name:      data.Name,
		Category:  entity.ParseCategory(data.Category),
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
	}
}
