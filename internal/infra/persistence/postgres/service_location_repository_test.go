package postgres

import (
	"testing"

	"servicemap/internal/domain/entity"
	"servicemap/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewServiceLocationRepository_NilDB(t *testing.T) {
	assert.Nil(t, NewServiceLocationRepository(nil))
}

func TestToServiceLocationDomain(t *testing.T) {
	id := uuid.New()
	row := &model.ServiceLocationModel{
		ID:        id,
		Name:      "Gates Dell Complex",
		Category:  "officebuilding",
		Latitude:  30.28625,
		Longitude: -97.7365,
		SortOrder: 4,
	}

	got := toServiceLocationDomain(row)

	assert.Equal(t, &entity.ServiceLocation{
		ID:        id,
		Name:      "Gates Dell Complex",
		Category:  entity.CategoryOfficeBuilding,
		Latitude:  30.28625,
		Longitude: -97.7365,
	}, got)
	assert.Nil(t, toServiceLocationDomain(nil))
}

func TestToServiceLocationDomain_UnknownCategory(t *testing.T) {
	got := toServiceLocationDomain(&model.ServiceLocationModel{Name: "Kiosk", Category: "vending"})

	assert.Equal(t, entity.CategoryOther, got.Category)
}

func TestCategoryLabels(t *testing.T) {
	assert.Nil(t, categoryLabels(nil))
	assert.Equal(t,
		[]string{"dorm", "library"},
		categoryLabels([]entity.Category{entity.CategoryDorm, entity.CategoryLibrary}),
	)
}
