package directory

import (
	"context"
	"testing"

	"servicemap/config"
	"servicemap/internal/domain/entity"
	"servicemap/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var staticEntries = []config.StaticLocation{
	{Name: "Jester West", Category: "dorm", Latitude: 30.28293, Longitude: -97.73681},
	{Name: "PCL", Category: "Library", Latitude: 30.28268, Longitude: -97.7381},
	{Name: "Kiosk", Category: "vending"},
}

func TestStaticDirectory_ReturnsEntriesInOrder(t *testing.T) {
	dir := NewStaticDirectory(staticEntries)

	locations, err := dir.GetServiceLocations(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, locations, 3)

	assert.Equal(t, "Jester West", locations[0].Name)
	assert.Equal(t, entity.CategoryLibrary, locations[1].Category)
	assert.Equal(t, entity.CategoryOther, locations[2].Category)
}

func TestStaticDirectory_FilterByCategory(t *testing.T) {
	dir := NewStaticDirectory(staticEntries)

	locations, err := dir.GetServiceLocations(context.Background(), &service.DirectoryFilter{
		Categories: []entity.Category{entity.CategoryLibrary, entity.CategoryOther},
	})
	require.NoError(t, err)
	require.Len(t, locations, 2)
	assert.Equal(t, "PCL", locations[0].Name)
	assert.Equal(t, "Kiosk", locations[1].Name)
}

func TestStaticDirectory_ReturnsCopies(t *testing.T) {
	dir := NewStaticDirectory(staticEntries)

	first, err := dir.GetServiceLocations(context.Background(), nil)
	require.NoError(t, err)
	first[0].Name = "mutated"

	second, err := dir.GetServiceLocations(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "Jester West", second[0].Name)
	assert.Equal(t, first[0].ID, second[0].ID)
}

func TestStaticDirectory_Empty(t *testing.T) {
	locations, err := NewStaticDirectory(nil).GetServiceLocations(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, locations)
	assert.Empty(t, locations)
}
