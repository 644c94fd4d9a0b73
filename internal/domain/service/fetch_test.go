package service_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"servicemap/internal/domain/entity"
	"servicemap/internal/domain/service"
	mockService "servicemap/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fetchResult struct {
	locations []*entity.ServiceLocation
	ok        bool
}

func fetchAndWait(t *testing.T, svc service.DirectoryService, filter *service.DirectoryFilter) fetchResult {
	t.Helper()

	results := make(chan fetchResult, 2)
	service.Fetch(context.Background(), svc, filter, slog.Default(), func(locations []*entity.ServiceLocation, ok bool) {
		results <- fetchResult{locations: locations, ok: ok}
	})

	select {
	case res := <-results:
		select {
		case <-results:
			t.Fatal("callback invoked more than once")
		case <-time.After(20 * time.Millisecond):
		}

		return res
	case <-time.After(time.Second):
		t.Fatal("callback was not invoked")
	}

	return fetchResult{}
}

func TestFetch_Success(t *testing.T) {
	svc := mockService.NewMockDirectoryService(t)
	filter := &service.DirectoryFilter{Categories: []entity.Category{entity.CategoryDorm}}
	expected := []*entity.ServiceLocation{{Name: "Jester West"}}

	svc.EXPECT().GetServiceLocations(context.Background(), filter).Return(expected, nil)

	res := fetchAndWait(t, svc, filter)
	require.True(t, res.ok)
	assert.Equal(t, expected, res.locations)
}

func TestFetch_EmptyDirectoryIsAResult(t *testing.T) {
	svc := mockService.NewMockDirectoryService(t)
	svc.EXPECT().GetServiceLocations(context.Background(), (*service.DirectoryFilter)(nil)).Return([]*entity.ServiceLocation{}, nil)

	res := fetchAndWait(t, svc, nil)
	assert.True(t, res.ok)
	assert.Empty(t, res.locations)
}

func TestFetch_AbsentResult(t *testing.T) {
	svc := mockService.NewMockDirectoryService(t)
	svc.EXPECT().GetServiceLocations(context.Background(), (*service.DirectoryFilter)(nil)).Return(nil, nil)

	res := fetchAndWait(t, svc, nil)
	assert.False(t, res.ok)
	assert.Nil(t, res.locations)
}

func TestFetch_ErrorIsReportedAsAbsent(t *testing.T) {
	svc := mockService.NewMockDirectoryService(t)
	svc.EXPECT().GetServiceLocations(context.Background(), (*service.DirectoryFilter)(nil)).Return(nil, errors.New("timeout"))

	res := fetchAndWait(t, svc, nil)
	assert.False(t, res.ok)
	assert.Nil(t, res.locations)
}
