package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"servicemap/internal/delivery/http/response"
	"servicemap/internal/delivery/http/validator"
	"servicemap/internal/domain/entity"
	domainerrors "servicemap/internal/domain/errors"
	mockusecase "servicemap/internal/mocks/usecase"
	"servicemap/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMapHandler(t *testing.T) (*MapHandler, *mockusecase.MockMapUsecase, *echo.Echo) {
	t.Helper()

	mapUC := mockusecase.NewMockMapUsecase(t)
	h := NewMapHandler(MapHandlerParams{MapUC: mapUC, Logger: slog.Default()})

	e := echo.New()
	e.Validator = validator.New()

	return h, mapUC, e
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, data any) response.Response {
	t.Helper()

	body := response.Response{Data: data}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestMapHandler_GetMap(t *testing.T) {
	h, mapUC, e := newMapHandler(t)

	snapshot := &usecase.MapSnapshot{
		Annotations: []entity.Annotation{{Title: "Jester West", Subtitle: "dorm"}},
		Region:      entity.MapRegion{Center: entity.Coordinate{Latitude: 30.28, Longitude: -97.73}, RadiusMeters: 1500},
	}
	mapUC.EXPECT().Snapshot(mock.Anything).Return(snapshot)

	req := httptest.NewRequest(http.MethodGet, "/v1/map", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.GetMap(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var got usecase.MapSnapshot
	body := decode(t, rec, &got)
	assert.True(t, body.Success)
	assert.Equal(t, snapshot.Annotations, got.Annotations)
	assert.Equal(t, 1500.0, got.Region.RadiusMeters)
}

func TestMapHandler_Refresh(t *testing.T) {
	t.Run("passes categories through", func(t *testing.T) {
		h, mapUC, e := newMapHandler(t)

		mapUC.EXPECT().
			Refresh(mock.Anything, &usecase.RefreshInput{Categories: []string{"dorm"}}).
			Return(&usecase.MapSnapshot{}, true)

		req := httptest.NewRequest(http.MethodPost, "/v1/map/refresh", strings.NewReader(`{"categories":["dorm"]}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		require.NoError(t, h.Refresh(e.NewContext(req, rec)))

		var got RefreshResponse
		decode(t, rec, &got)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, got.Refreshed)
	})

	t.Run("directory failure is not an HTTP error", func(t *testing.T) {
		h, mapUC, e := newMapHandler(t)

		kept := &usecase.MapSnapshot{Annotations: []entity.Annotation{{Title: "PCL"}}}
		mapUC.EXPECT().Refresh(mock.Anything, mock.Anything).Return(kept, false)

		req := httptest.NewRequest(http.MethodPost, "/v1/map/refresh", nil)
		rec := httptest.NewRecorder()

		require.NoError(t, h.Refresh(e.NewContext(req, rec)))

		var got RefreshResponse
		body := decode(t, rec, &got)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, body.Success)
		assert.False(t, got.Refreshed)
		require.NotNil(t, got.Map)
		assert.Equal(t, "PCL", got.Map.Annotations[0].Title)
	})
}

func TestMapHandler_Search(t *testing.T) {
	h, mapUC, e := newMapHandler(t)

	mapUC.EXPECT().Search(mock.Anything, "Jes").Return([]entity.Annotation{{Title: "Jester West"}})

	req := httptest.NewRequest(http.MethodGet, "/v1/map/search?q=Jes", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Search(e.NewContext(req, rec)))

	var got []entity.Annotation
	decode(t, rec, &got)
	require.Len(t, got, 1)
	assert.Equal(t, "Jester West", got[0].Title)
}

func TestMapHandler_GetLocation(t *testing.T) {
	locationContext := func(e *echo.Echo, rawID string) (echo.Context, *httptest.ResponseRecorder) {
		req := httptest.NewRequest(http.MethodGet, "/v1/map/locations/"+rawID, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues(rawID)

		return c, rec
	}

	t.Run("loaded location", func(t *testing.T) {
		h, mapUC, e := newMapHandler(t)
		id := uuid.New()

		mapUC.EXPECT().Location(mock.Anything, id).Return(&usecase.LocationResult{
			ID:         id,
			Annotation: entity.Annotation{Title: "Jester West", Subtitle: "dorm"},
		}, nil)

		c, rec := locationContext(e, id.String())
		require.NoError(t, h.GetLocation(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var got usecase.LocationResult
		decode(t, rec, &got)
		assert.Equal(t, id, got.ID)
		assert.Equal(t, "Jester West", got.Annotation.Title)
	})

	t.Run("unknown id renders not found", func(t *testing.T) {
		h, mapUC, e := newMapHandler(t)
		id := uuid.New()

		mapUC.EXPECT().Location(mock.Anything, id).
			Return(nil, domainerrors.ErrNotFound.WithDetails("service location "+id.String()+" is not loaded"))

		c, rec := locationContext(e, id.String())
		require.NoError(t, h.GetLocation(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)

		body := decode(t, rec, nil)
		require.NotNil(t, body.Error)
		assert.Equal(t, "NOT_FOUND", body.Error.Code)
		assert.Contains(t, body.Error.Details, id.String())
	})

	t.Run("malformed id is rejected before the usecase", func(t *testing.T) {
		h, _, e := newMapHandler(t)

		c, rec := locationContext(e, "not-a-uuid")
		require.NoError(t, h.GetLocation(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		body := decode(t, rec, nil)
		require.NotNil(t, body.Error)
		assert.Equal(t, "INVALID_ID", body.Error.Code)
	})
}

func TestMapHandler_DropPin(t *testing.T) {
	t.Run("valid placemark", func(t *testing.T) {
		h, mapUC, e := newMapHandler(t)

		want := entity.Placemark{Coordinate: entity.Coordinate{Latitude: 30.2849, Longitude: -97.7341}, Title: "Tower"}
		mapUC.EXPECT().DropPin(mock.Anything, want).Return(&usecase.PinResult{
			Placemark: want,
			Region:    entity.MapRegion{Center: want.Coordinate, LatitudeDelta: 0.01, LongitudeDelta: 0.01},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/map/pin",
			strings.NewReader(`{"coordinate":{"latitude":30.2849,"longitude":-97.7341},"title":"Tower"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		require.NoError(t, h.DropPin(e.NewContext(req, rec)))

		var got usecase.PinResult
		decode(t, rec, &got)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 0.01, got.Region.LatitudeDelta)
	})

	t.Run("out of range latitude is rejected before the usecase", func(t *testing.T) {
		h, _, e := newMapHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/map/pin",
			strings.NewReader(`{"coordinate":{"latitude":95,"longitude":0}}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		require.NoError(t, h.DropPin(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing coordinate is rejected", func(t *testing.T) {
		h, _, e := newMapHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/map/pin", strings.NewReader(`{"title":"nowhere"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		require.NoError(t, h.DropPin(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestMapHandler_ReportUserLocation(t *testing.T) {
	t.Run("authorized with position", func(t *testing.T) {
		h, mapUC, e := newMapHandler(t)

		mapUC.EXPECT().
			ReportUserLocation(mock.Anything, mock.MatchedBy(func(in *usecase.UserLocationInput) bool {
				return in.Permission == entity.LocationPermissionWhenInUse && in.Latitude != nil && *in.Latitude == 30.29
			})).
			Return(&entity.UserLocation{Permission: entity.LocationPermissionWhenInUse}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/map/user-location",
			strings.NewReader(`{"permission":"when_in_use","latitude":30.29,"longitude":-97.74}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		require.NoError(t, h.ReportUserLocation(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("usecase error is rendered with its status", func(t *testing.T) {
		h, mapUC, e := newMapHandler(t)

		mapUC.EXPECT().ReportUserLocation(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserLocationUnavailable)

		req := httptest.NewRequest(http.MethodPut, "/v1/map/user-location",
			strings.NewReader(`{"permission":"denied","latitude":30.29,"longitude":-97.74}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		require.NoError(t, h.ReportUserLocation(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusForbidden, rec.Code)

		body := decode(t, rec, nil)
		require.NotNil(t, body.Error)
		assert.Equal(t, "USER_LOCATION_UNAVAILABLE", body.Error.Code)
	})

	t.Run("unknown permission is rejected", func(t *testing.T) {
		h, _, e := newMapHandler(t)

		req := httptest.NewRequest(http.MethodPut, "/v1/map/user-location", strings.NewReader(`{"permission":"sometimes"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		require.NoError(t, h.ReportUserLocation(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
