package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"servicemap/config"
	deliverycontext "servicemap/internal/delivery/context"
	"servicemap/internal/delivery/http/response"
	"servicemap/internal/delivery/http/router"
	"servicemap/internal/delivery/http/router/handler"
	"servicemap/internal/domain/entity"
	domainerrors "servicemap/internal/domain/errors"
	mockusecase "servicemap/internal/mocks/usecase"
	"servicemap/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*echo.Echo, *mockusecase.MockMapUsecase) {
	t.Helper()

	mapUC := mockusecase.NewMockMapUsecase(t)
	cfg := &config.Config{}
	e := newEcho(cfg, slog.Default())

	router.NewRouter(router.RouterParams{
		MapHandler:     handler.NewMapHandler(handler.MapHandlerParams{MapUC: mapUC, Logger: slog.Default()}),
		AddressHandler: handler.NewAddressHandler(),
	}).RegisterRoutes(e)

	return e, mapUC
}

func TestServer_Health(t *testing.T) {
	e, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestServer_RequestIDIsEchoed(t *testing.T) {
	e, mapUC := newTestServer(t)

	mapUC.EXPECT().Search(mock.Anything, "Jes").RunAndReturn(func(ctx context.Context, _ string) []entity.Annotation {
		assert.Equal(t, "req-123", deliverycontext.RequestIDFromContext(ctx))

		return []entity.Annotation{}
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/map/search?q=Jes", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestServer_ErrorEnvelope(t *testing.T) {
	t.Run("unknown route", func(t *testing.T) {
		e, _ := newTestServer(t)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/nowhere", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var body response.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.False(t, body.Success)
		require.NotNil(t, body.Error)
		assert.Equal(t, "HTTP_ERROR", body.Error.Code)
	})

	t.Run("unexpected usecase error hides details", func(t *testing.T) {
		e, mapUC := newTestServer(t)

		mapUC.EXPECT().ReportUserLocation(mock.Anything, mock.Anything).
			Return(nil, errors.New("state store exploded"))

		req := httptest.NewRequest(http.MethodPut, "/v1/map/user-location", strings.NewReader(`{"permission":"denied"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		var body response.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.NotNil(t, body.Error)
		assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
		assert.NotContains(t, rec.Body.String(), "exploded")
	})
}

func TestServer_MapRoute(t *testing.T) {
	e, mapUC := newTestServer(t)

	mapUC.EXPECT().Snapshot(mock.Anything).Return(&usecase.MapSnapshot{Annotations: []entity.Annotation{}})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/map", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_LocationRoute(t *testing.T) {
	t.Run("path id reaches the usecase", func(t *testing.T) {
		e, mapUC := newTestServer(t)
		id := uuid.New()

		mapUC.EXPECT().Location(mock.Anything, id).Return(&usecase.LocationResult{ID: id}, nil)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/map/locations/"+id.String(), nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown id is a 404 envelope", func(t *testing.T) {
		e, mapUC := newTestServer(t)

		mapUC.EXPECT().Location(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrNotFound)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/map/locations/"+uuid.NewString(), nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var body response.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.NotNil(t, body.Error)
		assert.Equal(t, "NOT_FOUND", body.Error.Code)
	})
}
