package handler

import (
	"log/slog"
	"net/http"

	"servicemap/internal/delivery/http/response"
	"servicemap/internal/domain/entity"
	domainerrors "servicemap/internal/domain/errors"
	"servicemap/internal/errors"
	"servicemap/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MapHandlerParams holds dependencies for MapHandler, injected by Fx.
type MapHandlerParams struct {
	fx.In

	MapUC  usecase.MapUsecase
	Logger *slog.Logger
}

// MapHandler serves the service-location map screen.
type MapHandler struct {
	mapUC  usecase.MapUsecase
	logger *slog.Logger
}

// NewMapHandler is the constructor for MapHandler
func NewMapHandler(params MapHandlerParams) *MapHandler {
	return &MapHandler{
		mapUC:  params.MapUC,
		logger: params.Logger,
	}
}

// RefreshRequest optionally narrows a refresh to some categories.
type RefreshRequest struct {
	Categories []string `json:"categories" validate:"omitempty,dive,required"`
}

// RefreshResponse reports whether the directory answered and what the screen shows now.
type RefreshResponse struct {
	Refreshed bool                 `json:"refreshed"`
	Map       *usecase.MapSnapshot `json:"map"`
}

// CoordinateRequest is a latitude/longitude pair in degrees.
type CoordinateRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"required,min=-180,max=180"`
}

// PinRequest is a placemark chosen in the search results.
type PinRequest struct {
	Coordinate CoordinateRequest     `json:"coordinate"`
	Title      string                `json:"title"`
	Address    *entity.PostalAddress `json:"address,omitempty"`
}

// UserLocationRequest is the client's location permission and optional position.
type UserLocationRequest struct {
	Permission entity.LocationPermission `json:"permission" validate:"required,oneof=not_determined denied when_in_use always"`
	Latitude   *float64                  `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude  *float64                  `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
}

// GetMap returns the current annotations and the region to frame.
func (h *MapHandler) GetMap(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.mapUC.Snapshot(c.Request().Context()), "")
}

// Refresh reloads the directory. A failed reload is not an HTTP error: the previous state is returned with refreshed=false.
func (h *MapHandler) Refresh(c echo.Context) error {
	var req RefreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	snapshot, refreshed := h.mapUC.Refresh(c.Request().Context(), &usecase.RefreshInput{Categories: req.Categories})

	message := "Service locations refreshed"
	if !refreshed {
		message = "Directory unavailable, showing last known locations"
	}

	return response.Success(c, http.StatusOK, RefreshResponse{Refreshed: refreshed, Map: snapshot}, message)
}

// Search returns the rows for search-as-you-type.
func (h *MapHandler) Search(c echo.Context) error {
	results := h.mapUC.Search(c.Request().Context(), c.QueryParam("q"))

	return response.Success(c, http.StatusOK, results, "")
}

// GetLocation returns one loaded location by directory id.
func (h *MapHandler) GetLocation(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid service location id")
	}

	result, err := h.mapUC.Location(c.Request().Context(), id)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "")
}

// DropPin zooms to a selected placemark.
func (h *MapHandler) DropPin(c echo.Context) error {
	var req PinRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid placemark input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	placemark := entity.Placemark{
		Coordinate: entity.Coordinate{
			Latitude:  *req.Coordinate.Latitude,
			Longitude: *req.Coordinate.Longitude,
		},
		Title:   req.Title,
		Address: req.Address,
	}

	result, err := h.mapUC.DropPin(c.Request().Context(), placemark)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "")
}

// ReportUserLocation stores the client's location permission and position.
func (h *MapHandler) ReportUserLocation(c echo.Context) error {
	var req UserLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	location, err := h.mapUC.ReportUserLocation(c.Request().Context(), &usecase.UserLocationInput{
		Permission: req.Permission,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
	})
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, location, "User location updated")
}

func (h *MapHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.AppError(c, appErr)
	}

	return errors.WithStack(err)
}
