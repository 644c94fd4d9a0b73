// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"servicemap/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	MapHandler     *handler.MapHandler
	AddressHandler *handler.AddressHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	mapHandler     *handler.MapHandler
	addressHandler *handler.AddressHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		mapHandler:     params.MapHandler,
		addressHandler: params.AddressHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	v1 := e.Group("/v1")

	mapGroup := v1.Group("/map")
	{
		mapGroup.GET("", r.mapHandler.GetMap)
		mapGroup.POST("/refresh", r.mapHandler.Refresh)
		mapGroup.GET("/search", r.mapHandler.Search)
		mapGroup.GET("/locations/:id", r.mapHandler.GetLocation)
		mapGroup.POST("/pin", r.mapHandler.DropPin)
		mapGroup.PUT("/user-location", r.mapHandler.ReportUserLocation)
	}

	v1.POST("/addresses/format", r.addressHandler.Format)
}
