// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"salespulse/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ImportHandler    *handler.ImportHandler
	AnalyticsHandler *handler.AnalyticsHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	importHandler    *handler.ImportHandler
	analyticsHandler *handler.AnalyticsHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		importHandler:    params.ImportHandler,
		analyticsHandler: params.AnalyticsHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiGroup := e.Group("/api")
	{
		apiGroup.POST("/import", r.importHandler.Import)
		apiGroup.GET("/analytics", r.analyticsHandler.GetAnalytics)
		apiGroup.GET("/managers", r.analyticsHandler.GetManagers)
	}
}
