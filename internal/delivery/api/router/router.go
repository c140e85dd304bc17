// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	// HealthPath is the liveness probe route.
	HealthPath = "/health"
	// EventsPath is the server-sent events route.
	EventsPath = "/api/v1/cart/events"
)

type RouterParams struct {
	fx.In

	CartHandler    *handler.CartHandler
	SessionHandler *handler.SessionHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	cartHandler    *handler.CartHandler
	sessionHandler *handler.SessionHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cartHandler:    params.CartHandler,
		sessionHandler: params.SessionHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET(HealthPath, handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// Cart routes serve guest and authenticated carts alike
	cartGroup := apiV1.Group("/cart")
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.GET("/summary", r.cartHandler.GetSummary)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PUT("/items/:id", r.cartHandler.UpdateItem)
		cartGroup.DELETE("/items/:id", r.cartHandler.RemoveItem)
		cartGroup.DELETE("", r.cartHandler.ClearCart)
		cartGroup.POST("/refresh", r.cartHandler.RefreshCart)
		cartGroup.POST("/sync", r.cartHandler.SyncCart)
	}
	e.GET(EventsPath, r.cartHandler.StreamEvents)

	// Session routes are the login and logout call sites
	sessionGroup := apiV1.Group("/session")
	{
		sessionGroup.GET("", r.sessionHandler.GetSession)
		sessionGroup.POST("", r.sessionHandler.Login)
		sessionGroup.DELETE("", r.sessionHandler.Logout)
	}
}
