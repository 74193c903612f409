// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"backoffice/internal/delivery/http/middleware"
	"backoffice/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	DashboardHandler *handler.DashboardHandler
	SalesHandler     *handler.SalesHandler
	ProductHandler   *handler.ProductHandler
	OfferHandler     *handler.OfferHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	dashboardHandler *handler.DashboardHandler
	salesHandler     *handler.SalesHandler
	productHandler   *handler.ProductHandler
	offerHandler     *handler.OfferHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		dashboardHandler: params.DashboardHandler,
		salesHandler:     params.SalesHandler,
		productHandler:   params.ProductHandler,
		offerHandler:     params.OfferHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// Dashboard routes require authentication
	dashboardGroup := e.Group("/dashboard")
	dashboardGroup.Use(r.authMiddleware.Authenticate)
	{
		dashboardGroup.GET("/summary", r.dashboardHandler.Summary)
	}

	// Sales are read only over HTTP
	salesGroup := e.Group("/sales")
	salesGroup.Use(r.authMiddleware.Authenticate)
	{
		salesGroup.GET("", r.salesHandler.List)
		salesGroup.GET("/:id", r.salesHandler.Get)
	}

	// Catalog routes: reads for any authenticated user, writes gated by role
	productGroup := e.Group("/products")
	productGroup.Use(r.authMiddleware.Authenticate)
	{
		productGroup.GET("", r.productHandler.List)
		productGroup.GET("/:id", r.productHandler.Get)
		productGroup.POST("", r.productHandler.Create, r.authMiddleware.RequireWriteRole)
		productGroup.PATCH("/:id", r.productHandler.Update, r.authMiddleware.RequireWriteRole)
		productGroup.DELETE("/:id", r.productHandler.Delete, r.authMiddleware.RequireWriteRole)
	}

	offerGroup := e.Group("/offers")
	offerGroup.Use(r.authMiddleware.Authenticate)
	{
		offerGroup.GET("", r.offerHandler.List)
		offerGroup.GET("/:id", r.offerHandler.Get)
		offerGroup.POST("", r.offerHandler.Create, r.authMiddleware.RequireWriteRole)
		offerGroup.PATCH("/:id", r.offerHandler.Update, r.authMiddleware.RequireWriteRole)
		offerGroup.DELETE("/:id", r.offerHandler.Delete, r.authMiddleware.RequireWriteRole)
	}
}
