// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"mercado/internal/delivery/http/middleware"
	"mercado/internal/delivery/http/router/handler"
	"mercado/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DeliveryHandler *handler.DeliveryHandler
	ScheduleHandler *handler.ScheduleHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	deliveryHandler *handler.DeliveryHandler
	scheduleHandler *handler.ScheduleHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		deliveryHandler: params.DeliveryHandler,
		scheduleHandler: params.ScheduleHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public storefront reads, no authentication required.
	publicGroup := e.Group("/companies/:companyID")
	{
		publicGroup.GET("/delivery/config", r.deliveryHandler.GetConfig)
		publicGroup.GET("/delivery/zones", r.deliveryHandler.ListZones)
		publicGroup.GET("/delivery/quote", r.deliveryHandler.Quote)

		publicGroup.GET("/schedule/config", r.scheduleHandler.GetConfig)
		publicGroup.GET("/schedule/hours", r.scheduleHandler.ListHours)
		publicGroup.GET("/schedule/status", r.scheduleHandler.OpenStatus)
	}

	// Admin routes require authentication and at least the company-admin
	// role. Fine-grained scope checks happen in the usecase layer.
	adminGroup := e.Group("/admin/companies/:companyID")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleCompanyAdmin))
	{
		adminGroup.PUT("/delivery/config", r.deliveryHandler.UpsertConfig)
		adminGroup.PUT("/delivery/zones", r.deliveryHandler.ReplaceZones)
		adminGroup.POST("/delivery/zones", r.deliveryHandler.AddZone)
		adminGroup.PUT("/delivery/zones/:zoneID", r.deliveryHandler.UpdateZone)
		adminGroup.DELETE("/delivery/zones/:zoneID", r.deliveryHandler.RemoveZone)

		adminGroup.PUT("/schedule/config", r.scheduleHandler.UpsertConfig)
		adminGroup.PUT("/schedule/hours", r.scheduleHandler.ReplaceHours)
		adminGroup.POST("/schedule/hours", r.scheduleHandler.AddHour)
		adminGroup.PUT("/schedule/hours/:entryID", r.scheduleHandler.UpdateHour)
		adminGroup.DELETE("/schedule/hours/:entryID", r.scheduleHandler.RemoveHour)
	}
}
