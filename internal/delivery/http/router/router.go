// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"mealbell/internal/delivery/http/middleware"
	"mealbell/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CampaignHandler   *handler.CampaignHandler
	DeviceHandler     *handler.DeviceHandler
	PreferenceHandler *handler.PreferenceHandler
	AppHandler        *handler.AppHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	campaignHandler   *handler.CampaignHandler
	deviceHandler     *handler.DeviceHandler
	preferenceHandler *handler.PreferenceHandler
	appHandler        *handler.AppHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		campaignHandler:   params.CampaignHandler,
		deviceHandler:     params.DeviceHandler,
		preferenceHandler: params.PreferenceHandler,
		appHandler:        params.AppHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public app distribution routes
	appGroup := e.Group("/app")
	{
		appGroup.GET("/qr", r.appHandler.GetInstallQR)
		appGroup.GET("/download/:name", r.appHandler.DownloadApp)
	}

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.POST("/devices", r.deviceHandler.RegisterDevice)
		userGroup.DELETE("/devices", r.deviceHandler.RevokeDevice)
		userGroup.GET("/devices", r.deviceHandler.GetUserDevices)
		userGroup.GET("/preferences", r.preferenceHandler.GetPreferences)
		userGroup.PUT("/preferences", r.preferenceHandler.UpdatePreferences)
	}

	// Admin routes that require authentication and the "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole("admin"))
	{
		adminGroup.POST("/campaigns", r.campaignHandler.SubmitCampaign)
		adminGroup.GET("/campaigns", r.campaignHandler.GetCampaignHistory)
		adminGroup.GET("/campaigns/stats", r.campaignHandler.GetCampaignStats)
		adminGroup.GET("/campaigns/count", r.campaignHandler.GetTotalSent)
		adminGroup.POST("/app/upload", r.appHandler.UploadApp)
	}
}
