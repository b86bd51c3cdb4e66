// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"muscleup/internal/delivery/http/middleware"
	"muscleup/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	EnrollmentHandler *handler.EnrollmentHandler
	DeviceHandler     *handler.DeviceHandler
	AccessHandler     *handler.AccessHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	enrollmentHandler *handler.EnrollmentHandler
	deviceHandler     *handler.DeviceHandler
	accessHandler     *handler.AccessHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		enrollmentHandler: params.EnrollmentHandler,
		deviceHandler:     params.DeviceHandler,
		accessHandler:     params.AccessHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	api.Use(r.authMiddleware.Authenticate)

	// Enrollment workflow
	biometric := api.Group("/biometric")
	{
		biometric.POST("/enroll", r.enrollmentHandler.Start)
		biometric.GET("/enroll/:userId", r.enrollmentHandler.Status)
		biometric.DELETE("/enroll/:userId", r.enrollmentHandler.Cancel)

		biometric.POST("/verify", r.accessHandler.Verify)

		// Device management requires the admin role on top of a valid token
		devices := biometric.Group("/devices", r.authMiddleware.RequireRole("admin"))
		{
			devices.POST("", r.deviceHandler.Register)
			devices.GET("", r.deviceHandler.List)
			devices.GET("/:id/status", r.deviceHandler.Status)
			devices.POST("/:id/connect", r.deviceHandler.Connect)
			devices.POST("/:id/disconnect", r.deviceHandler.Disconnect)
			devices.POST("/:id/restart", r.deviceHandler.Restart)
			devices.GET("/:id/users", r.deviceHandler.Users)
			devices.DELETE("/:id/users/:deviceUserId", r.deviceHandler.DeleteUser)
		}
	}

	// Access history
	access := api.Group("/access")
	{
		access.GET("/recent", r.accessHandler.Recent)
	}
}
