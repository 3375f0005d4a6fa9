// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"internova/internal/delivery/http/middleware"
	"internova/internal/delivery/http/router/handler"
	"internova/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	StudentHandler *handler.StudentHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	studentHandler *handler.StudentHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		studentHandler: params.StudentHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// Student routes require a valid token carrying the Student role.
	studentGroup := e.Group("/student")
	studentGroup.Use(r.authMiddleware.Authenticate)
	studentGroup.Use(r.authMiddleware.RequireRole(entity.RoleStudent))
	{
		studentGroup.PUT("/profile", r.studentHandler.UpsertProfile)
		studentGroup.GET("/profile", r.studentHandler.GetProfile)
	}
}
