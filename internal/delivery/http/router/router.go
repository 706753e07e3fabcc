// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"portfolio/internal/delivery/http/middleware"
	"portfolio/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	ProjectHandler    *handler.ProjectHandler
	ProfileHandler    *handler.ProfileHandler
	SkillHandler      *handler.SkillHandler
	ExperienceHandler *handler.ExperienceHandler
	ContactHandler    *handler.ContactHandler
	HealthHandler     *handler.HealthHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	projectHandler    *handler.ProjectHandler
	profileHandler    *handler.ProfileHandler
	skillHandler      *handler.SkillHandler
	experienceHandler *handler.ExperienceHandler
	contactHandler    *handler.ContactHandler
	healthHandler     *handler.HealthHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		projectHandler:    params.ProjectHandler,
		profileHandler:    params.ProfileHandler,
		skillHandler:      params.SkillHandler,
		experienceHandler: params.ExperienceHandler,
		contactHandler:    params.ContactHandler,
		healthHandler:     params.HealthHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.Check)

	api := e.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate)
	}

	userGroup := api.Group("/user")
	{
		userGroup.GET("/profile", r.profileHandler.Get, r.authMiddleware.OptionalAuthenticate)
		userGroup.GET("/stats", r.profileHandler.Stats)
	}

	projectGroup := api.Group("/projects")
	{
		projectGroup.GET("", r.projectHandler.List)
		projectGroup.GET("/:id", r.projectHandler.Get)
		projectGroup.POST("", r.projectHandler.Create, r.authMiddleware.Authenticate)
	}

	skillGroup := api.Group("/skills")
	{
		skillGroup.GET("", r.skillHandler.List)
		skillGroup.POST("", r.skillHandler.Create, r.authMiddleware.Authenticate)
	}

	experienceGroup := api.Group("/experiences")
	{
		experienceGroup.GET("", r.experienceHandler.List)
		experienceGroup.POST("", r.experienceHandler.Create, r.authMiddleware.Authenticate)
	}

	api.POST("/contact", r.contactHandler.Submit)
}
