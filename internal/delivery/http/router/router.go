// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"agadev/internal/delivery/http/middleware"
	"agadev/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	NewsHandler    *handler.NewsHandler
	ProjectHandler *handler.ProjectHandler
	MediaHandler   *handler.MediaHandler
	AdminHandler   *handler.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	newsHandler    *handler.NewsHandler
	projectHandler *handler.ProjectHandler
	mediaHandler   *handler.MediaHandler
	adminHandler   *handler.AdminHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		newsHandler:    params.NewsHandler,
		projectHandler: params.ProjectHandler,
		mediaHandler:   params.MediaHandler,
		adminHandler:   params.AdminHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	authenticated := r.authMiddleware.Authenticate
	adminOnly := r.authMiddleware.RequireAdmin()

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.authHandler.Me, authenticated)
		authGroup.POST("/change-password", r.authHandler.ChangePassword, authenticated)
		authGroup.POST("/logout", r.authHandler.Logout, authenticated)
		authGroup.POST("/register", r.authHandler.Register, authenticated, adminOnly)
		authGroup.GET("/users", r.authHandler.ListUsers, authenticated, adminOnly)
		authGroup.PATCH("/users/:id/active", r.authHandler.SetActive, authenticated, adminOnly)
	}

	newsGroup := api.Group("/news")
	{
		newsGroup.GET("", r.newsHandler.ListPublished)
		newsGroup.GET("/:slug", r.newsHandler.GetPublished)
		newsGroup.GET("/:slug/qrcode", r.newsHandler.QRCode)

		newsGroup.GET("/admin/all", r.newsHandler.ListAll, authenticated)
		newsGroup.GET("/admin/:id", r.newsHandler.Get, authenticated)
		newsGroup.POST("", r.newsHandler.Create, authenticated)
		newsGroup.PUT("/:id", r.newsHandler.Update, authenticated)
		newsGroup.PATCH("/:id/publish", r.newsHandler.SetPublished, authenticated)
		newsGroup.DELETE("/:id", r.newsHandler.Delete, authenticated, adminOnly)
	}

	projectsGroup := api.Group("/projects")
	{
		projectsGroup.GET("", r.projectHandler.ListPublished)
		projectsGroup.GET("/:slug", r.projectHandler.GetPublished)
		projectsGroup.GET("/:slug/qrcode", r.projectHandler.QRCode)

		projectsGroup.GET("/admin/all", r.projectHandler.ListAll, authenticated)
		projectsGroup.GET("/admin/:id", r.projectHandler.Get, authenticated)
		projectsGroup.POST("", r.projectHandler.Create, authenticated)
		projectsGroup.PUT("/:id", r.projectHandler.Update, authenticated)
		projectsGroup.PATCH("/:id/publish", r.projectHandler.SetPublished, authenticated)
		projectsGroup.DELETE("/:id", r.projectHandler.Delete, authenticated, adminOnly)
	}

	// Media routes all require authentication
	mediaGroup := api.Group("/media")
	mediaGroup.Use(authenticated)
	{
		mediaGroup.GET("", r.mediaHandler.List)
		mediaGroup.POST("/upload", r.mediaHandler.Upload)
		mediaGroup.POST("/upload-multiple", r.mediaHandler.UploadMultiple)
		mediaGroup.DELETE("/:id", r.mediaHandler.Delete)
	}

	adminGroup := api.Group("/admin")
	adminGroup.Use(authenticated)
	{
		adminGroup.GET("/profile", r.adminHandler.Profile)
		adminGroup.GET("/dashboard", r.adminHandler.Dashboard)
		adminGroup.GET("/maintenance/status", r.adminHandler.MaintenanceStatus)
		adminGroup.POST("/maintenance/fix-covers", r.adminHandler.FixCovers, adminOnly)
	}
}
