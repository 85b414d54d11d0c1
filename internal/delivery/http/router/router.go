// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"batulens/internal/delivery/http/middleware"
	"batulens/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AnalysisHandler  *handler.AnalysisHandler
	DashboardHandler *handler.DashboardHandler
	AdminHandler     *handler.AdminHandler
	AuthHandler      *handler.AuthHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	analysisHandler  *handler.AnalysisHandler
	dashboardHandler *handler.DashboardHandler
	adminHandler     *handler.AdminHandler
	authHandler      *handler.AuthHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		analysisHandler:  params.AnalysisHandler,
		dashboardHandler: params.DashboardHandler,
		adminHandler:     params.AdminHandler,
		authHandler:      params.AuthHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public analytics routes
	apiGroup := e.Group("/api")
	{
		apiGroup.GET("/analysis", r.analysisHandler.GetAnalysis)
		apiGroup.GET("/quadrant_data_filtered", r.analysisHandler.GetQuadrantData)
		apiGroup.GET("/dashboard", r.dashboardHandler.GetDashboard)
		apiGroup.GET("/filter_data", r.dashboardHandler.GetFilterData)
		apiGroup.GET("/complaint_analysis", r.dashboardHandler.GetComplaintAnalysis)
		apiGroup.GET("/stats", r.dashboardHandler.GetStats)
		apiGroup.GET("/download/template", r.adminHandler.DownloadTemplate)
	}

	// Auth routes
	authGroup := apiGroup.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/user", r.authHandler.GetUser, r.authMiddleware.Authenticate)
	}

	// Admin routes that require authentication and the "admin" role
	adminGroup := apiGroup.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole("admin"))
	{
		adminGroup.GET("/kunjungan", r.adminHandler.ListKunjungan)
		adminGroup.POST("/add_wisata", r.adminHandler.AddWisata)
		adminGroup.POST("/update_wisata", r.adminHandler.UpdateWisata)
		adminGroup.POST("/delete_wisata", r.adminHandler.DeleteWisata)
		adminGroup.POST("/upload_file", r.adminHandler.UploadFile)
		adminGroup.GET("/export_kunjungan", r.adminHandler.ExportKunjungan)
		adminGroup.GET("/backup_data", r.adminHandler.BackupData)
	}
}
