package main

import (
	"github.com/draftwise/draftwise/internal/middleware"
	"github.com/draftwise/draftwise/pkg/logger"
	"github.com/gin-gonic/gin"
)

// registerRoutes sets up all HTTP routes on the given Gin engine.
func registerRoutes(r *gin.Engine, svc *appServices) {
	r.Use(middleware.RequestID(), logger.GinLogger(), logger.GinRecovery())
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.Use(middleware.CORS(svc.cfg.CORS.AllowOrigins))

	r.GET("/", svc.healthHandler.Root)
	r.GET("/health", svc.healthHandler.CheckHealth)

	api := r.Group("/api")
	{
		api.GET("/stats", svc.statsHandler.GetStats)

		api.POST("/process-email", svc.emailHandler.ProcessEmail)

		api.POST("/categories", svc.categoryHandler.Create)
		api.GET("/categories", svc.categoryHandler.List)
		api.GET("/categories/:id", svc.categoryHandler.GetByID)
		api.PUT("/categories/:id", svc.categoryHandler.Update)
		api.DELETE("/categories/:id", svc.categoryHandler.Delete)

		api.POST("/templates", svc.templateHandler.Create)
		api.GET("/templates", svc.templateHandler.List)
		api.GET("/templates/:id", svc.templateHandler.GetByID)
		api.PUT("/templates/:id", svc.templateHandler.Update)
		api.DELETE("/templates/:id", svc.templateHandler.Delete)
	}
}
