package http

import (
	"github.com/gin-gonic/gin"

	"taskapp/internal/adapter/http/handlers"
	"taskapp/internal/adapter/http/middleware"
	"taskapp/internal/core/ports"
)

type RouterConfig struct {
	// AuthRequired gates the task routes behind a Bearer session token.
	// Off by default; token issuance works either way.
	AuthRequired  bool
	TokenVerifier ports.TokenVerifier
}

func RegisterRoutes(
	r *gin.Engine,
	cfg RouterConfig,
	healthHandler *handlers.HealthHandler,
	authHandler *handlers.AuthHandler,
	taskHandler *handlers.TaskHandler,
) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)
		api.POST("/auth/login", authHandler.Login)
	}

	tasks := api.Group("/tasks")
	if cfg.AuthRequired && cfg.TokenVerifier != nil {
		tasks.Use(middleware.AuthMiddleware(cfg.TokenVerifier))
	}
	{
		tasks.GET("", taskHandler.ListTasks)
		tasks.GET("/:id", taskHandler.GetTask)
		tasks.POST("", taskHandler.CreateTask)
		tasks.PUT("/:id", taskHandler.UpdateTask)
		tasks.DELETE("/:id", taskHandler.DeleteTask)
	}
}
