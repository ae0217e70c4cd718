package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/JonWolf1234/current-rms-schedule/internal/api/handlers"
	"github.com/JonWolf1234/current-rms-schedule/internal/api/middleware"
	"github.com/JonWolf1234/current-rms-schedule/internal/config"
	"github.com/JonWolf1234/current-rms-schedule/internal/rms"
	"github.com/JonWolf1234/current-rms-schedule/internal/schedule"
)

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, client *rms.Client, assembler *schedule.Assembler) {
	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestID())
	e.Use(middleware.TimeoutConfig(cfg.Server.WriteTimeout))

	// API routes
	api := e.Group("/api")
	{
		api.GET("/schedule", handlers.ScheduleHandler(assembler))
		api.GET("/test-current", handlers.TestCurrentHandler(client))
	}

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler)
		health.GET("/live", handlers.LivenessHandler)
	}

	// Root liveness string
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "current-rms schedule proxy is running")
	})

	// Front-end calendar bundle
	if cfg.Server.StaticDir != "" {
		e.Static("/", cfg.Server.StaticDir)
	}
}
