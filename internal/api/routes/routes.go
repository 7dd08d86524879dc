package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"worklink-aggregator/internal/aggregator"
	"worklink-aggregator/internal/api/handlers"
	"worklink-aggregator/internal/api/middleware"
	"worklink-aggregator/internal/config"
)

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, agg *aggregator.Aggregator) {
	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation())
	e.Use(middleware.TimeoutConfig(cfg.Server.ReadTimeout))

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler(agg))
		health.GET("/live", handlers.LivenessHandler)
	}

	// Status route
	e.GET("/status", handlers.StatusHandler(agg))

	// API v1 routes
	v1 := e.Group("/api/v1")
	{
		jobs := v1.Group("/jobs")
		{
			jobs.GET("", handlers.SearchJobsHandler(agg))
			jobs.GET("/providers", handlers.ProvidersHandler(agg))
			jobs.GET("/filters", handlers.FiltersHandler())
		}
	}

	// Root route
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"service": "WorkLink Job Aggregator",
			"version": "1.0.0",
			"status":  "running",
		})
	})
}
