package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"worklink-aggregator/internal/aggregator"
	"worklink-aggregator/pkg/models"
)

var startTime = time.Now()

// HealthHandler handles health check requests
func HealthHandler(c echo.Context) error {
	response := models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   "1.0.0",
		Uptime:    time.Since(startTime),
		Checks: map[string]string{
			"api": "ok",
		},
	}

	return c.JSON(http.StatusOK, response)
}

// LivenessHandler handles liveness probe requests
func LivenessHandler(c echo.Context) error {
	response := models.HealthResponse{
		Status:    "alive",
		Timestamp: time.Now(),
		Version:   "1.0.0",
		Uptime:    time.Since(startTime),
	}

	return c.JSON(http.StatusOK, response)
}

// ReadinessHandler handles readiness probe requests. The service is
// ready even with every provider disabled, since aggregation falls back
// to seed data; the checks only surface provider availability.
func ReadinessHandler(agg *aggregator.Aggregator) echo.HandlerFunc {
	return func(c echo.Context) error {
		checks := map[string]string{
			"api":   "ok",
			"cache": "ok",
		}
		for _, adapter := range agg.Adapters() {
			if adapter.Enabled() {
				checks["provider_"+adapter.Name()] = "enabled"
			} else {
				checks["provider_"+adapter.Name()] = "disabled"
			}
		}

		response := models.HealthResponse{
			Status:    "ready",
			Timestamp: time.Now(),
			Version:   "1.0.0",
			Uptime:    time.Since(startTime),
			Checks:    checks,
		}

		return c.JSON(http.StatusOK, response)
	}
}

// StatusHandler provides detailed service status
func StatusHandler(agg *aggregator.Aggregator) echo.HandlerFunc {
	return func(c echo.Context) error {
		enabled := 0
		for _, adapter := range agg.Adapters() {
			if adapter.Enabled() {
				enabled++
			}
		}

		// Still serving traffic with zero providers, but only seed data
		status := "operational"
		providersCheck := "ok"
		if enabled == 0 {
			status = "degraded"
			providersCheck = "none enabled"
		}

		response := models.HealthResponse{
			Status:    status,
			Timestamp: time.Now(),
			Version:   "1.0.0",
			Uptime:    time.Since(startTime),
			Checks: map[string]string{
				"api":       "operational",
				"providers": providersCheck,
			},
		}

		return c.JSON(http.StatusOK, response)
	}
}
