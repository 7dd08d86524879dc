package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"worklink-aggregator/internal/aggregator"
	"worklink-aggregator/internal/filter"
	"worklink-aggregator/internal/logging"
	"worklink-aggregator/pkg/models"
	"worklink-aggregator/pkg/utils"
)

var validate = validator.New()

// SearchJobsHandler handles aggregated job search requests
func SearchJobsHandler(agg *aggregator.Aggregator) echo.HandlerFunc {
	return func(c echo.Context) error {
		startTime := time.Now()
		requestID := utils.GenerateRequestID()
		logger := logging.GetGlobalLogger().WithField("request_id", requestID)

		var req models.SearchRequest
		if err := c.Bind(&req); err != nil {
			logger.Error("Failed to bind search request", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_request",
				Message:   "Invalid request format",
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		if err := validate.Struct(&req); err != nil {
			logger.Error("Search request validation failed", map[string]interface{}{"error": err.Error()})
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "validation_failed",
				Message:   err.Error(),
				RequestID: requestID,
				Timestamp: time.Now(),
			})
		}

		logger.Info("Processing job search", map[string]interface{}{
			"query":    req.Query,
			"location": req.Location,
			"type":     req.Type,
			"filters":  req.Filters,
		})

		listings := agg.Search(c.Request().Context(), req.Query, req.Location, req.Type, splitFilters(req.Filters))

		logger.Info("Job search completed", map[string]interface{}{
			"count":           len(listings),
			"processing_time": time.Since(startTime).String(),
		})

		return c.JSON(http.StatusOK, models.SearchResponse{
			Success:        true,
			Listings:       listings,
			Count:          len(listings),
			ProcessingTime: time.Since(startTime),
			RequestID:      requestID,
		})
	}
}

// ProvidersHandler reports the configured source adapters and whether
// each has a credential
func ProvidersHandler(agg *aggregator.Aggregator) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()

		adapters := agg.Adapters()
		statuses := make([]models.ProviderStatus, 0, len(adapters))
		for _, a := range adapters {
			statuses = append(statuses, models.ProviderStatus{
				Name:    a.Name(),
				Enabled: a.Enabled(),
			})
		}

		return c.JSON(http.StatusOK, models.ProvidersResponse{
			Providers: statuses,
			RequestID: requestID,
		})
	}
}

// FiltersHandler exposes the accessibility filter taxonomy so the UI
// can render the supported filter set
func FiltersHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()

		infos := make([]models.FilterInfo, 0, len(filter.Taxonomy))
		for _, criterion := range filter.Taxonomy {
			infos = append(infos, models.FilterInfo{
				ID:    criterion.ID,
				Label: criterion.Label,
			})
		}

		return c.JSON(http.StatusOK, models.FiltersResponse{
			Filters:   infos,
			RequestID: requestID,
		})
	}
}

// splitFilters parses the comma-separated filters parameter, dropping
// empty elements
func splitFilters(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	filters := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			filters = append(filters, p)
		}
	}
	return filters
}
