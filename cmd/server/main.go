package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"worklink-aggregator/internal/aggregator"
	"worklink-aggregator/internal/aggregator/cache"
	"worklink-aggregator/internal/api/routes"
	"worklink-aggregator/internal/config"
	"worklink-aggregator/internal/logging"
	"worklink-aggregator/internal/providers"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logging
	if err := logging.InitializeLogging(cfg); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	logger := logging.GetGlobalLogger()
	logger.Info("Starting WorkLink Job Aggregator")

	// Build the cache store
	store, err := cache.BuildStore(cfg)
	if err != nil {
		logger.Fatal("Failed to build cache store", map[string]interface{}{"error": err.Error()})
	}
	logger.Info("Cache store ready", map[string]interface{}{
		"backend": cfg.Aggregator.CacheBackend,
		"ttl":     cfg.Aggregator.CacheTTL.String(),
	})

	// Build adapters and the aggregator
	adapters := providers.BuildAdapters(cfg)
	for _, a := range adapters {
		logger.Info("Provider registered", map[string]interface{}{
			"provider": a.Name(),
			"enabled":  a.Enabled(),
		})
	}
	agg := aggregator.New(adapters, store)

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	routes.SetupRoutes(e, cfg, agg)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error shutting down server", map[string]interface{}{"error": err.Error()})
		}

		if err := store.Close(); err != nil {
			logger.Error("Error closing cache store", map[string]interface{}{"error": err.Error()})
		}

		logger.Info("Server shutdown complete")
		logging.CloseLogging()
	}()

	// Start server
	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", map[string]interface{}{"address": address})

	if err := e.Start(address); err != nil {
		logger.Fatal("Server stopped", map[string]interface{}{"error": err.Error()})
	}
}
