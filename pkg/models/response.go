package models

import "time"

// SearchResponse represents the response from a job search request
type SearchResponse struct {
	Success        bool          `json:"success"`
	Listings       []Listing     `json:"listings"`
	Count          int           `json:"count"`
	ProcessingTime time.Duration `json:"processing_time"`
	RequestID      string        `json:"request_id"`
}

// ProviderStatus describes one configured source adapter
type ProviderStatus struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

// ProvidersResponse lists the configured source adapters and their state
type ProvidersResponse struct {
	Providers []ProviderStatus `json:"providers"`
	RequestID string           `json:"request_id"`
}

// FilterInfo describes one entry of the accessibility filter taxonomy
type FilterInfo struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// FiltersResponse lists the supported accessibility filters
type FiltersResponse struct {
	Filters   []FilterInfo `json:"filters"`
	RequestID string       `json:"request_id"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}
