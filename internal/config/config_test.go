package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Aggregator.CacheTTL != 10*time.Minute {
		t.Errorf("CacheTTL = %v, want 10m", cfg.Aggregator.CacheTTL)
	}
	if cfg.Aggregator.CacheBackend != "memory" {
		t.Errorf("CacheBackend = %q, want memory", cfg.Aggregator.CacheBackend)
	}
	if cfg.Providers.JSearch.BaseURL != "https://jsearch.p.rapidapi.com" {
		t.Errorf("JSearch BaseURL = %q", cfg.Providers.JSearch.BaseURL)
	}
	if cfg.Providers.SerpAPI.BaseURL != "https://serpapi.com/search.json" {
		t.Errorf("SerpAPI BaseURL = %q", cfg.Providers.SerpAPI.BaseURL)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CACHE_TTL", "5m")
	t.Setenv("CACHE_BACKEND", "redis")
	t.Setenv("JSEARCH_API_KEY", "js-key")
	t.Setenv("SERPAPI_API_KEY", "serp-key")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Aggregator.CacheTTL != 5*time.Minute {
		t.Errorf("CacheTTL = %v, want 5m", cfg.Aggregator.CacheTTL)
	}
	if cfg.Aggregator.CacheBackend != "redis" {
		t.Errorf("CacheBackend = %q, want redis", cfg.Aggregator.CacheBackend)
	}
	if cfg.Providers.JSearch.APIKey != "js-key" {
		t.Errorf("JSearch APIKey = %q", cfg.Providers.JSearch.APIKey)
	}
	if cfg.Providers.SerpAPI.APIKey != "serp-key" {
		t.Errorf("SerpAPI APIKey = %q", cfg.Providers.SerpAPI.APIKey)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestRapidAPIKeyFallback(t *testing.T) {
	t.Setenv("RAPIDAPI_KEY", "rapid-key")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Providers.JSearch.APIKey != "rapid-key" {
		t.Errorf("APIKey = %q, want RAPIDAPI_KEY fallback", cfg.Providers.JSearch.APIKey)
	}

	// A dedicated JSearch key takes precedence over the generic one
	t.Setenv("JSEARCH_API_KEY", "js-key")
	cfg, err = LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Providers.JSearch.APIKey != "js-key" {
		t.Errorf("APIKey = %q, want dedicated key to win", cfg.Providers.JSearch.APIKey)
	}
}

func TestLoadConfigFromYAMLWithEnvExpansion(t *testing.T) {
	t.Setenv("TEST_JSEARCH_KEY", "expanded-key")

	yamlContent := `
server:
  port: 3000
aggregator:
  cache_backend: memory
providers:
  jsearch:
    api_key: ${TEST_JSEARCH_KEY}
logging:
  level: warn
`
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("Port = %d, want 3000", cfg.Server.Port)
	}
	if cfg.Providers.JSearch.APIKey != "expanded-key" {
		t.Errorf("APIKey = %q, want env expansion", cfg.Providers.JSearch.APIKey)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn", cfg.Logging.Level)
	}
	// Fields the file omits keep their defaults
	if cfg.Providers.SerpAPI.BaseURL != "https://serpapi.com/search.json" {
		t.Errorf("SerpAPI BaseURL = %q, want default preserved", cfg.Providers.SerpAPI.BaseURL)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("EXPAND_A", "alpha")

	tests := []struct {
		in   string
		want string
	}{
		{"${EXPAND_A}", "alpha"},
		{"prefix-${EXPAND_A}-suffix", "prefix-alpha-suffix"},
		{"$EXPAND_A", "alpha"},
		{"${UNSET_VAR_XYZ}", "${UNSET_VAR_XYZ}"},
		{"no vars here", "no vars here"},
	}
	for _, tt := range tests {
		if got := expandEnvVars(tt.in); got != tt.want {
			t.Errorf("expandEnvVars(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
