package config

import (
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// AdapterConfig configures one logging output adapter
type AdapterConfig struct {
	Name    string                 `yaml:"name"`
	Type    string                 `yaml:"type"`
	Enabled bool                   `yaml:"enabled"`
	Options map[string]interface{} `yaml:"options"`
}

// Config represents the application configuration
type Config struct {
	Server struct {
		Port         int           `yaml:"port"`
		Host         string        `yaml:"host"`
		ReadTimeout  time.Duration `yaml:"read_timeout"`
		WriteTimeout time.Duration `yaml:"write_timeout"`
		IdleTimeout  time.Duration `yaml:"idle_timeout"`
	} `yaml:"server"`

	Aggregator struct {
		CacheTTL     time.Duration `yaml:"cache_ttl"`
		CacheBackend string        `yaml:"cache_backend"` // memory or redis
	} `yaml:"aggregator"`

	Providers struct {
		JSearch struct {
			APIKey    string        `yaml:"api_key"`
			BaseURL   string        `yaml:"base_url"`
			Timeout   time.Duration `yaml:"timeout"`
			RateLimit int           `yaml:"rate_limit"` // requests per minute
		} `yaml:"jsearch"`

		SerpAPI struct {
			APIKey    string        `yaml:"api_key"`
			BaseURL   string        `yaml:"base_url"`
			Timeout   time.Duration `yaml:"timeout"`
			RateLimit int           `yaml:"rate_limit"` // requests per minute
		} `yaml:"serpapi"`
	} `yaml:"providers"`

	Redis struct {
		URL      string        `yaml:"url"`
		Password string        `yaml:"password"`
		DB       int           `yaml:"db"`
		Timeout  time.Duration `yaml:"timeout"`
	} `yaml:"redis"`

	Logging struct {
		Level    string          `yaml:"level"`
		Format   string          `yaml:"format"`
		Adapters []AdapterConfig `yaml:"adapters"`
	} `yaml:"logging"`
}

// expandEnvVars expands environment variables in a string using ${VAR} or $VAR syntax
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	s = re.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	re2 := regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
	s = re2.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[1:]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	return s
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (ignore errors if file doesn't exist)
	_ = godotenv.Load()

	config := &Config{}

	// Set defaults
	config.Server.Port = 8080
	config.Server.Host = "0.0.0.0"
	config.Server.ReadTimeout = 30 * time.Second
	config.Server.WriteTimeout = 30 * time.Second
	config.Server.IdleTimeout = 60 * time.Second

	config.Aggregator.CacheTTL = 10 * time.Minute
	config.Aggregator.CacheBackend = "memory"

	config.Providers.JSearch.BaseURL = "https://jsearch.p.rapidapi.com"
	config.Providers.JSearch.Timeout = 15 * time.Second
	config.Providers.JSearch.RateLimit = 60

	config.Providers.SerpAPI.BaseURL = "https://serpapi.com/search.json"
	config.Providers.SerpAPI.Timeout = 15 * time.Second
	config.Providers.SerpAPI.RateLimit = 60

	config.Redis.URL = "redis://localhost:6379"
	config.Redis.DB = 0
	config.Redis.Timeout = 5 * time.Second

	config.Logging.Level = "info"
	config.Logging.Format = "json"

	// Load from YAML file if it exists
	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			yamlContent := expandEnvVars(string(data))
			if err := yaml.Unmarshal([]byte(yamlContent), config); err != nil {
				return nil, err
			}
		}
	}

	// Override with environment variables
	config.loadFromEnv()

	return config, nil
}

// loadFromEnv loads configuration from environment variables
func (c *Config) loadFromEnv() {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}

	if host := os.Getenv("HOST"); host != "" {
		c.Server.Host = host
	}

	if ttl := os.Getenv("CACHE_TTL"); ttl != "" {
		if d, err := time.ParseDuration(ttl); err == nil {
			c.Aggregator.CacheTTL = d
		}
	}

	if backend := os.Getenv("CACHE_BACKEND"); backend != "" {
		c.Aggregator.CacheBackend = backend
	}

	if apiKey := os.Getenv("JSEARCH_API_KEY"); apiKey != "" {
		c.Providers.JSearch.APIKey = apiKey
	}

	// Also support RAPIDAPI_KEY since JSearch is hosted on RapidAPI
	if apiKey := os.Getenv("RAPIDAPI_KEY"); apiKey != "" && c.Providers.JSearch.APIKey == "" {
		c.Providers.JSearch.APIKey = apiKey
	}

	if baseURL := os.Getenv("JSEARCH_BASE_URL"); baseURL != "" {
		c.Providers.JSearch.BaseURL = baseURL
	}

	if apiKey := os.Getenv("SERPAPI_API_KEY"); apiKey != "" {
		c.Providers.SerpAPI.APIKey = apiKey
	}

	if baseURL := os.Getenv("SERPAPI_BASE_URL"); baseURL != "" {
		c.Providers.SerpAPI.BaseURL = baseURL
	}

	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		c.Redis.URL = redisURL
	}

	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		c.Redis.Password = redisPassword
	}

	if redisDB := os.Getenv("REDIS_DB"); redisDB != "" {
		if db, err := strconv.Atoi(redisDB); err == nil {
			c.Redis.DB = db
		}
	}

	if redisTimeout := os.Getenv("REDIS_TIMEOUT"); redisTimeout != "" {
		if timeout, err := time.ParseDuration(redisTimeout); err == nil {
			c.Redis.Timeout = timeout
		}
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}

	if logFormat := os.Getenv("LOG_FORMAT"); logFormat != "" {
		c.Logging.Format = logFormat
	}
}
