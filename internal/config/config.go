// Package config provides configuration loading and management for the application.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// HTTP server port
	Port string

	// Upstream data provider settings
	APIKey  string
	BaseURL string
	CDNURL  string

	// Upstream request behavior
	RequestTimeout time.Duration
	RetryMax       int

	// Leaderboard sizing
	BoardFetchLimit int
	BoardTopN       int

	// Rate limiting for the dashboard API
	RateLimitRPS   float64
	RateLimitBurst int

	// OpenTelemetry endpoint for observability
	OtelEndpoint string
}

// Load creates a new Config from environment variables
func Load() Config {
	return Config{
		Port:            GetEnvOrDefault("PORT", "8080"),
		APIKey:          GetEnvOrDefault("API_KEY", ""),
		BaseURL:         GetEnvOrDefault("API_BASE_URL", "https://rest-api.hellomoon.io/v0"),
		CDNURL:          GetEnvOrDefault("CDN_URL", "https://cdn.hellomoon.io"),
		RequestTimeout:  GetEnvAsDuration("REQUEST_TIMEOUT", 10*time.Second),
		RetryMax:        GetEnvAsInt("RETRY_MAX", 0),
		BoardFetchLimit: GetEnvAsInt("LEADERBOARD_FETCH_LIMIT", 9),
		BoardTopN:       GetEnvAsInt("LEADERBOARD_TOP_N", 6),
		RateLimitRPS:    GetEnvAsFloat("RATE_LIMIT_RPS", 10.0),
		RateLimitBurst:  GetEnvAsInt("RATE_LIMIT_BURST", 20),
		OtelEndpoint:    GetEnvOrDefault("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
	}
}

// GetEnv retrieves an environment variable and whether it exists
func GetEnv(key string) (string, bool) {
	value, exists := os.LookupEnv(key)
	return value, exists
}

// GetEnvOrDefault retrieves an environment variable or returns the default value if not set
func GetEnvOrDefault(key, defaultValue string) string {
	if value, exists := GetEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetEnvAsInt retrieves an environment variable as an integer with a default value
func GetEnvAsInt(key string, defaultValue int) int {
	if value, exists := GetEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// GetEnvAsFloat retrieves an environment variable as a float with a default value
func GetEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := GetEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// GetEnvAsDuration retrieves an environment variable as a duration with a default value
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := GetEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
