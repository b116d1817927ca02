// Package config provides configuration management for the nutrition service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Server     ServerConfig
	Cache      CacheConfig
	Auth       AuthConfig
	FoodData   FoodDataConfig
	Recognizer RecognizerConfig
	Resolver   ResolverConfig
	Database   DatabaseConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port        string
	RateLimit   int
	RateWindow  time.Duration
	CORSOrigins []string
	SwaggerUser string
	SwaggerPass string
}

// CacheConfig holds resolution cache configuration.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// AuthConfig holds API key authentication configuration.
type AuthConfig struct {
	Enabled bool
	APIKeys map[string]bool
}

// FoodDataConfig holds the FoodData Central client configuration.
// When Enabled is false, or no API key is set, resolution runs against
// the built-in food table only.
type FoodDataConfig struct {
	Enabled     bool
	BaseURL     string
	APIKey      string
	Timeout     time.Duration
	SearchLimit int
	// CircuitBreaker configuration for the live backend
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// RecognizerConfig holds the entity recognizer sidecar configuration.
// The recognizer is optional; when disabled extraction is rule-only.
type RecognizerConfig struct {
	Enabled bool
	URL     string
	Timeout time.Duration
}

// ResolverConfig holds nutrient resolution configuration.
type ResolverConfig struct {
	Workers       int
	MinMatchRatio float64
}

// DatabaseConfig holds MongoDB configuration for request logs.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	LogsTTL      time.Duration
	Enabled      bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			RateLimit:   getEnvInt("RATE_LIMIT", 100),
			RateWindow:  getEnvDuration("RATE_WINDOW", time.Minute),
			CORSOrigins: parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser: getEnv("SWAGGER_USER", ""),
			SwaggerPass: getEnv("SWAGGER_PASS", ""),
		},
		Cache: CacheConfig{
			Size: getEnvInt("CACHE_SIZE", 1000),
			TTL:  getEnvDuration("CACHE_TTL", 15*time.Minute),
		},
		Auth: AuthConfig{
			Enabled: getEnvBool("AUTH_ENABLED", false),
			APIKeys: parseAPIKeys(os.Getenv("API_KEYS")),
		},
		FoodData: FoodDataConfig{
			Enabled:                        getEnvBool("FOODDATA_ENABLED", false),
			BaseURL:                        getEnv("FOODDATA_BASE_URL", "https://api.nal.usda.gov/fdc/v1"),
			APIKey:                         getEnv("FOODDATA_API_KEY", ""),
			Timeout:                        getEnvDuration("FOODDATA_TIMEOUT", 10*time.Second),
			SearchLimit:                    getEnvInt("FOODDATA_SEARCH_LIMIT", 5),
			CircuitBreakerFailureThreshold: getEnvInt("FOODDATA_CB_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("FOODDATA_CB_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("FOODDATA_CB_TIMEOUT", 30*time.Second),
		},
		Recognizer: RecognizerConfig{
			Enabled: getEnvBool("RECOGNIZER_ENABLED", false),
			URL:     getEnv("RECOGNIZER_URL", "http://localhost:8000"),
			Timeout: getEnvDuration("RECOGNIZER_TIMEOUT", 5*time.Second),
		},
		Resolver: ResolverConfig{
			Workers:       getEnvInt("RESOLVER_WORKERS", 4),
			MinMatchRatio: getEnvFloat("RESOLVER_MIN_MATCH_RATIO", 0.3),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "nutrition_service"),
			LogsTTL:                        getEnvDuration("MONGODB_LOGS_TTL", 30*24*time.Hour),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseAPIKeys(s string) map[string]bool {
	if s == "" {
		return nil
	}
	keys := strings.Split(s, ",")
	result := make(map[string]bool, len(keys))
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			result[k] = true
		}
	}
	return result
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
