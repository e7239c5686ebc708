// Package config provides configuration management for the replenishment service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the complete application configuration.
type Config struct {
	Server        ServerConfig
	Replenishment ReplenishmentConfig
	Database      DatabaseConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string
	RateLimit      int
	RateWindow     time.Duration
	RequestTimeout time.Duration
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string
}

// ReplenishmentConfig holds the domain parameters of the calculation.
type ReplenishmentConfig struct {
	// CentralWarehouse is the division code of the central warehouse. Rows
	// targeting it are dropped on ingest.
	CentralWarehouse string
	// TruckCapacity is the truck size in pallets.
	TruckCapacity int
	// FallbackUnitsPerPallet is assumed when an article's pallet size is
	// unknown to the truck plan advisor.
	FallbackUnitsPerPallet float64
	// LocalArticles overrides the shipped set of locally produced article
	// codes when non-empty.
	LocalArticles []string
	// DepotPrefix plus the range bounds define the eligible depot codes.
	DepotPrefix    string
	DepotRangeLow  int
	DepotRangeHigh int
	// ExtraDepots are depot codes allowed outside the numeric range.
	ExtraDepots []string
	// MaxSessions bounds how many upload sessions the in-memory store keeps
	// per dataset type.
	MaxSessions int
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	Enabled      bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// Load creates a Config from environment variables. A .env file in the
// working directory is read first when present; real environment variables
// win over file values.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			RateLimit:      getEnvInt("RATE_LIMIT", 100),
			RateWindow:     getEnvDuration("RATE_WINDOW", time.Minute),
			RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
			CORSOrigins:    parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:    getEnv("SWAGGER_USER", ""),
			SwaggerPass:    getEnv("SWAGGER_PASS", ""),
		},
		Replenishment: ReplenishmentConfig{
			CentralWarehouse:       getEnv("CENTRAL_WAREHOUSE", "M210"),
			TruckCapacity:          getEnvInt("TRUCK_CAPACITY", 24),
			FallbackUnitsPerPallet: getEnvFloat("FALLBACK_UNITS_PER_PALLET", 30),
			LocalArticles:          parseStringSlice(os.Getenv("LOCAL_ARTICLES")),
			DepotPrefix:            getEnv("DEPOT_PREFIX", "M"),
			DepotRangeLow:          getEnvInt("DEPOT_RANGE_LOW", 100),
			DepotRangeHigh:         getEnvInt("DEPOT_RANGE_HIGH", 209),
			ExtraDepots:            parseStringSlice(getEnv("EXTRA_DEPOTS", "M85,M90,M95")),
			MaxSessions:            getEnvInt("MAX_UPLOAD_SESSIONS", 8),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "replenishment_service"),
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

func parseStringSlice(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
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
