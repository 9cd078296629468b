package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// HTTP Server
	Port string

	// Database
	SQLiteDBPath string

	// Reverse geocoding
	GeocodeBaseURL   string
	GeocodeTimeout   time.Duration
	GeocodeCacheSize int
	GeocodeCacheTTL  time.Duration

	// Device position
	LocateTimeout time.Duration
}

func Load() *Config {
	cfg := &Config{
		Port:         getEnv("PORT", "8081"),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/spendmap.db"),

		GeocodeBaseURL:   getEnv("GEOCODE_BASE_URL", "https://nominatim.openstreetmap.org"),
		GeocodeTimeout:   getEnvDuration("GEOCODE_TIMEOUT", 5*time.Second),
		GeocodeCacheSize: getEnvInt("GEOCODE_CACHE_SIZE", 256),
		GeocodeCacheTTL:  getEnvDuration("GEOCODE_CACHE_TTL", 24*time.Hour),

		LocateTimeout: getEnvDuration("LOCATE_TIMEOUT", 5*time.Second),
	}

	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	// Validate port
	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.SQLiteDBPath == "" {
		errors = append(errors, "SQLite database path cannot be empty")
	}

	// Validate geocoding endpoint
	if parsedURL, err := url.Parse(c.GeocodeBaseURL); err != nil {
		errors = append(errors, fmt.Sprintf("invalid geocode base URL '%s': %v", c.GeocodeBaseURL, err))
	} else if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		errors = append(errors, fmt.Sprintf("invalid geocode base URL scheme '%s': must be 'http' or 'https'", parsedURL.Scheme))
	}

	if c.GeocodeTimeout < time.Second {
		errors = append(errors, fmt.Sprintf("invalid geocode timeout %v: must be at least 1 second", c.GeocodeTimeout))
	} else if c.GeocodeTimeout > time.Minute {
		errors = append(errors, fmt.Sprintf("invalid geocode timeout %v: must be at most 1 minute", c.GeocodeTimeout))
	}

	if c.GeocodeCacheSize < 1 {
		errors = append(errors, fmt.Sprintf("invalid geocode cache size %d: must be at least 1", c.GeocodeCacheSize))
	} else if c.GeocodeCacheSize > 100000 {
		errors = append(errors, fmt.Sprintf("invalid geocode cache size %d: must be at most 100000", c.GeocodeCacheSize))
	}

	if c.GeocodeCacheTTL < time.Minute {
		errors = append(errors, fmt.Sprintf("invalid geocode cache TTL %v: must be at least 1 minute", c.GeocodeCacheTTL))
	}

	if c.LocateTimeout < time.Second {
		errors = append(errors, fmt.Sprintf("invalid locate timeout %v: must be at least 1 second", c.LocateTimeout))
	} else if c.LocateTimeout > time.Minute {
		errors = append(errors, fmt.Sprintf("invalid locate timeout %v: must be at most 1 minute", c.LocateTimeout))
	}

	// Return combined errors
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
