package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		Port:             "8081",
		SQLiteDBPath:     "./test.db",
		GeocodeBaseURL:   "https://nominatim.openstreetmap.org",
		GeocodeTimeout:   5 * time.Second,
		GeocodeCacheSize: 256,
		GeocodeCacheTTL:  time.Hour,
		LocateTimeout:    5 * time.Second,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		wantErr     bool
		errorString string
	}{
		{
			name:   "valid config",
			mutate: func(*Config) {},
		},
		{
			name:        "invalid port - non-numeric",
			mutate:      func(c *Config) { c.Port = "abc" },
			wantErr:     true,
			errorString: "invalid port 'abc': must be a number",
		},
		{
			name:        "invalid port - out of range",
			mutate:      func(c *Config) { c.Port = "70000" },
			wantErr:     true,
			errorString: "must be between 1 and 65535",
		},
		{
			name:        "empty db path",
			mutate:      func(c *Config) { c.SQLiteDBPath = "" },
			wantErr:     true,
			errorString: "database path cannot be empty",
		},
		{
			name:        "geocode URL with bad scheme",
			mutate:      func(c *Config) { c.GeocodeBaseURL = "ftp://example.com" },
			wantErr:     true,
			errorString: "must be 'http' or 'https'",
		},
		{
			name:        "geocode timeout too small",
			mutate:      func(c *Config) { c.GeocodeTimeout = 10 * time.Millisecond },
			wantErr:     true,
			errorString: "must be at least 1 second",
		},
		{
			name:        "geocode timeout too large",
			mutate:      func(c *Config) { c.GeocodeTimeout = 2 * time.Minute },
			wantErr:     true,
			errorString: "must be at most 1 minute",
		},
		{
			name:        "cache size too small",
			mutate:      func(c *Config) { c.GeocodeCacheSize = 0 },
			wantErr:     true,
			errorString: "cache size",
		},
		{
			name:        "locate timeout too small",
			mutate:      func(c *Config) { c.LocateTimeout = 0 },
			wantErr:     true,
			errorString: "locate timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				if tt.errorString != "" && !strings.Contains(err.Error(), tt.errorString) {
					t.Fatalf("error %q does not contain %q", err.Error(), tt.errorString)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "SQLITE_DB_PATH", "GEOCODE_BASE_URL", "GEOCODE_TIMEOUT", "LOCATE_TIMEOUT"} {
		os.Unsetenv(key)
	}

	cfg := Load()
	if cfg.Port != "8081" {
		t.Fatalf("got port %q", cfg.Port)
	}
	if cfg.GeocodeBaseURL != "https://nominatim.openstreetmap.org" {
		t.Fatalf("got geocode URL %q", cfg.GeocodeBaseURL)
	}
	if cfg.GeocodeTimeout != 5*time.Second || cfg.LocateTimeout != 5*time.Second {
		t.Fatalf("got timeouts %v / %v", cfg.GeocodeTimeout, cfg.LocateTimeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("GEOCODE_TIMEOUT", "10s")
	t.Setenv("GEOCODE_CACHE_SIZE", "64")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("got port %q", cfg.Port)
	}
	if cfg.GeocodeTimeout != 10*time.Second {
		t.Fatalf("got timeout %v", cfg.GeocodeTimeout)
	}
	if cfg.GeocodeCacheSize != 64 {
		t.Fatalf("got cache size %d", cfg.GeocodeCacheSize)
	}
}
