package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Tracker  TrackerConfig
	Calendar CalendarConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port          int
	Env           string
	LogLevel      string
	AllowedOrigin string
}

// TrackerConfig holds the connection to the tracking backend
type TrackerConfig struct {
	BaseURL string
	Timeout time.Duration
}

// CalendarConfig holds the calendar core tuning knobs
type CalendarConfig struct {
	CacheMonths  int
	SyncInterval time.Duration
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Warn("No .env file found, relying on environment")
	}

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:          appPort,
		Env:           getEnv("APP_ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		AllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "http://localhost:4200"),
	}

	// Tracker configuration
	trackerTimeout, err := time.ParseDuration(getEnv("TRACKER_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid TRACKER_TIMEOUT: %w", err)
	}

	config.Tracker = TrackerConfig{
		BaseURL: getEnv("TRACKER_BASE_URL", ""),
		Timeout: trackerTimeout,
	}

	// Calendar configuration
	cacheMonths, err := strconv.Atoi(getEnv("CALENDAR_CACHE_MONTHS", "6"))
	if err != nil {
		return nil, fmt.Errorf("invalid CALENDAR_CACHE_MONTHS: %w", err)
	}

	syncInterval, err := time.ParseDuration(getEnv("RESOURCE_SYNC_INTERVAL", "15m"))
	if err != nil {
		return nil, fmt.Errorf("invalid RESOURCE_SYNC_INTERVAL: %w", err)
	}

	config.Calendar = CalendarConfig{
		CacheMonths:  cacheMonths,
		SyncInterval: syncInterval,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Tracker.BaseURL == "" {
		return fmt.Errorf("TRACKER_BASE_URL is required")
	}
	if c.Calendar.CacheMonths < 1 {
		return fmt.Errorf("CALENDAR_CACHE_MONTHS must be at least 1")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
