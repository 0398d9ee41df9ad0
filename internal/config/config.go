package config

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	EnvDev  = "dev"
	EnvProd = "prod"

	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

type AppConfig struct {
	AppEnv   string `validate:"oneof=dev prod"`
	LogLevel slog.Level

	// Station API.
	StationBaseURL string `validate:"required,url"`
	StationAPIKey  string

	// HTTPTimeout bounds every station request.
	HTTPTimeout time.Duration `validate:"gt=0"`

	// FetchRetries is how many times a failed request is retried. The
	// default of zero leaves retrying to the caller.
	FetchRetries int `validate:"gte=0,lte=10"`

	// RefreshInterval controls how often auto-refresh fetches new data.
	RefreshInterval time.Duration `validate:"gte=1s"`

	// Preference persistence.
	PreferencesBackend string `validate:"oneof=memory sqlite"`
	SQLitePath         string `validate:"required_if=PreferencesBackend sqlite"`

	Language string `validate:"oneof=en nl"`
	Port     string `validate:"required,numeric"`
}

var validate = validator.New()

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.AppEnv = getenvDefault("APP_ENV", EnvDev)

	level, err := parseLogLevel(getenvDefault("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	cfg.StationBaseURL = strings.TrimRight(getenvDefault("STATION_API_BASE_URL", "http://localhost:8000"), "/")
	cfg.StationAPIKey = os.Getenv("STATION_API_KEY")

	timeout, err := time.ParseDuration(getenvDefault("HTTP_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout
	cfg.FetchRetries = getenvInt("FETCH_RETRIES", 0)

	// Auto-refresh interval: default 1 minute, matching the station's update rate.
	interval, err := time.ParseDuration(getenvDefault("REFRESH_INTERVAL", "60s"))
	if err != nil {
		return nil, fmt.Errorf("invalid REFRESH_INTERVAL: %w", err)
	}
	cfg.RefreshInterval = interval

	cfg.PreferencesBackend = strings.ToLower(getenvDefault("PREFERENCES_BACKEND", BackendMemory))
	cfg.SQLitePath = getenvDefault("SQLITE_PATH", "data/preferences.db")
	cfg.Language = strings.ToLower(getenvDefault("LANGUAGE", "en"))
	cfg.Port = getenvDefault("PORT", "8080")

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q (allowed: debug, info, warn, error)", s)
	}
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
