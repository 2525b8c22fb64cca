package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the API server configuration.
type Config struct {
	APIPort         string
	DBPath          string
	DefaultPassword string
	MaxUploadBytes  int64
	LogLevel        slog.Level
	LogFormat       string
}

// ClientConfig holds the command-line client configuration.
type ClientConfig struct {
	APIURL       string
	CachePath    string
	PingTimeout  time.Duration
	SaveDebounce time.Duration
	LogLevel     slog.Level
	LogFormat    string
}

// Load reads the server configuration from environment variables.
// If a .env file exists in the current directory or a parent, it is loaded first.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	loadDotEnv()

	cfg := &Config{
		APIPort:         getEnv("API_PORT", "9000"),
		DBPath:          getEnv("DB_PATH", "./data/bookmarkhub.db"),
		DefaultPassword: getEnv("DEFAULT_PASSWORD", "admin"),
	}

	maxUpload, err := strconv.ParseInt(getEnv("MAX_UPLOAD_BYTES", "26214400"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("MAX_UPLOAD_BYTES must be a valid integer: %w", err)
	}
	if maxUpload <= 0 {
		return nil, fmt.Errorf("MAX_UPLOAD_BYTES must be greater than 0")
	}
	cfg.MaxUploadBytes = maxUpload

	if cfg.LogLevel, cfg.LogFormat, err = loadLogging(); err != nil {
		return nil, err
	}

	// Create the data directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// LoadClient reads the client configuration from environment variables.
func LoadClient() (*ClientConfig, error) {
	loadDotEnv()

	cfg := &ClientConfig{
		APIURL:    strings.TrimRight(getEnv("BOOKMARKS_API_URL", "http://localhost:9000/api"), "/"),
		CachePath: getEnv("BOOKMARKS_CACHE_PATH", defaultCachePath()),
	}

	var err error
	if cfg.PingTimeout, err = getDuration("BOOKMARKS_PING_TIMEOUT", "5s"); err != nil {
		return nil, err
	}
	if cfg.SaveDebounce, err = getDuration("BOOKMARKS_SAVE_DEBOUNCE", "500ms"); err != nil {
		return nil, err
	}
	if cfg.LogLevel, cfg.LogFormat, err = loadLogging(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.CachePath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	return cfg, nil
}

// loadDotEnv loads .env from the working directory, then from the first
// parent directory that has one.
func loadDotEnv() {
	_ = godotenv.Load()

	wd, err := os.Getwd()
	if err != nil {
		return
	}
	dir := wd
	for i := 0; i < 5; i++ { // Limit search depth
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return // Reached filesystem root
		}
		dir = parent
	}
}

func loadLogging() (slog.Level, string, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return 0, "", fmt.Errorf("LOG_LEVEL is invalid: %w", err)
	}
	format := strings.ToLower(getEnv("LOG_FORMAT", "text"))
	if format != "text" && format != "json" {
		return 0, "", fmt.Errorf("LOG_FORMAT must be text or json, got %q", format)
	}
	return level, format, nil
}

func defaultCachePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".bookmarkhub", "cache.db")
	}
	return filepath.Join(home, ".bookmarkhub", "cache.db")
}

func getDuration(key, defaultValue string) (time.Duration, error) {
	d, err := time.ParseDuration(getEnv(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be greater than 0", key)
	}
	return d, nil
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
