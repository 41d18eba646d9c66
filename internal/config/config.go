package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/m-mizutani/goerr/v2"
)

type Config struct {
	ServerPort     string
	SessionSecret  string
	SessionMaxAge  time.Duration
	DBDSN          string
	DangerGridFile string
	LogLevel       string
	LogFormat      string
	GinMode        string
}

// Load reads settings from the environment. A .env file in the working
// directory is merged in first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	maxAge, err := time.ParseDuration(envOrDefault("SESSION_MAX_AGE", "12h"))
	if err != nil || maxAge <= 0 {
		return nil, goerr.New("invalid SESSION_MAX_AGE", goerr.V("value", os.Getenv("SESSION_MAX_AGE")))
	}

	cfg := &Config{
		ServerPort:     envOrDefault("SERVER_PORT", "8080"),
		SessionSecret:  os.Getenv("SESSION_SECRET"),
		SessionMaxAge:  maxAge,
		DBDSN:          os.Getenv("DB_DSN"),
		DangerGridFile: os.Getenv("DANGER_GRID_FILE"),
		LogLevel:       strings.ToLower(envOrDefault("LOG_LEVEL", "info")),
		LogFormat:      strings.ToLower(envOrDefault("LOG_FORMAT", "json")),
		GinMode:        envOrDefault("GIN_MODE", "release"),
	}

	if cfg.SessionSecret == "" {
		return nil, errors.New("SESSION_SECRET is not set")
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, goerr.New("invalid LOG_LEVEL", goerr.V("value", cfg.LogLevel))
	}
	switch cfg.LogFormat {
	case "json", "text":
	default:
		return nil, goerr.New("invalid LOG_FORMAT", goerr.V("value", cfg.LogFormat))
	}

	return cfg, nil
}

// AuditEnabled reports whether grid edits are journaled to postgres.
func (c *Config) AuditEnabled() bool {
	return c.DBDSN != ""
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
