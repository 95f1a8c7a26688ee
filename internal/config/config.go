package config

import (
	"os"
	"strconv"
	"time"

	"drugdash/internal/errors"

	"golang.org/x/crypto/bcrypt"
)

// Config represents the complete application configuration
type Config struct {
	Data      DataConfig
	Store     StoreConfig
	Server    ServerConfig
	Auth      AuthConfig
	Metrics   MetricsConfig
	Profiling ProfilingConfig
}

// DataConfig points at the tabular sources loaded at startup
type DataConfig struct {
	File            string
	CredentialsFile string
	AssetsDir       string
}

// StoreConfig selects the relational mirror of the dataset
type StoreConfig struct {
	Driver string // "sqlite3" or "postgres"
	URL    string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port            string
	APIPort         string
	GinMode         string
	ShutdownTimeout time.Duration
}

// AuthConfig holds export gate settings
type AuthConfig struct {
	SessionCookie string
	BcryptCost    int
}

// MetricsConfig toggles the prometheus endpoint
type MetricsConfig struct {
	Enabled bool
}

// ProfilingConfig holds pprof server settings
type ProfilingConfig struct {
	Enabled bool
	Port    string
}

const (
	DefaultDataFile        = "drug_effectiveness_realistic_null_weight_data.csv"
	DefaultStoreURL        = "drug_effectiveness_realistic_null_weight_data.db"
	DefaultCredentialsFile = "credential_database.csv"
)

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg := &Config{
		Data: DataConfig{
			File:            getEnvOrDefault("DATA_FILE", DefaultDataFile),
			CredentialsFile: getEnvOrDefault("CREDENTIALS_FILE", DefaultCredentialsFile),
			AssetsDir:       getEnvOrDefault("ASSETS_DIR", "./assets"),
		},
		Store: StoreConfig{
			Driver: getEnvOrDefault("STORE_DRIVER", "sqlite3"),
			URL:    getEnvOrDefault("DATABASE_URL", DefaultStoreURL),
		},
		Server: ServerConfig{
			Port:            getEnvOrDefault("PORT", "8080"),
			APIPort:         getEnvOrDefault("API_PORT", "8081"),
			GinMode:         getEnvOrDefault("GIN_MODE", "debug"),
			ShutdownTimeout: getEnvDurationOrDefault("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Auth: AuthConfig{
			SessionCookie: getEnvOrDefault("SESSION_COOKIE", "drugdash_session"),
			BcryptCost:    getEnvIntOrDefault("BCRYPT_COST", bcrypt.DefaultCost),
		},
		Metrics: MetricsConfig{
			Enabled: getEnvBoolOrDefault("METRICS_ENABLED", true),
		},
		Profiling: ProfilingConfig{
			Enabled: getEnvBoolOrDefault("PROFILING_ENABLED", false),
			Port:    getEnvOrDefault("PROFILING_PORT", "6060"),
		},
	}

	if err := Validate(cfg); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return cfg, nil
}

// Validate checks the fields every binary depends on
func Validate(cfg *Config) error {
	if cfg.Data.File == "" {
		return errors.ConfigInvalid("DATA_FILE is required")
	}
	switch cfg.Store.Driver {
	case "sqlite3", "postgres":
	default:
		return errors.ConfigInvalid("STORE_DRIVER must be sqlite3 or postgres, got " + strconv.Quote(cfg.Store.Driver))
	}
	if cfg.Store.URL == "" {
		return errors.ConfigInvalid("DATABASE_URL is required")
	}
	if cfg.Auth.BcryptCost < bcrypt.MinCost || cfg.Auth.BcryptCost > bcrypt.MaxCost {
		return errors.ConfigInvalid("BCRYPT_COST out of range")
	}
	if cfg.Auth.SessionCookie == "" {
		return errors.ConfigInvalid("SESSION_COOKIE is required")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
