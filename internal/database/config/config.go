// Package config provides database configuration management.
package config

import (
	"fmt"
	"strconv"
	"strings"

	appconfig "github.com/Tolex081/provernaire-backend/internal/config"
	"github.com/Tolex081/provernaire-backend/internal/database/pool"
	"github.com/Tolex081/provernaire-backend/pkg/retry"
)

// Driver selects the SQL backend.
type Driver string

// Supported drivers.
const (
	DriverPostgres Driver = "postgres"
	DriverSQLite   Driver = "sqlite"
)

// Config holds database connection configuration.
type Config struct {
	Driver     Driver
	Host       string
	User       string
	Password   string
	DBName     string
	Port       string
	SSLMode    string
	TimeZone   string
	SQLitePath string
}

// GetEnv reads an environment variable with a default fallback.
func GetEnv(key, defaultValue string) string {
	return appconfig.GetEnv(key, defaultValue)
}

// BuildDSN constructs PostgreSQL DSN string from configuration.
func BuildDSN(cfg Config) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		cfg.Host, cfg.User, cfg.Password, cfg.DBName, cfg.Port, cfg.SSLMode, cfg.TimeZone)
}

// LoadConfigFromEnv loads database configuration from environment variables.
func LoadConfigFromEnv() Config {
	return Config{
		Driver:     Driver(strings.ToLower(GetEnv("DB_DRIVER", string(DriverPostgres)))),
		Host:       GetEnv("DB_HOST", "localhost"),
		User:       GetEnv("DB_USER", "postgres"),
		Password:   GetEnv("DB_PASSWORD", "postgres"),
		DBName:     GetEnv("DB_NAME", "provernaire"),
		Port:       GetEnv("DB_PORT", "5432"),
		SSLMode:    GetEnv("DB_SSLMODE", "disable"),
		TimeZone:   GetEnv("DB_TIMEZONE", "UTC"),
		SQLitePath: GetEnv("DB_SQLITE_PATH", "provernaire.db"),
	}
}

// Validate validates database configuration for the selected driver.
func (c Config) Validate() error {
	switch c.Driver {
	case DriverPostgres:
		if c.Host == "" {
			return fmt.Errorf("DB_HOST must not be empty")
		}
		if c.DBName == "" {
			return fmt.Errorf("DB_NAME must not be empty")
		}
		if _, err := strconv.Atoi(c.Port); err != nil {
			return fmt.Errorf("invalid DB_PORT: %s", c.Port)
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("DB_SQLITE_PATH must not be empty")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER: %q (must be postgres or sqlite)", c.Driver)
	}
	return nil
}

// SanitizeError removes sensitive information (password) from error messages.
func SanitizeError(err error, cfg Config) error {
	if err == nil {
		return nil
	}
	errMsg := err.Error()
	if cfg.Password != "" {
		errMsg = strings.ReplaceAll(errMsg, cfg.Password, "***")
	}
	return fmt.Errorf("failed to connect to database: %s", errMsg)
}

// LoadRetryConfigFromEnv loads retry configuration from environment variables.
func LoadRetryConfigFromEnv() retry.Config {
	cfg := retry.PostgresConfig()
	cfg.MaxAttempts = appconfig.GetEnvInt("DB_RETRY_MAX_ATTEMPTS", cfg.MaxAttempts)
	cfg.InitialDelay = appconfig.GetEnvDuration("DB_RETRY_INITIAL_DELAY", cfg.InitialDelay)
	cfg.MaxDelay = appconfig.GetEnvDuration("DB_RETRY_MAX_DELAY", cfg.MaxDelay)
	cfg.Multiplier = appconfig.GetEnvFloat("DB_RETRY_MULTIPLIER", cfg.Multiplier)
	return cfg
}

// LoadPoolConfigFromEnv loads connection pool settings from environment variables.
func LoadPoolConfigFromEnv() pool.Config {
	cfg := pool.DefaultPoolConfig()
	cfg.MaxOpenConns = appconfig.GetEnvInt("DB_MAX_OPEN_CONNS", cfg.MaxOpenConns)
	cfg.MaxIdleConns = appconfig.GetEnvInt("DB_MAX_IDLE_CONNS", cfg.MaxIdleConns)
	cfg.ConnMaxLifetime = appconfig.GetEnvDuration("DB_CONN_MAX_LIFETIME", cfg.ConnMaxLifetime)
	cfg.ConnMaxIdleTime = appconfig.GetEnvDuration("DB_CONN_MAX_IDLE_TIME", cfg.ConnMaxIdleTime)
	return cfg
}
