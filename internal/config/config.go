package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

// DefaultDatabaseConnectTimeout bounds the start-up connection retries.
const DefaultDatabaseConnectTimeout = 2 * time.Minute

// Config is the complete application configuration.
type Config struct {
	Server ServerConfig
	Logger LoggerConfig
	Game   GameConfig

	// GinMode is one of debug, release or test.
	GinMode string
	// AutoMigrate applies pending migrations on startup.
	AutoMigrate bool
	// DatabaseConnectTimeout caps how long startup waits for the database.
	DatabaseConnectTimeout time.Duration
}

// LoadFromEnv loads every section from environment variables.
func LoadFromEnv() Config {
	return Config{
		Server:                 LoadServerConfigFromEnv(),
		Logger:                 LoadLoggerConfigFromEnv(),
		Game:                   LoadGameConfigFromEnv(),
		GinMode:                GetEnv("GIN_MODE", gin.ReleaseMode),
		AutoMigrate:            GetEnvBool("DB_AUTO_MIGRATE", true),
		DatabaseConnectTimeout: GetEnvDuration("DB_CONNECT_TIMEOUT", DefaultDatabaseConnectTimeout),
	}
}

// Validate checks every section and reports the first problem found.
func (c Config) Validate() error {
	sections := []struct {
		name     string
		validate func() error
	}{
		{"server", c.Server.Validate},
		{"logger", c.Logger.Validate},
		{"game", c.Game.Validate},
	}
	for _, section := range sections {
		if err := section.validate(); err != nil {
			return fmt.Errorf("%s config validation failed: %w", section.name, err)
		}
	}

	switch c.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return fmt.Errorf("invalid GIN_MODE: %s (must be: debug, release, test)", c.GinMode)
	}

	if c.DatabaseConnectTimeout <= 0 {
		return errors.New("DB_CONNECT_TIMEOUT must be positive")
	}
	return nil
}
