package config

import (
	"fmt"
	"strings"
)

// DefaultServiceName tags every log line of this service.
const DefaultServiceName = "provernaire-backend"

// LoggerConfig holds logger configuration.
type LoggerConfig struct {
	// Level is one of debug, info, warn, error.
	Level string
	// Format is json or console.
	Format string
	// Output is stdout, stderr or a file path.
	Output string
	// ServiceName is attached to every entry as the "service" field.
	ServiceName string
}

// LoadLoggerConfigFromEnv loads logger configuration from LOG_* variables.
// Level and format are case-insensitive.
func LoadLoggerConfigFromEnv() LoggerConfig {
	return LoggerConfig{
		Level:       strings.ToLower(GetEnv("LOG_LEVEL", "info")),
		Format:      strings.ToLower(GetEnv("LOG_FORMAT", "json")),
		Output:      GetEnv("LOG_OUTPUT", "stdout"),
		ServiceName: GetEnv("LOG_SERVICE_NAME", DefaultServiceName),
	}
}

// Validate validates logger configuration.
func (c LoggerConfig) Validate() error {
	switch c.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s (must be: debug, info, warn, error)", c.Level)
	}

	switch c.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log format: %s (must be: json, console)", c.Format)
	}

	return nil
}

// IsProduction reports whether the production zap preset applies: JSON
// output at info level or above.
func (c LoggerConfig) IsProduction() bool {
	return c.Format == "json" && c.Level != "debug"
}
