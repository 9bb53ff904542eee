package config

import (
	"errors"
	"net"
	"strings"
	"time"
)

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	// Host is the listen host. Empty means all interfaces.
	Host string
	// Port is the listen port, with or without a leading colon.
	Port string
	// ReadTimeout bounds reading the whole request.
	ReadTimeout time.Duration
	// WriteTimeout bounds writing the response.
	WriteTimeout time.Duration
	// IdleTimeout bounds keep-alive connections between requests.
	IdleTimeout time.Duration
	// ShutdownTimeout bounds graceful shutdown of in-flight requests.
	ShutdownTimeout time.Duration
	// MaxHeaderBytes caps request header size.
	MaxHeaderBytes int
}

// LoadServerConfigFromEnv loads server configuration from SERVER_* variables.
func LoadServerConfigFromEnv() ServerConfig {
	return ServerConfig{
		Host:            GetEnv("SERVER_HOST", ""),
		Port:            GetEnv("SERVER_PORT", ":8080"),
		ReadTimeout:     GetEnvDuration("SERVER_READ_TIMEOUT", 10*time.Second),
		WriteTimeout:    GetEnvDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
		IdleTimeout:     GetEnvDuration("SERVER_IDLE_TIMEOUT", 120*time.Second),
		ShutdownTimeout: GetEnvDuration("SERVER_SHUTDOWN_TIMEOUT", 15*time.Second),
		MaxHeaderBytes:  GetEnvInt("SERVER_MAX_HEADER_BYTES", 1<<20),
	}
}

// GetAddress returns the listen address in host:port form. Without a host
// it is ":port".
func (c ServerConfig) GetAddress() string {
	return net.JoinHostPort(c.Host, strings.TrimPrefix(c.Port, ":"))
}

// Validate validates server configuration.
func (c ServerConfig) Validate() error {
	switch {
	case strings.TrimPrefix(c.Port, ":") == "":
		return errors.New("Port must not be empty")
	case c.ReadTimeout <= 0:
		return errors.New("ReadTimeout must be greater than 0")
	case c.WriteTimeout <= 0:
		return errors.New("WriteTimeout must be greater than 0")
	case c.IdleTimeout <= 0:
		return errors.New("IdleTimeout must be greater than 0")
	case c.ShutdownTimeout < 0:
		return errors.New("ShutdownTimeout must be non-negative")
	case c.MaxHeaderBytes <= 0:
		return errors.New("MaxHeaderBytes must be greater than 0")
	}
	return nil
}
