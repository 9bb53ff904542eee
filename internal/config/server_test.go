package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validServerConfig() ServerConfig {
	return ServerConfig{
		Port:            ":8080",
		ReadTimeout:     time.Second,
		WriteTimeout:    time.Second,
		IdleTimeout:     time.Second,
		ShutdownTimeout: time.Second,
		MaxHeaderBytes:  1024,
	}
}

func TestLoadServerConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{
			"SERVER_HOST", "SERVER_PORT", "SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT",
			"SERVER_IDLE_TIMEOUT", "SERVER_SHUTDOWN_TIMEOUT", "SERVER_MAX_HEADER_BYTES",
		} {
			t.Setenv(key, "")
		}

		cfg := LoadServerConfigFromEnv()

		assert.Equal(t, ServerConfig{
			Port:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 15 * time.Second,
			MaxHeaderBytes:  1 << 20,
		}, cfg)
	})

	t.Run("custom values", func(t *testing.T) {
		t.Setenv("SERVER_HOST", "0.0.0.0")
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("SERVER_READ_TIMEOUT", "30s")
		t.Setenv("SERVER_SHUTDOWN_TIMEOUT", "0s")
		t.Setenv("SERVER_MAX_HEADER_BYTES", "4096")

		cfg := LoadServerConfigFromEnv()

		assert.Equal(t, "0.0.0.0", cfg.Host)
		assert.Equal(t, "9090", cfg.Port)
		assert.Equal(t, 30*time.Second, cfg.ReadTimeout)
		assert.Equal(t, time.Duration(0), cfg.ShutdownTimeout)
		assert.Equal(t, 4096, cfg.MaxHeaderBytes)
		assert.NoError(t, cfg.Validate())
	})
}

func TestServerConfig_GetAddress(t *testing.T) {
	tests := []struct {
		host, port, want string
	}{
		{"", ":8080", ":8080"},
		{"", "8080", ":8080"},
		{"localhost", ":8080", "localhost:8080"},
		{"127.0.0.1", "3000", "127.0.0.1:3000"},
		{"::1", "8080", "[::1]:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.host+"|"+tt.port, func(t *testing.T) {
			assert.Equal(t, tt.want, ServerConfig{Host: tt.host, Port: tt.port}.GetAddress())
		})
	}
}

func TestServerConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ServerConfig)
		wantErr string
	}{
		{name: "valid", mutate: func(*ServerConfig) {}},
		{name: "zero shutdown timeout", mutate: func(c *ServerConfig) { c.ShutdownTimeout = 0 }},
		{name: "empty port", mutate: func(c *ServerConfig) { c.Port = ":" }, wantErr: "Port"},
		{name: "read timeout", mutate: func(c *ServerConfig) { c.ReadTimeout = 0 }, wantErr: "ReadTimeout"},
		{name: "write timeout", mutate: func(c *ServerConfig) { c.WriteTimeout = -time.Second }, wantErr: "WriteTimeout"},
		{name: "idle timeout", mutate: func(c *ServerConfig) { c.IdleTimeout = 0 }, wantErr: "IdleTimeout"},
		{name: "negative shutdown", mutate: func(c *ServerConfig) { c.ShutdownTimeout = -1 }, wantErr: "ShutdownTimeout"},
		{name: "header bytes", mutate: func(c *ServerConfig) { c.MaxHeaderBytes = 0 }, wantErr: "MaxHeaderBytes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validServerConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
