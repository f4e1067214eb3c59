// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Client holds the client binary configuration.
type Client struct {
	ServerURL string     `env:"STATSYNC_SERVER_URL" envDefault:"http://localhost:8080"`
	DBPath    string     `env:"STATSYNC_DB_PATH" envDefault:"statsync-client.db"`
	OwnerID   string     `env:"STATSYNC_OWNER_ID" envDefault:"local"`
	LogLevel  slog.Level `env:"STATSYNC_LOG_LEVEL" envDefault:"INFO"`
}

// Server holds the reference server configuration.
type Server struct {
	HTTPAddr string     `env:"STATSYNC_HTTP_ADDR" envDefault:":8080"`
	DBPath   string     `env:"STATSYNC_DB_PATH" envDefault:"statsync-server.db"`
	LogLevel slog.Level `env:"STATSYNC_LOG_LEVEL" envDefault:"INFO"`
}

// LoadClient parses the client configuration from the environment
func LoadClient() (*Client, error) {
	cfg, err := env.ParseAs[Client]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}

// LoadServer parses the server configuration from the environment
func LoadServer() (*Server, error) {
	cfg, err := env.ParseAs[Server]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}
