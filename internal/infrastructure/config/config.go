package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	App       AppConfig
	Logging   LogConfig
	RateLimit RateLimitConfig
	Seed      SeedConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"3000"`
	Host string `envconfig:"HOST" default:"0.0.0.0"`
}

// AppConfig holds values reported by the informational endpoints.
type AppConfig struct {
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
	NexusURL    string `envconfig:"NEXUS_URL" default:"http://localhost:8081"`
	Version     string `ignored:"true"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// Rate limit scopes
const (
	RateLimitScopeClient = "client"
	RateLimitScopeGlobal = "global"
)

// RateLimitConfig holds rate limiting configuration.
// Scope selects one bucket per client IP or a single bucket for all traffic.
type RateLimitConfig struct {
	RequestsPerSecond int    `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int    `envconfig:"RATE_LIMIT_BURST" default:"200"`
	Enabled           bool   `envconfig:"RATE_LIMIT_ENABLED" default:"false"`
	Scope             string `envconfig:"RATE_LIMIT_SCOPE" default:"client"`
}

// SeedConfig points at an optional YAML file replacing the built-in repositories.
type SeedConfig struct {
	File string `envconfig:"SEED_FILE"`
}

// Version is the API version reported by /health, / and /config.
const Version = "1.0.0"

// Load loads configuration from environment variables.
// A .env file in the working directory is read first; variables already set win.
func Load() (*Config, error) {
	return LoadFiles(".env")
}

// LoadFiles loads the given dotenv files, skipping missing ones, then the environment.
func LoadFiles(files ...string) (*Config, error) {
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.App.Version = Version
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "3000",
			Host: "0.0.0.0",
		},
		App: AppConfig{
			Environment: "development",
			NexusURL:    "http://localhost:8081",
			Version:     Version,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           false,
			Scope:             RateLimitScopeClient,
		},
	}
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

// IsProduction reports whether ENVIRONMENT names a production deployment.
func (a AppConfig) IsProduction() bool {
	return a.Environment == "production" || a.Environment == "prod"
}
