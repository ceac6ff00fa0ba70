// Package config provides 12-factor configuration management for the registry API.
//
// Configuration is loaded from environment variables with sensible defaults.
// An optional .env file is applied first without overriding variables that are
// already set. CLI flags override both.
//
// Configuration Sections:
//   - Server: HTTP server settings (port, host)
//   - App: environment name and upstream Nexus URL
//   - Logging: Log level and output format
//   - RateLimit: Per-IP rate limiting configuration
//   - Seed: optional YAML file of initial repositories
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	fmt.Printf("Server running on %s\n", cfg.Server.Addr())
//
// Environment Variables:
//   - PORT, HOST, ENVIRONMENT, NEXUS_URL
//   - LOG_LEVEL, LOG_DEV
//   - RATE_LIMIT_RPS, RATE_LIMIT_BURST, RATE_LIMIT_ENABLED (off by default)
//   - RATE_LIMIT_SCOPE: client (per IP) or global
//   - SEED_FILE
package config
