// Package main is the entry point for the Nexus Repository Manager API.
//
// Commands:
//   - serve: start the HTTP server
//   - version: print version and build stamps
//
// Configuration:
//   - Environment variables (12-factor)
//   - Optional .env file (--env-file)
//   - CLI flags (override env vars)
//
// Usage:
//
//	# Production mode
//	nexus-api serve --host 0.0.0.0 --port 3000
//
//	# Development mode (colored logs)
//	nexus-api serve --dev --log-level debug
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
