// Package http provides HTTP handlers and routing for the registry REST API.
//
// This package implements all HTTP endpoints using the Gin framework. Routes are
// mounted twice by the server, at the root and under /api.
//
// Endpoints:
//   - System: /, /health, /stats, /formats, /config, /build-info, /metrics/summary
//   - Repositories: /repositories, /repositories/:name, /repositories/:name/packages
//   - Packages: /packages, /packages/:name
//
// Error bodies always carry a "detail" key. Not-found and conflict errors carry a
// message string; validation failures (422) carry a list of {loc, msg, type}.
//
// Example Usage:
//
//	handlers := http.NewHandlers(repoSvc, pkgSvc, aggSvc, metrics, cfg.App)
//	handlers.Register(router)
//	handlers.Register(router.Group("/api"))
package http
