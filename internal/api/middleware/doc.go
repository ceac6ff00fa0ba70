// Package middleware provides the HTTP middleware stack of the registry API.
//
// Middleware stack includes:
//   - CORS: Cross-origin resource sharing, allow-all by default
//   - RateLimit: Per-IP token bucket rate limiting
//   - Recovery: Panic recovery with a {"detail"} error body
//   - AccessLog: One structured zap line per request
//
// Rate Limiting:
//   - Per-IP tracking; idle clients are evicted after ClientTTL
//   - Token bucket algorithm
//   - Configurable RPS and burst capacity
//   - Global rate limiting option
//
// Example Usage:
//
//	router.Use(middleware.Recovery(logger))
//	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
//	router.Use(middleware.RateLimit(middleware.DefaultRateLimitConfig()))
package middleware
