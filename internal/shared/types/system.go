package types

import "time"

// HealthResponse is returned by the liveness probe
type HealthResponse struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Version     string    `json:"version"`
	Environment string    `json:"environment"`
}

// InfoResponse is the welcome payload served at the root path
type InfoResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Docs    string `json:"docs"`
	Health  string `json:"health"`
}

// ConfigResponse echoes the static service configuration
type ConfigResponse struct {
	NexusURL            string   `json:"nexus_url"`
	APIVersion          string   `json:"api_version"`
	SupportedOperations []string `json:"supported_operations"`
}

// BuildInfo describes the running binary
type BuildInfo struct {
	Module      string   `json:"module"`
	Version     string   `json:"version"`
	GoVersion   string   `json:"go_version"`
	Platform    string   `json:"platform"`
	Environment string   `json:"environment"`
	VCS         *VCSInfo `json:"vcs,omitempty"`
}

// VCSInfo holds version-control stamps embedded at build time
type VCSInfo struct {
	System   string `json:"system"`
	Revision string `json:"revision"`
	Time     string `json:"time,omitempty"`
	Modified bool   `json:"modified"`
}

// ErrorResponse is the body of every non-2xx API response
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ValidationIssue locates one failed constraint in a request body
type ValidationIssue struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// ValidationErrorResponse is the 422 body; detail lists every failed constraint
type ValidationErrorResponse struct {
	Detail []ValidationIssue `json:"detail"`
}

// MetricsSummary is a JSON digest of request and registry metrics
type MetricsSummary struct {
	Timestamp        time.Time `json:"timestamp"`
	TotalRequests    int64     `json:"total_requests"`
	AverageLatencyMs float64   `json:"average_latency_ms"`
	ErrorRate        float64   `json:"error_rate"`
	UptimeSeconds    float64   `json:"uptime_seconds"`
	Repositories     int       `json:"repositories"`
	Packages         int       `json:"packages"`
}
