// Package types provides shared data structures for the repository API.
//
// Core Types:
//   - Repository: Named package archive (pypi, apt, rpm, docker, ...)
//   - Package: One name+version record owned by a repository
//   - Stats, Formats: Derived aggregate views
//
// Request Types:
//   - CreateRepositoryRequest, UploadPackageRequest: JSON payloads with
//     required-field binding; pointer fields distinguish "missing" from "empty"
//
// Response Types:
//   - HealthResponse, InfoResponse, ConfigResponse, BuildInfo, MetricsSummary
//   - ErrorResponse ({"detail": "..."}) and ValidationErrorResponse (422)
//
// Example Usage:
//
//	repo := types.Repository{
//	    Name:   "pypi-hosted",
//	    Type:   "hosted",
//	    Format: "pypi",
//	    URL:    "http://localhost:8081/repository/pypi-hosted/",
//	    Status: types.RepositoryStatusActive,
//	}
package types
