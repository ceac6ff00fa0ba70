package types

import "time"

// Repository describes a named package archive tracked by the registry
type Repository struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Format string `json:"format"`
	URL    string `json:"url"`
	Status string `json:"status"`
}

// RepositoryStatusActive is the status counted as active in statistics
const RepositoryStatusActive = "active"

// IsActive reports whether the repository counts towards active_repositories
func (r Repository) IsActive() bool {
	return r.Status == RepositoryStatusActive
}

// Package is one named+versioned artifact record bound to a repository by name
type Package struct {
	Name       string     `json:"name"`
	Version    string     `json:"version"`
	Repository string     `json:"repository"`
	UploadDate *time.Time `json:"upload_date"`
}

// Stats contains aggregate registry statistics
type Stats struct {
	TotalRepositories    int            `json:"total_repositories"`
	TotalPackages        int            `json:"total_packages"`
	ActiveRepositories   int            `json:"active_repositories"`
	PackagesByRepository map[string]int `json:"packages_by_repository"`
}

// Formats lists the distinct repository formats and known format descriptions
type Formats struct {
	SupportedFormats []string          `json:"supported_formats"`
	FormatInfo       map[string]string `json:"format_info"`
}
