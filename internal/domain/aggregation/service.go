// Package aggregation derives statistics and format listings from the registry.
// Nothing is cached; every call reads the current store contents.
package aggregation

import (
	"sort"

	"github.com/ip-solutions-lab/nexus-repository-api/internal/shared/types"
)

// Store is the subset of the registry store used for aggregation
type Store interface {
	Snapshot() ([]types.Repository, []types.Package)
}

// formatInfo describes the well-known repository formats
var formatInfo = map[string]string{
	"pypi":   "Python packages (pip)",
	"apt":    "Debian/Ubuntu packages",
	"rpm":    "Red Hat/CentOS packages",
	"docker": "Docker containers",
	"maven":  "Java/Maven artifacts",
	"npm":    "Node.js packages",
}

// Service computes aggregate views over the registry
type Service struct {
	store Store
}

// NewService creates an aggregation service
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Stats returns repository and package totals.
// Every repository appears in PackagesByRepository, with 0 when it holds nothing;
// packages pointing at unknown repositories count towards TotalPackages only.
func (s *Service) Stats() types.Stats {
	repos, pkgs := s.store.Snapshot()

	stats := types.Stats{
		TotalRepositories:    len(repos),
		TotalPackages:        len(pkgs),
		PackagesByRepository: make(map[string]int, len(repos)),
	}

	for _, r := range repos {
		if r.IsActive() {
			stats.ActiveRepositories++
		}
		stats.PackagesByRepository[r.Name] = 0
	}

	for _, p := range pkgs {
		if _, ok := stats.PackagesByRepository[p.Repository]; ok {
			stats.PackagesByRepository[p.Repository]++
		}
	}

	return stats
}

// SupportedFormats returns the sorted distinct formats of current repositories
// along with the static description table
func (s *Service) SupportedFormats() types.Formats {
	repos, _ := s.store.Snapshot()

	seen := make(map[string]struct{}, len(repos))
	formats := make([]string, 0, len(repos))
	for _, r := range repos {
		if _, ok := seen[r.Format]; ok {
			continue
		}
		seen[r.Format] = struct{}{}
		formats = append(formats, r.Format)
	}
	sort.Strings(formats)

	info := make(map[string]string, len(formatInfo))
	for k, v := range formatInfo {
		info[k] = v
	}

	return types.Formats{
		SupportedFormats: formats,
		FormatInfo:       info,
	}
}
