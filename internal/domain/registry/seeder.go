package registry

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ip-solutions-lab/nexus-repository-api/internal/shared/types"
)

// DefaultNexusURL is the base URL of the upstream repository manager
const DefaultNexusURL = "http://localhost:8081"

// Seeder loads the initial set of repositories into a store
type Seeder struct {
	store    *Store
	nexusURL string
}

// seedFile is the on-disk layout accepted by SeedFile
type seedFile struct {
	Repositories []seedRepository `yaml:"repositories"`
}

type seedRepository struct {
	Name   string `yaml:"name"`
	Type   string `yaml:"type"`
	Format string `yaml:"format"`
	URL    string `yaml:"url"`
	Status string `yaml:"status"`
}

// NewSeeder creates a seeder; repository URLs are derived from nexusURL
func NewSeeder(store *Store, nexusURL string) *Seeder {
	if nexusURL == "" {
		nexusURL = DefaultNexusURL
	}
	return &Seeder{
		store:    store,
		nexusURL: strings.TrimRight(nexusURL, "/"),
	}
}

// DefaultRepositories returns the four hosted repositories present at startup
func DefaultRepositories(nexusURL string) []types.Repository {
	base := strings.TrimRight(nexusURL, "/")
	formats := []string{"pypi", "apt", "rpm", "docker"}

	repos := make([]types.Repository, 0, len(formats))
	for _, format := range formats {
		name := format + "-hosted"
		repos = append(repos, types.Repository{
			Name:   name,
			Type:   "hosted",
			Format: format,
			URL:    RepositoryURL(base, name),
			Status: types.RepositoryStatusActive,
		})
	}
	return repos
}

// RepositoryURL builds the canonical URL of a repository under nexusURL
func RepositoryURL(nexusURL, name string) string {
	return fmt.Sprintf("%s/repository/%s/", strings.TrimRight(nexusURL, "/"), name)
}

// SeedDefaults inserts the built-in repositories
func (s *Seeder) SeedDefaults() (int, error) {
	return s.insert(DefaultRepositories(s.nexusURL))
}

// SeedFile inserts repositories declared in a YAML file.
// Missing type, status or url fall back to "hosted", "active" and the derived URL.
func (s *Seeder) SeedFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read seed file: %w", err)
	}

	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return 0, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}

	repos := make([]types.Repository, 0, len(file.Repositories))
	for i, entry := range file.Repositories {
		if entry.Name == "" {
			return 0, fmt.Errorf("seed file %s: repository %d has no name", path, i)
		}
		if entry.Format == "" {
			return 0, fmt.Errorf("seed file %s: repository %q has no format", path, entry.Name)
		}
		repo := types.Repository{
			Name:   entry.Name,
			Type:   entry.Type,
			Format: entry.Format,
			URL:    entry.URL,
			Status: entry.Status,
		}
		if repo.Type == "" {
			repo.Type = "hosted"
		}
		if repo.Status == "" {
			repo.Status = types.RepositoryStatusActive
		}
		if repo.URL == "" {
			repo.URL = RepositoryURL(s.nexusURL, repo.Name)
		}
		repos = append(repos, repo)
	}

	return s.insert(repos)
}

func (s *Seeder) insert(repos []types.Repository) (int, error) {
	var loaded int
	for _, repo := range repos {
		if err := s.store.InsertRepository(repo); err != nil {
			return loaded, fmt.Errorf("failed to seed repository %s: %w", repo.Name, err)
		}
		loaded++
	}
	return loaded, nil
}
