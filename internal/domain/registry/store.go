package registry

import (
	"fmt"
	"sync"
	"time"

	"github.com/ip-solutions-lab/nexus-repository-api/internal/shared/types"
)

// Store is the in-memory owner of all repository and package records.
// One lock guards both collections so every read sees a consistent pair.
type Store struct {
	mu           sync.RWMutex
	repositories []types.Repository
	byName       map[string]int // repository name -> index in repositories
	packages     []types.Package
	now          func() time.Time
}

// Option configures a Store
type Option func(*Store)

// WithClock overrides the clock used to stamp upload dates
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore creates an empty store
func NewStore(opts ...Option) *Store {
	s := &Store{
		byName: make(map[string]int),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListRepositories returns all repositories in insertion order
func (s *Store) ListRepositories() []types.Repository {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]types.Repository, len(s.repositories))
	copy(out, s.repositories)
	return out
}

// FindRepository looks up a repository by exact name
func (s *Store) FindRepository(name string) (types.Repository, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byName[name]
	if !ok {
		return types.Repository{}, false
	}
	return s.repositories[idx], true
}

// InsertRepository appends a repository unless its name is already taken
func (s *Store) InsertRepository(r types.Repository) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byName[r.Name]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyExists, r.Name)
	}

	s.byName[r.Name] = len(s.repositories)
	s.repositories = append(s.repositories, r)
	return nil
}

// ListPackages returns all packages in insertion order
func (s *Store) ListPackages() []types.Package {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]types.Package, len(s.packages))
	for i, p := range s.packages {
		out[i] = clonePackage(p)
	}
	return out
}

// FindPackagesByName returns every package whose name matches exactly
func (s *Store) FindPackagesByName(name string) []types.Package {
	return s.filterPackages(func(p types.Package) bool {
		return p.Name == name
	})
}

// FindPackagesByRepository returns every package bound to the named repository
func (s *Store) FindPackagesByRepository(repository string) []types.Package {
	return s.filterPackages(func(p types.Package) bool {
		return p.Repository == repository
	})
}

// InsertPackage stamps the upload date, appends the package and returns the stored copy
func (s *Store) InsertPackage(p types.Package) types.Package {
	s.mu.Lock()
	defer s.mu.Unlock()

	uploaded := s.now()
	p.UploadDate = &uploaded
	s.packages = append(s.packages, p)

	return clonePackage(p)
}

// Snapshot returns both collections as read under a single lock acquisition
func (s *Store) Snapshot() ([]types.Repository, []types.Package) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	repos := make([]types.Repository, len(s.repositories))
	copy(repos, s.repositories)

	pkgs := make([]types.Package, len(s.packages))
	for i, p := range s.packages {
		pkgs[i] = clonePackage(p)
	}
	return repos, pkgs
}

// Counts returns the number of repositories and packages held
func (s *Store) Counts() (repositories, packages int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.repositories), len(s.packages)
}

func (s *Store) filterPackages(match func(types.Package) bool) []types.Package {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]types.Package, 0)
	for _, p := range s.packages {
		if match(p) {
			out = append(out, clonePackage(p))
		}
	}
	return out
}

// clonePackage detaches the upload date pointer from store memory
func clonePackage(p types.Package) types.Package {
	if p.UploadDate != nil {
		t := *p.UploadDate
		p.UploadDate = &t
	}
	return p
}
