package repository

import (
	"errors"
	"fmt"

	"github.com/ip-solutions-lab/nexus-repository-api/internal/domain/registry"
	"github.com/ip-solutions-lab/nexus-repository-api/internal/shared/types"
	"github.com/ip-solutions-lab/nexus-repository-api/internal/shared/utils"
)

// Store is the subset of the registry store used by the service
type Store interface {
	ListRepositories() []types.Repository
	FindRepository(name string) (types.Repository, bool)
	InsertRepository(r types.Repository) error
}

// Service handles repository operations
type Service struct {
	store Store
}

// NewService creates a repository service
func NewService(store Store) *Service {
	return &Service{store: store}
}

// GetAll returns every repository in insertion order
func (s *Service) GetAll() []types.Repository {
	return s.store.ListRepositories()
}

// GetByName returns the repository with the given name
func (s *Service) GetByName(name string) (types.Repository, error) {
	repo, ok := s.store.FindRepository(name)
	if !ok {
		return types.Repository{}, fmt.Errorf("%w: repository %s", registry.ErrNotFound, name)
	}
	return repo, nil
}

// Create validates and stores a new repository
func (s *Service) Create(r types.Repository) (types.Repository, error) {
	if err := Validate(r); err != nil {
		return types.Repository{}, err
	}

	if err := s.store.InsertRepository(r); err != nil {
		if errors.Is(err, registry.ErrAlreadyExists) {
			return types.Repository{}, fmt.Errorf("%w: repository %s already exists", registry.ErrConflict, r.Name)
		}
		return types.Repository{}, err
	}
	return r, nil
}

// Validate checks field lengths and content of a repository
func Validate(r types.Repository) error {
	checks := []error{
		utils.ValidateName(r.Name, "name"),
		utils.ValidateLabel(r.Type, "type"),
		utils.ValidateLabel(r.Format, "format"),
		utils.ValidateURL(r.URL),
		utils.ValidateLabel(r.Status, "status"),
	}
	for _, err := range checks {
		if err != nil {
			return fmt.Errorf("%w: %w", registry.ErrValidation, err)
		}
	}
	return nil
}
