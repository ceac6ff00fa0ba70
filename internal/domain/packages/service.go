// Package packages implements package upload and lookup on top of the registry store.
//
// Uploads are permissive: a package may name a repository that does not exist.
// Listing by repository, on the other hand, requires the repository to exist.
package packages

import (
	"fmt"

	"github.com/ip-solutions-lab/nexus-repository-api/internal/domain/registry"
	"github.com/ip-solutions-lab/nexus-repository-api/internal/shared/types"
	"github.com/ip-solutions-lab/nexus-repository-api/internal/shared/utils"
)

// Store is the subset of the registry store used by the service
type Store interface {
	FindRepository(name string) (types.Repository, bool)
	ListPackages() []types.Package
	FindPackagesByName(name string) []types.Package
	FindPackagesByRepository(repository string) []types.Package
	InsertPackage(p types.Package) types.Package
}

// Service handles package operations
type Service struct {
	store Store
}

// NewService creates a package service
func NewService(store Store) *Service {
	return &Service{store: store}
}

// GetAll returns every package in upload order
func (s *Service) GetAll() []types.Package {
	return s.store.ListPackages()
}

// GetByName returns all versions of a package. No match is ErrNotFound.
func (s *Service) GetByName(name string) ([]types.Package, error) {
	pkgs := s.store.FindPackagesByName(name)
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("%w: package %s", registry.ErrNotFound, name)
	}
	return pkgs, nil
}

// Upload records a package. The upload date is always assigned by the store.
func (s *Service) Upload(p types.Package) (types.Package, error) {
	if err := Validate(p); err != nil {
		return types.Package{}, err
	}
	return s.store.InsertPackage(p), nil
}

// GetByRepository lists the packages bound to an existing repository.
// An existing repository with no packages yields an empty, non-nil slice.
func (s *Service) GetByRepository(repository string) ([]types.Package, error) {
	if _, ok := s.store.FindRepository(repository); !ok {
		return nil, fmt.Errorf("%w: repository %s", registry.ErrNotFound, repository)
	}
	return s.store.FindPackagesByRepository(repository), nil
}

// Validate checks field lengths and content of a package
func Validate(p types.Package) error {
	checks := []error{
		utils.ValidateName(p.Name, "name"),
		utils.ValidateVersion(p.Version),
		utils.ValidateName(p.Repository, "repository"),
	}
	for _, err := range checks {
		if err != nil {
			return fmt.Errorf("%w: %w", registry.ErrValidation, err)
		}
	}
	return nil
}
