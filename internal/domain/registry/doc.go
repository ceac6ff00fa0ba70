// Package registry provides the in-memory repository and package store.
//
// The store is the single shared mutable resource of the service. It keeps
// repositories and packages in insertion-ordered slices guarded by one
// RWMutex; the repository name uniqueness check and the append run under
// the same write lock.
//
// Components:
//   - Store: Query/insert primitives over both collections
//   - Seeder: Loads the built-in hosted repositories or a YAML seed file
//   - Errors: Sentinel errors shared by the services built on the store
//
// Invariants:
//   - Repository names are unique (exact, case-sensitive)
//   - Records are never updated or removed once added
//   - Package upload dates are stamped by the store, never by callers
//   - Returned slices are copies; callers cannot mutate store memory
//
// Seed File Format:
//
//	repositories:
//	  - name: maven-hosted
//	    format: maven
//	  - name: npm-proxy
//	    type: proxy
//	    format: npm
//	    url: https://registry.npmjs.org/
//
// Example Usage:
//
//	store := registry.NewStore()
//	seeder := registry.NewSeeder(store, "http://localhost:8081")
//	if _, err := seeder.SeedDefaults(); err != nil {
//	    return err
//	}
//	pkg := store.InsertPackage(types.Package{Name: "pkg1", Version: "1.0.0", Repository: "pypi-hosted"})
package registry
