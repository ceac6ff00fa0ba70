package registry

import "errors"

var (
	// ErrAlreadyExists is returned by the store when a repository name is taken
	ErrAlreadyExists = errors.New("repository already exists")

	// ErrNotFound signals that a lookup by name yielded nothing
	ErrNotFound = errors.New("not found")

	// ErrConflict signals an attempt to create a repository whose name is taken
	ErrConflict = errors.New("conflict")

	// ErrValidation signals a payload that failed schema or field checks
	ErrValidation = errors.New("validation failed")
)
