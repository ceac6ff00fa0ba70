/*
Package repository implements repository lookup and creation on top of the registry store.

Lookups are exact and case-sensitive. Creating a repository whose name is already
taken fails with registry.ErrConflict; the existing record is never replaced.
*/
package repository
