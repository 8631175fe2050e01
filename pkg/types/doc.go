// Package types defines the Recipe entity, the storage Config, and the
// sentinel errors shared between the CLI and the SQLite store.
package types
