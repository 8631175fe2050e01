// Package sqlite implements the SQLite storage backend for the cookbook
// recipe catalog. A Store owns the database connection and guarantees
// the schema exists before any repository operation runs; the Recipes
// accessor is the sole translator between Recipe entities and rows.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/cookbook/pkg/types"
)

// DBFileName is the SQLite database file created inside DataDir.
const DBFileName = "recipes.db"

// Store manages the connection to the recipe database.
// The store is not attached on creation; call Attach with a Config.
type Store struct {
	attached bool
	db       *sql.DB
	recipes  *Recipes
}

// NewStore creates a new unattached Store.
func NewStore() *Store {
	return &Store{}
}

// Attach opens (or creates) the database file under cfg.DataDir, enables
// foreign-key enforcement for the session, and applies the schema.
// Schema application is idempotent: attaching to an already-initialized
// database leaves its rows untouched.
// Returns ErrAlreadyAttached if called while attached. Open and DDL
// failures wrap ErrStorageUnavailable.
func (s *Store) Attach(cfg types.Config) error {
	if s.attached {
		return types.ErrAlreadyAttached
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("%w: creating data dir: %v", types.ErrStorageUnavailable, err)
	}

	dbPath := filepath.Join(dataDir, DBFileName)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("%w: opening %s: %v", types.ErrStorageUnavailable, dbPath, err)
	}

	// Foreign keys are per-connection in SQLite; enable on every attach.
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return fmt.Errorf("%w: enabling foreign keys: %v", types.ErrStorageUnavailable, err)
	}

	if _, err := db.Exec(schemaDDL); err != nil {
		db.Close()
		return fmt.Errorf("%w: applying schema: %v", types.ErrStorageUnavailable, err)
	}

	s.db = db
	s.recipes = &Recipes{store: s}
	s.attached = true

	return nil
}

// Detach closes the database connection and releases resources.
// Idempotent: detaching a detached store succeeds. After Detach,
// repository operations return ErrStoreDetached.
func (s *Store) Detach() error {
	if !s.attached {
		return nil
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return fmt.Errorf("closing database: %w", err)
		}
		s.db = nil
	}

	s.attached = false
	s.recipes = nil
	return nil
}

// Recipes returns the recipe repository.
// Returns ErrStoreDetached if the store is not attached.
func (s *Store) Recipes() (*Recipes, error) {
	if !s.attached {
		return nil, types.ErrStoreDetached
	}
	return s.recipes, nil
}
