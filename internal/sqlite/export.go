// Catalog export and import as JSONL snapshots. The first line of a
// snapshot is a manifest record carrying a UUIDv7 snapshot ID; every
// following line is one full recipe in canonical (mapping-shape) JSON.
package sqlite

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/cookbook/pkg/types"
)

// Manifest is the header record of a catalog snapshot.
type Manifest struct {
	SnapshotID  string `json:"snapshot_id"`
	CreatedAt   string `json:"created_at"`
	RecipeCount int    `json:"recipe_count"`
}

// Export writes every recipe to path as a JSONL snapshot and returns
// the manifest that was written.
func (s *Store) Export(path string) (*Manifest, error) {
	if !s.attached {
		return nil, types.ErrStoreDetached
	}

	recipes, err := s.recipes.fetchAll()
	if err != nil {
		return nil, err
	}

	manifest := &Manifest{
		SnapshotID:  newSnapshotID(),
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
		RecipeCount: len(recipes),
	}

	records := make([]json.RawMessage, 0, len(recipes)+1)
	head, err := json.Marshal(manifest)
	if err != nil {
		return nil, fmt.Errorf("marshaling manifest: %w", err)
	}
	records = append(records, head)

	for _, recipe := range recipes {
		data, err := json.Marshal(recipe)
		if err != nil {
			return nil, fmt.Errorf("marshaling recipe %d: %w", recipe.RecipeID, err)
		}
		records = append(records, data)
	}

	if err := writeJSONL(path, records); err != nil {
		return nil, fmt.Errorf("%w: writing snapshot: %v", types.ErrStorageUnavailable, err)
	}
	return manifest, nil
}

// Import loads a JSONL snapshot into the catalog, preserving the
// exported recipe IDs. Loading is transactional: either every record
// lands or none does, so a snapshot that collides with existing IDs
// leaves the catalog unchanged. Returns the number of recipes imported.
func (s *Store) Import(path string) (int, error) {
	if !s.attached {
		return 0, types.ErrStoreDetached
	}

	records, err := readJSONL(path)
	if err != nil {
		return 0, fmt.Errorf("%w: reading snapshot: %v", types.ErrStorageUnavailable, err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("%w: beginning import transaction: %v", types.ErrStorageUnavailable, err)
	}
	defer tx.Rollback()

	count := 0
	for _, rec := range records {
		if isManifest(rec) {
			continue
		}

		var recipe types.Recipe
		if err := json.Unmarshal(rec, &recipe); err != nil {
			// Skip records that are valid JSON but not recipes.
			continue
		}

		ingJSON, stepsJSON, err := encodeLists(recipe.Ingredients, recipe.Steps)
		if err != nil {
			return 0, err
		}

		if recipe.RecipeID > 0 {
			_, err = tx.Exec(
				"INSERT INTO recipes (recipe_id, name, description, ingredients, steps) VALUES (?, ?, ?, ?, ?)",
				recipe.RecipeID, recipe.Name, recipe.Description, ingJSON, stepsJSON,
			)
		} else {
			_, err = tx.Exec(
				"INSERT INTO recipes (name, description, ingredients, steps) VALUES (?, ?, ?, ?)",
				recipe.Name, recipe.Description, ingJSON, stepsJSON,
			)
		}
		if err != nil {
			return 0, fmt.Errorf("importing recipe %q: %w", recipe.Name, err)
		}
		count++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%w: committing import: %v", types.ErrStorageUnavailable, err)
	}
	return count, nil
}

// isManifest reports whether a snapshot record is the manifest header.
func isManifest(rec json.RawMessage) bool {
	var m Manifest
	return json.Unmarshal(rec, &m) == nil && m.SnapshotID != ""
}

// newSnapshotID generates a UUID v7 snapshot identifier, falling back
// to v4 if v7 generation fails.
func newSnapshotID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
