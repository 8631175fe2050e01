// This file implements the recipe repository: create, list, get,
// update, and delete over the recipes table. Ingredient and step lists
// cross the storage boundary as JSON text encoded and decoded only here.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mesh-intelligence/cookbook/pkg/types"
)

// Recipes is the repository over the recipes table. Each operation is
// independent and atomic at the single-row level; update and delete
// report "no such id" as a false return rather than an error.
type Recipes struct {
	store *Store
}

// Create inserts a new recipe and returns the storage-assigned ID.
func (r *Recipes) Create(name, description string, ingredients []types.Ingredient, steps []string) (int64, error) {
	if !r.store.attached {
		return 0, types.ErrStoreDetached
	}

	ingJSON, stepsJSON, err := encodeLists(ingredients, steps)
	if err != nil {
		return 0, err
	}

	res, err := r.store.db.Exec(
		"INSERT INTO recipes (name, description, ingredients, steps) VALUES (?, ?, ?, ?)",
		name, description, ingJSON, stepsJSON,
	)
	if err != nil {
		return 0, fmt.Errorf("%w: inserting recipe: %v", types.ErrStorageUnavailable, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: reading new recipe id: %v", types.ErrStorageUnavailable, err)
	}
	return id, nil
}

// ListSummaries returns (id, name, description) for every recipe,
// ordered by ID. The nested list fields are deliberately not fetched;
// callers needing full detail use Get per recipe. An empty catalog
// yields an empty slice, not an error.
func (r *Recipes) ListSummaries() ([]types.Summary, error) {
	if !r.store.attached {
		return nil, types.ErrStoreDetached
	}

	rows, err := r.store.db.Query(
		"SELECT recipe_id, name, description FROM recipes ORDER BY recipe_id",
	)
	if err != nil {
		return nil, fmt.Errorf("%w: listing recipes: %v", types.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	summaries := []types.Summary{}
	for rows.Next() {
		var s types.Summary
		if err := rows.Scan(&s.RecipeID, &s.Name, &s.Description); err != nil {
			return nil, fmt.Errorf("scanning recipe summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating recipe summaries: %w", err)
	}
	return summaries, nil
}

// Get retrieves a full recipe by ID, hydrating the nested list fields.
// Returns ErrNotFound if no recipe has the given ID.
func (r *Recipes) Get(id int64) (*types.Recipe, error) {
	if !r.store.attached {
		return nil, types.ErrStoreDetached
	}

	row := r.store.db.QueryRow(
		"SELECT recipe_id, name, description, ingredients, steps FROM recipes WHERE recipe_id = ?",
		id,
	)
	recipe, err := hydrateRecipe(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting recipe %d: %w", id, err)
	}
	return recipe, nil
}

// Update overwrites every field of the recipe with the given ID.
// All fields must be supplied even if unchanged; there is no
// partial-field merge. Returns false, nil if no recipe has the ID.
func (r *Recipes) Update(id int64, name, description string, ingredients []types.Ingredient, steps []string) (bool, error) {
	if !r.store.attached {
		return false, types.ErrStoreDetached
	}

	ingJSON, stepsJSON, err := encodeLists(ingredients, steps)
	if err != nil {
		return false, err
	}

	res, err := r.store.db.Exec(
		"UPDATE recipes SET name = ?, description = ?, ingredients = ?, steps = ? WHERE recipe_id = ?",
		name, description, ingJSON, stepsJSON, id,
	)
	if err != nil {
		return false, fmt.Errorf("%w: updating recipe %d: %v", types.ErrStorageUnavailable, id, err)
	}
	return affectedOne(res)
}

// Delete removes the recipe with the given ID permanently.
// Returns false, nil if no recipe has the ID.
func (r *Recipes) Delete(id int64) (bool, error) {
	if !r.store.attached {
		return false, types.ErrStoreDetached
	}

	res, err := r.store.db.Exec("DELETE FROM recipes WHERE recipe_id = ?", id)
	if err != nil {
		return false, fmt.Errorf("%w: deleting recipe %d: %v", types.ErrStorageUnavailable, id, err)
	}
	return affectedOne(res)
}

// fetchAll retrieves every recipe with full detail, ordered by ID.
// Used by the JSONL export path.
func (r *Recipes) fetchAll() ([]*types.Recipe, error) {
	if !r.store.attached {
		return nil, types.ErrStoreDetached
	}

	rows, err := r.store.db.Query(
		"SELECT recipe_id, name, description, ingredients, steps FROM recipes ORDER BY recipe_id",
	)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching recipes: %v", types.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	var recipes []*types.Recipe
	for rows.Next() {
		recipe, err := hydrateRecipe(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("hydrating recipe: %w", err)
		}
		recipes = append(recipes, recipe)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating recipes: %w", err)
	}
	return recipes, nil
}

// encodeLists serializes the nested list fields for storage. Nil slices
// encode as empty JSON arrays so a round trip always yields an empty,
// non-nil list.
func encodeLists(ingredients []types.Ingredient, steps []string) (string, string, error) {
	if ingredients == nil {
		ingredients = []types.Ingredient{}
	}
	if steps == nil {
		steps = []string{}
	}

	ingJSON, err := json.Marshal(ingredients)
	if err != nil {
		return "", "", fmt.Errorf("encoding ingredients: %w", err)
	}
	stepsJSON, err := json.Marshal(steps)
	if err != nil {
		return "", "", fmt.Errorf("encoding steps: %w", err)
	}
	return string(ingJSON), string(stepsJSON), nil
}

// hydrateRecipe converts one row into a *types.Recipe. The scan argument
// is row.Scan or rows.Scan so single-row and multi-row paths share the
// decode logic.
func hydrateRecipe(scan func(dest ...any) error) (*types.Recipe, error) {
	var rec types.Recipe
	var ingJSON, stepsJSON string
	if err := scan(&rec.RecipeID, &rec.Name, &rec.Description, &ingJSON, &stepsJSON); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(ingJSON), &rec.Ingredients); err != nil {
		return nil, fmt.Errorf("decoding ingredients: %w", err)
	}
	if err := json.Unmarshal([]byte(stepsJSON), &rec.Steps); err != nil {
		return nil, fmt.Errorf("decoding steps: %w", err)
	}
	return &rec, nil
}

// affectedOne converts a row-count result into the boolean success
// signal: exactly one row affected means the ID existed.
func affectedOne(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("reading affected rows: %w", err)
	}
	return n > 0, nil
}
