// Shared helpers for cookbook CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/cookbook/internal/sqlite"
	"github.com/mesh-intelligence/cookbook/pkg/types"
)

// attachStore resolves the data directory, creates a Store, and attaches
// it. The caller must defer store.Detach().
func attachStore() (*sqlite.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	store := sqlite.NewStore()
	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}
	if err := store.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach store: %w", err)
	}
	return store, nil
}

// openRecipes attaches the store and returns its recipe repository.
// The caller must defer store.Detach().
func openRecipes() (*sqlite.Store, *sqlite.Recipes, error) {
	store, err := attachStore()
	if err != nil {
		return nil, nil, err
	}
	recipes, err := store.Recipes()
	if err != nil {
		store.Detach()
		return nil, nil, err
	}
	return store, recipes, nil
}

// parseRecipeID converts a CLI argument into a recipe ID. Malformed
// input is rejected here and never reaches the repository.
func parseRecipeID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid recipe id %q: expected a positive number", arg)
	}
	return id, nil
}

// parseIngredients converts repeated --ingredient values of the form
// "QUANTITY: NAME" into ingredient pairs, preserving order.
func parseIngredients(values []string) ([]types.Ingredient, error) {
	ingredients := make([]types.Ingredient, 0, len(values))
	for _, v := range values {
		quantity, name, ok := strings.Cut(v, ":")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("invalid ingredient %q: expected \"QUANTITY: NAME\"", v)
		}
		ingredients = append(ingredients, types.Ingredient{
			Quantity: strings.TrimSpace(quantity),
			Name:     strings.TrimSpace(name),
		})
	}
	return ingredients, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
