// Show command prints one recipe in full.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/cookbook/pkg/types"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a recipe in full",
	Long: `Show retrieves a recipe by ID and prints its ingredients and steps.

Example:
  cookbook show 1
  cookbook show 1 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := parseRecipeID(args[0])
	if err != nil {
		return err
	}

	store, recipes, err := openRecipes()
	if err != nil {
		return err
	}
	defer store.Detach()

	recipe, err := recipes.Get(id)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return fmt.Errorf("recipe %d not found", id)
		}
		return fmt.Errorf("get recipe: %w", err)
	}

	if flagJSON {
		return printJSON(recipe)
	}
	fmt.Print(recipe.Render())
	return nil
}
