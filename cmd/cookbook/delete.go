// Delete command removes a recipe by ID.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a recipe by ID",
	Long: `Delete removes a recipe permanently. There is no undo.

Example:
  cookbook delete 1
  cookbook delete 1 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := parseRecipeID(args[0])
	if err != nil {
		return err
	}

	store, recipes, err := openRecipes()
	if err != nil {
		return err
	}
	defer store.Detach()

	ok, err := recipes.Delete(id)
	if err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	if !ok {
		return fmt.Errorf("recipe %d not found", id)
	}

	if flagJSON {
		return printJSON(map[string]any{"recipe_id": id, "deleted": true})
	}
	fmt.Printf("Deleted recipe: %d\n", id)
	return nil
}
