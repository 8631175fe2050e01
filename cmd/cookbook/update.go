// Update command overwrites a recipe's fields.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/cookbook/pkg/types"
)

var (
	updateName        string
	updateDescription string
	updateIngredients []string
	updateSteps       []string
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a recipe",
	Long: `Update overwrites a recipe's fields. Flags that are not provided keep
their stored values: the existing ingredient pairs and steps are
resubmitted unchanged alongside the new values.

Example:
  cookbook update 1 --name "Green tea"
  cookbook update 1 --ingredient "1 cup: water" --ingredient "1: tea bag"`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringVar(&updateName, "name", "", "new recipe name")
	updateCmd.Flags().StringVar(&updateDescription, "description", "", "new recipe description")
	updateCmd.Flags().StringArrayVar(&updateIngredients, "ingredient", nil, `new ingredient list as "QUANTITY: NAME" (repeatable, replaces all)`)
	updateCmd.Flags().StringArrayVar(&updateSteps, "step", nil, "new step list (repeatable, replaces all)")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseRecipeID(args[0])
	if err != nil {
		return err
	}

	store, recipes, err := openRecipes()
	if err != nil {
		return err
	}
	defer store.Detach()

	// The repository overwrites every field, so fetch the stored recipe
	// and resubmit whatever the user did not override.
	existing, err := recipes.Get(id)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return fmt.Errorf("recipe %d not found", id)
		}
		return fmt.Errorf("get recipe: %w", err)
	}

	name := existing.Name
	if cmd.Flags().Changed("name") {
		name = updateName
	}
	description := existing.Description
	if cmd.Flags().Changed("description") {
		description = updateDescription
	}
	ingredients := existing.Ingredients
	if cmd.Flags().Changed("ingredient") {
		ingredients, err = parseIngredients(updateIngredients)
		if err != nil {
			return err
		}
	}
	steps := existing.Steps
	if cmd.Flags().Changed("step") {
		steps = updateSteps
	}

	ok, err := recipes.Update(id, name, description, ingredients, steps)
	if err != nil {
		return fmt.Errorf("update recipe: %w", err)
	}
	if !ok {
		return fmt.Errorf("recipe %d not found", id)
	}

	if flagJSON {
		return printJSON(map[string]any{"recipe_id": id, "updated": true})
	}
	fmt.Printf("Updated recipe: %d\n", id)
	return nil
}
