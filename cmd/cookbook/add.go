// Add command creates a new recipe.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	addName        string
	addDescription string
	addIngredients []string
	addSteps       []string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new recipe",
	Long: `Add creates a new recipe with a name, an optional description, and
ordered ingredient and step lists.

Ingredients are given as "QUANTITY: NAME" and repeat in display order.

Example:
  cookbook add --name "Tea" --description "Hot drink" \
    --ingredient "1 cup: water" \
    --step "Boil water" --step "Add tea bag"`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addName, "name", "", "recipe name (required)")
	addCmd.Flags().StringVar(&addDescription, "description", "", "recipe description")
	addCmd.Flags().StringArrayVar(&addIngredients, "ingredient", nil, `ingredient as "QUANTITY: NAME" (repeatable)`)
	addCmd.Flags().StringArrayVar(&addSteps, "step", nil, "preparation step (repeatable)")
	_ = addCmd.MarkFlagRequired("name")
}

func runAdd(cmd *cobra.Command, args []string) error {
	ingredients, err := parseIngredients(addIngredients)
	if err != nil {
		return err
	}

	store, recipes, err := openRecipes()
	if err != nil {
		return err
	}
	defer store.Detach()

	id, err := recipes.Create(addName, addDescription, ingredients, addSteps)
	if err != nil {
		return fmt.Errorf("create recipe: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]int64{"recipe_id": id})
	}
	fmt.Printf("Created recipe: %d\n", id)
	return nil
}
