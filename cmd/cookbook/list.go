// List command shows recipe summaries.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/cookbook/pkg/types"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored recipes",
	Long: `List shows every stored recipe with its ID, name, and description.
Ingredients and steps are not fetched; use "cookbook show" for full detail.

Example:
  cookbook list
  cookbook list --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	store, recipes, err := openRecipes()
	if err != nil {
		return err
	}
	defer store.Detach()

	summaries, err := recipes.ListSummaries()
	if err != nil {
		return fmt.Errorf("list recipes: %w", err)
	}

	if flagJSON {
		return printJSON(summaries)
	}
	printSummaryTable(summaries)
	return nil
}

// printSummaryTable prints recipe summaries in a human-readable table.
func printSummaryTable(summaries []types.Summary) {
	if len(summaries) == 0 {
		fmt.Println("No recipes found.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION")
	for _, s := range summaries {
		desc := s.Description
		if len(desc) > 60 {
			desc = desc[:57] + "..."
		}
		fmt.Fprintf(w, "%d\t%s\t%s\n", s.RecipeID, s.Name, desc)
	}
	w.Flush()

	fmt.Printf("Total: %d recipe(s)\n", len(summaries))
}
