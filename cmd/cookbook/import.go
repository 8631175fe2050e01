// Import command loads recipes from a JSONL snapshot.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var importIn string

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import recipes from a JSONL snapshot",
	Long: `Import loads a JSONL snapshot into the catalog, preserving the
exported recipe IDs. The import is all-or-nothing: a snapshot that
collides with existing IDs leaves the catalog unchanged.

Example:
  cookbook import
  cookbook import --in backup.jsonl`,
	Args: cobra.NoArgs,
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importIn, "in", "recipes.jsonl", "snapshot file to read")
}

func runImport(cmd *cobra.Command, args []string) error {
	store, err := attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	count, err := store.Import(importIn)
	if err != nil {
		return fmt.Errorf("import catalog: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]int{"imported": count})
	}
	fmt.Printf("Imported %d recipe(s) from %s\n", count, importIn)
	return nil
}
