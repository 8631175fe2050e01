// Export command writes the catalog to a JSONL snapshot.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog to a JSONL snapshot",
	Long: `Export writes every recipe to a JSONL file, one recipe per line,
headed by a manifest record with a snapshot ID.

Example:
  cookbook export
  cookbook export --out backup.jsonl`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "recipes.jsonl", "snapshot file to write")
}

func runExport(cmd *cobra.Command, args []string) error {
	store, err := attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	manifest, err := store.Export(exportOut)
	if err != nil {
		return fmt.Errorf("export catalog: %w", err)
	}

	if flagJSON {
		return printJSON(manifest)
	}
	fmt.Printf("Exported %d recipe(s) to %s (snapshot %s)\n",
		manifest.RecipeCount, exportOut, manifest.SnapshotID)
	return nil
}
