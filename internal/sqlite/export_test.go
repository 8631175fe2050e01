package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/cookbook/pkg/types"
)

func TestExportImportRoundTrip(t *testing.T) {
	src := setupStore(t)
	recipes, err := src.Recipes()
	require.NoError(t, err)

	teaID, err := recipes.Create("Tea", "Hot drink",
		[]types.Ingredient{{Quantity: "1 cup", Name: "water"}},
		[]string{"Boil water", "Add tea bag"})
	require.NoError(t, err)
	toastID, err := recipes.Create("Toast", "Crunchy", nil, []string{"Toast bread"})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "recipes.jsonl")
	manifest, err := src.Export(path)
	require.NoError(t, err)
	assert.Equal(t, 2, manifest.RecipeCount)
	_, err = uuid.Parse(manifest.SnapshotID)
	assert.NoError(t, err, "snapshot ID should be a UUID")
	assert.NotEmpty(t, manifest.CreatedAt)

	// Import into a fresh catalog preserves IDs and full detail.
	dst := setupStore(t)
	count, err := dst.Import(path)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	dstRecipes, err := dst.Recipes()
	require.NoError(t, err)

	tea, err := dstRecipes.Get(teaID)
	require.NoError(t, err)
	assert.Equal(t, "Tea", tea.Name)
	assert.Equal(t, []types.Ingredient{{Quantity: "1 cup", Name: "water"}}, tea.Ingredients)
	assert.Equal(t, []string{"Boil water", "Add tea bag"}, tea.Steps)

	toast, err := dstRecipes.Get(toastID)
	require.NoError(t, err)
	assert.Equal(t, "Crunchy", toast.Description)
}

func TestImportCollisionLeavesCatalogUnchanged(t *testing.T) {
	s := setupStore(t)
	recipes, err := s.Recipes()
	require.NoError(t, err)

	_, err = recipes.Create("Tea", "Hot drink", nil, nil)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "recipes.jsonl")
	_, err = s.Export(path)
	require.NoError(t, err)

	// Importing the snapshot back into the same catalog collides on ID 1.
	_, err = s.Import(path)
	require.Error(t, err)

	summaries, err := recipes.ListSummaries()
	require.NoError(t, err)
	assert.Len(t, summaries, 1, "failed import must not leave partial rows")
}

func TestExportEmptyCatalog(t *testing.T) {
	s := setupStore(t)

	path := filepath.Join(t.TempDir(), "recipes.jsonl")
	manifest, err := s.Export(path)
	require.NoError(t, err)
	assert.Equal(t, 0, manifest.RecipeCount)

	dst := setupStore(t)
	count, err := dst.Import(path)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestExportDetachedStore(t *testing.T) {
	s := setupStore(t)
	require.NoError(t, s.Detach())

	_, err := s.Export(filepath.Join(t.TempDir(), "recipes.jsonl"))
	assert.ErrorIs(t, err, types.ErrStoreDetached)
	_, err = s.Import(filepath.Join(t.TempDir(), "recipes.jsonl"))
	assert.ErrorIs(t, err, types.ErrStoreDetached)
}
