package sqlite

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadJSONLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipes.jsonl")
	records := []json.RawMessage{
		json.RawMessage(`{"recipe_id":1,"name":"Tea"}`),
		json.RawMessage(`{"recipe_id":2,"name":"Toast"}`),
	}

	require.NoError(t, writeJSONL(path, records))

	got, err := readJSONL(path)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestReadJSONLSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipes.jsonl")
	content := `{"recipe_id":1,"name":"Tea"}
not json at all

{"recipe_id":2,"name":"Toast"}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	got, err := readJSONL(path)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestReadJSONLMissingFile(t *testing.T) {
	_, err := readJSONL(filepath.Join(t.TempDir(), "absent.jsonl"))
	assert.Error(t, err)
}

func TestWriteJSONLReplacesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipes.jsonl")
	require.NoError(t, writeJSONL(path, []json.RawMessage{
		json.RawMessage(`{"recipe_id":1}`),
	}))
	require.NoError(t, writeJSONL(path, []json.RawMessage{
		json.RawMessage(`{"recipe_id":2}`),
	}))

	got, err := readJSONL(path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.JSONEq(t, `{"recipe_id":2}`, string(got[0]))
}
