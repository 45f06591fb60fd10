package ratings

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpavlovic/scoutrate/internal/rating"
)

func TestStore_WriteAndRead(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "ratings")
	store := NewStore(dir)

	name := "toronto_maple_leafs_auston_matthews"
	assert.False(t, store.Exists(name))

	result := &rating.AggregateResult{
		Player: "Auston Matthews",
		Ratings: []rating.Rating{
			{
				ModelName:         "gpt-5",
				CurrentRating:     8,
				FutureRating:      8,
				CurrentConfidence: 90,
				FutureConfidence:  80,
				Reasoning:         []string{"a", "b", "c"},
				Timestamp:         "2025-09-01T00:00:00Z",
				Version:           "1.0",
			},
		},
		GeneratedAt:   "2025-09-01T00:00:00Z",
		SchemaVersion: "1.0",
	}

	require.NoError(t, store.Write(name, result))
	assert.True(t, store.Exists(name))

	got, err := store.Read(name)
	require.NoError(t, err)
	assert.Equal(t, result, got)
}

func TestStore_WriteIsIndented(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	require.NoError(t, store.Write("p", &rating.AggregateResult{Player: "P", SchemaVersion: "1.0"}))

	data, err := os.ReadFile(store.PathFor("p"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"player\": \"P\"")
}

func TestStore_ErrorsOmittedWhenEmpty(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	require.NoError(t, store.Write("p", &rating.AggregateResult{Player: "P"}))

	data, err := os.ReadFile(store.PathFor("p"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"errors"`)

	require.NoError(t, store.Write("q", &rating.AggregateResult{
		Player: "Q",
		Errors: []rating.ScoringError{{ModelName: "m", Error: "boom"}},
	}))
	data, err = os.ReadFile(store.PathFor("q"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"errors"`)
}

func TestStore_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	require.NoError(t, store.Write("p", &rating.AggregateResult{Player: "P"}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasSuffix(e.Name(), ".tmp"), "temp file left behind: %s", e.Name())
	}
}
