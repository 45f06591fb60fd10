package batch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpavlovic/scoutrate/internal/rating"
	"github.com/mpavlovic/scoutrate/internal/ratings"
	"github.com/mpavlovic/scoutrate/internal/roster"
	"github.com/mpavlovic/scoutrate/internal/summary"
)

type countingScorer struct {
	calls atomic.Int64
}

func (c *countingScorer) ScoreDocument(ctx context.Context, playerName, document string) *rating.AggregateResult {
	c.calls.Add(1)
	return &rating.AggregateResult{
		Player:        playerName,
		Ratings:       []rating.Rating{},
		GeneratedAt:   "2025-09-01T00:00:00Z",
		SchemaVersion: "1.0",
	}
}

func writeReport(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("# report"), 0644))
}

func setup(t *testing.T, players []roster.Player, reportNames []string) (*Driver, *countingScorer, *ratings.Store) {
	t.Helper()
	reportsDir := t.TempDir()
	for _, name := range reportNames {
		writeReport(t, reportsDir, name)
	}
	idx, err := summary.NewIndex(reportsDir, "*.md")
	require.NoError(t, err)

	store := ratings.NewStore(filepath.Join(t.TempDir(), "ratings"))
	sc := &countingScorer{}
	return NewDriver(players, idx, store, sc, ""), sc, store
}

func somePlayers() []roster.Player {
	return []roster.Player{
		{TeamName: "Toronto Maple Leafs", FirstName: "Auston", LastName: "Matthews"},
		{TeamName: "Pittsburgh Penguins", FirstName: "Sidney", LastName: "Crosby"},
		{TeamName: "Boston Bruins", FirstName: "David", LastName: "Pastrnak"},
	}
}

func TestDriver_Run(t *testing.T) {
	driver, sc, store := setup(t, somePlayers(), []string{
		"toronto_maple_leafs_auston_matthews.md",
		"sidney_crosby.md",
	})

	sum := driver.Run(context.Background())

	assert.Equal(t, 3, sum.Total)
	assert.Equal(t, 2, sum.Successes)
	assert.Equal(t, 1, sum.Missing)
	assert.Equal(t, 0, sum.Failures)
	assert.Equal(t, 0, sum.Skipped)
	assert.Equal(t, int64(2), sc.calls.Load())

	assert.True(t, store.Exists("toronto_maple_leafs_auston_matthews"))
	assert.True(t, store.Exists("pittsburgh_penguins_sidney_crosby"))
	assert.False(t, store.Exists("boston_bruins_david_pastrnak"))
}

func TestDriver_SecondRunIsAllSkip(t *testing.T) {
	driver, sc, _ := setup(t, somePlayers(), []string{
		"toronto_maple_leafs_auston_matthews.md",
		"sidney_crosby.md",
	})

	first := driver.Run(context.Background())
	require.Equal(t, 2, first.Successes)
	require.Equal(t, int64(2), sc.calls.Load())

	second := driver.Run(context.Background())
	assert.Equal(t, 2, second.Skipped)
	assert.Equal(t, 1, second.Missing)
	assert.Equal(t, 0, second.Successes)
	assert.Equal(t, int64(2), sc.calls.Load(), "second run must perform zero scoring calls")
}

func TestDriver_NeverOverwrites(t *testing.T) {
	driver, _, store := setup(t, somePlayers()[:1], []string{
		"toronto_maple_leafs_auston_matthews.md",
	})

	name := "toronto_maple_leafs_auston_matthews"
	require.NoError(t, store.Write(name, &rating.AggregateResult{
		Player:        "Pre-existing",
		SchemaVersion: "1.0",
	}))

	sum := driver.Run(context.Background())
	assert.Equal(t, 1, sum.Skipped)

	got, err := store.Read(name)
	require.NoError(t, err)
	assert.Equal(t, "Pre-existing", got.Player)
}

func TestDriver_CancelledContextStopsEarly(t *testing.T) {
	driver, sc, _ := setup(t, somePlayers(), []string{
		"toronto_maple_leafs_auston_matthews.md",
		"sidney_crosby.md",
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sum := driver.Run(ctx)
	assert.Equal(t, 0, sum.Successes)
	assert.Equal(t, int64(0), sc.calls.Load())
}

func TestDriver_SuffixFallbackResolvesReport(t *testing.T) {
	// Report indexed under a stem that only ends with the player slug.
	driver, sc, store := setup(t, somePlayers()[:1], []string{
		"2025_auston_matthews.md",
	})

	sum := driver.Run(context.Background())
	assert.Equal(t, 1, sum.Successes)
	assert.Equal(t, int64(1), sc.calls.Load())
	assert.True(t, store.Exists("toronto_maple_leafs_auston_matthews"))
}
