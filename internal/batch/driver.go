// Package batch drives scoring over a full roster, one player at a time.
package batch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mpavlovic/scoutrate/internal/rating"
	"github.com/mpavlovic/scoutrate/internal/ratings"
	"github.com/mpavlovic/scoutrate/internal/roster"
	"github.com/mpavlovic/scoutrate/internal/summary"
)

// DocumentScorer is the per-player scoring entry point the driver delegates to.
type DocumentScorer interface {
	ScoreDocument(ctx context.Context, playerName, document string) *rating.AggregateResult
}

// Driver processes every roster row exactly once per invocation. Rows run
// sequentially; concurrency lives inside the per-player scorer fan-out.
type Driver struct {
	players     []roster.Player
	index       *summary.Index
	store       *ratings.Store
	scorer      DocumentScorer
	fallbackDir string
}

func NewDriver(
	players []roster.Player,
	index *summary.Index,
	store *ratings.Store,
	scorer DocumentScorer,
	fallbackDir string,
) *Driver {
	return &Driver{
		players:     players,
		index:       index,
		store:       store,
		scorer:      scorer,
		fallbackDir: fallbackDir,
	}
}

// Summary tallies one batch run. Missing inputs are counted apart from
// failures: a roster row with no report is not an error.
type Summary struct {
	Total     int
	Successes int
	Failures  int
	Skipped   int
	Missing   int
}

func (s Summary) String() string {
	return fmt.Sprintf("total=%d success=%d failure=%d skipped=%d missing=%d",
		s.Total, s.Successes, s.Failures, s.Skipped, s.Missing)
}

// Run scores every roster row whose output does not already exist. The
// skip-if-exists check runs immediately before each row's work, not once up
// front, so interleaved or resumed batches stay idempotent.
func (d *Driver) Run(ctx context.Context) Summary {
	log := slog.With("run_id", uuid.New().String())

	sum := Summary{Total: len(d.players)}
	log.Info("Starting batch run", "players", sum.Total, "indexed_reports", d.index.Len())

	for i, p := range d.players {
		if ctx.Err() != nil {
			log.Info("Batch run cancelled", "summary", sum.String())
			return sum
		}

		progress := fmt.Sprintf("%d/%d", i+1, sum.Total)
		name := p.OutputName()

		reportPath := d.index.Resolve(p.TeamSlug(), p.PlayerSlug())
		if reportPath == "" {
			sum.Missing++
			log.Info("Missing report for player",
				"progress", progress,
				"player", p.FullName(),
				"expected_stem", name,
			)
			continue
		}

		if d.store.Exists(name) {
			sum.Skipped++
			log.Info("Skipping player, output exists",
				"progress", progress,
				"player", p.FullName(),
				"path", d.store.PathFor(name),
			)
			continue
		}

		log.Info("Scoring player",
			"progress", progress,
			"player", p.FullName(),
			"report", reportPath,
		)

		document := summary.LoadMerged(reportPath, d.fallbackDir)
		result := d.scorer.ScoreDocument(ctx, p.FullName(), document)

		if err := d.store.Write(name, result); err != nil {
			sum.Failures++
			log.Error("Failed writing ratings",
				"progress", progress,
				"player", p.FullName(),
				"error", err,
			)
			continue
		}
		sum.Successes++
	}

	log.Info("Batch run completed", "summary", sum.String())
	return sum
}
