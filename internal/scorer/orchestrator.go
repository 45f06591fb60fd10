package scorer

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/mpavlovic/scoutrate/internal/rating"
)

// Orchestrator fans one document out to every configured scorer and gathers
// all outcomes into a single aggregate result.
type Orchestrator struct {
	scorers []Scorer
}

func NewOrchestrator(scorers []Scorer) *Orchestrator {
	return &Orchestrator{scorers: scorers}
}

type outcome struct {
	rating *rating.Rating
	err    error
}

// ScoreDocument launches every scorer concurrently and waits for all of them,
// success or failure, before assembling the result. Ratings follow scorer
// invocation order, not completion order. A pass with zero successes still
// yields a result carrying the full error list; that is a data-quality signal
// for downstream consumers, not a failure of the run.
func (o *Orchestrator) ScoreDocument(ctx context.Context, playerName, document string) *rating.AggregateResult {
	outcomes := make([]outcome, len(o.scorers))

	var wg sync.WaitGroup
	wg.Add(len(o.scorers))
	for i, s := range o.scorers {
		go func(i int, s Scorer) {
			defer wg.Done()
			r, err := s.Score(ctx, document)
			outcomes[i] = outcome{rating: r, err: err}
		}(i, s)
	}
	wg.Wait()

	generatedAt := time.Now().UTC().Format(time.RFC3339)
	result := &rating.AggregateResult{
		Player:        playerName,
		Ratings:       []rating.Rating{},
		GeneratedAt:   generatedAt,
		SchemaVersion: rating.SchemaVersion,
	}

	for i, out := range outcomes {
		name := o.scorers[i].Name()
		if out.err != nil {
			slog.Error("Scorer failed", "scorer", name, "player", playerName, "error", out.err)
			result.Errors = append(result.Errors, rating.ScoringError{
				ModelName: name,
				Error:     out.err.Error(),
			})
			continue
		}

		r := *out.rating
		// The adapter's own claims about identity and time are discarded.
		r.ModelName = name
		r.Timestamp = generatedAt
		result.Ratings = append(result.Ratings, r)
		slog.Info("Scorer completed", "scorer", name, "player", playerName)
	}

	return result
}
