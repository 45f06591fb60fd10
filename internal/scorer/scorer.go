// Package scorer fans a player report out to a configured set of LLM backends
// and collects their ratings into one aggregate artifact.
package scorer

import (
	"context"

	"github.com/mpavlovic/scoutrate/internal/rating"
)

// Scorer is one configured connector to an LLM backend. Implementations are
// stateless after construction and safe to invoke concurrently.
type Scorer interface {
	// Name is the configured identifier stamped into every rating this
	// scorer produces. The model's self-reported name is never trusted.
	Name() string

	// Score evaluates one evidence document and returns a validated rating.
	Score(ctx context.Context, document string) (*rating.Rating, error)
}
