package scorer

import (
	"log/slog"
	"os"
	"sort"

	"github.com/mpavlovic/scoutrate/internal/apperr"
)

// CreateFromSpec builds one scorer per spec entry. A missing credential is a
// construction-time failure for that entry only: it is logged and skipped,
// the rest of the roster remains usable. Scorers come back in sorted name
// order so invocation order, and with it artifact ordering, is deterministic.
func CreateFromSpec(spec *Spec, disabled map[string]bool, prompts *Prompts) []Scorer {
	names := make([]string, 0, len(spec.Scorers))
	for name := range spec.Scorers {
		names = append(names, name)
	}
	sort.Strings(names)

	scorers := make([]Scorer, 0, len(names))
	for _, name := range names {
		entry := spec.Scorers[name]
		if disabled[name] {
			slog.Info("Scorer disabled by flag", "scorer", name)
			continue
		}

		apiKey := os.Getenv(entry.APIKeyEnv)
		if apiKey == "" {
			err := apperr.NewConfig("missing API key in env var " + entry.APIKeyEnv)
			slog.Error("Skipping scorer", "scorer", name, "model", entry.Model, "error", err)
			continue
		}

		baseURL := entry.BaseURL
		if entry.BaseURLEnv != "" {
			if v := os.Getenv(entry.BaseURLEnv); v != "" {
				baseURL = v
			}
		}

		scorers = append(scorers, newLLMScorer(entry.Model, entry, apiKey, baseURL, prompts))
		slog.Info("Configured scorer", "scorer", name, "model", entry.Model, "kind", entry.Kind)
	}

	return scorers
}
