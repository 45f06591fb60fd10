package rating

import (
	"fmt"

	"github.com/mpavlovic/scoutrate/internal/apperr"
)

const SchemaVersion = "1.0"

const reasoningCount = 3

// Rating is one scorer's verdict on a player report.
type Rating struct {
	ModelName         string   `json:"model_name"`
	CurrentRating     int      `json:"current_rating"`
	FutureRating      int      `json:"future_rating"`
	CurrentConfidence int      `json:"current_confidence"`
	FutureConfidence  int      `json:"future_confidence"`
	Reasoning         []string `json:"reasoning"`
	Timestamp         string   `json:"timestamp"`
	Version           string   `json:"version"`
}

// ApplyDefaults fills fields the model is allowed to omit.
func (r *Rating) ApplyDefaults() {
	if r.Version == "" {
		r.Version = SchemaVersion
	}
}

// Validate rejects out-of-range fields and malformed reasoning. Values are
// never clamped; a single violation fails the whole record.
func (r *Rating) Validate() error {
	if r.CurrentRating < 1 || r.CurrentRating > 9 {
		return apperr.NewValidation(fmt.Sprintf("current_rating %d out of range [1,9]", r.CurrentRating))
	}
	if r.FutureRating < 1 || r.FutureRating > 9 {
		return apperr.NewValidation(fmt.Sprintf("future_rating %d out of range [1,9]", r.FutureRating))
	}
	if r.CurrentConfidence < 0 || r.CurrentConfidence > 100 {
		return apperr.NewValidation(fmt.Sprintf("current_confidence %d out of range [0,100]", r.CurrentConfidence))
	}
	if r.FutureConfidence < 0 || r.FutureConfidence > 100 {
		return apperr.NewValidation(fmt.Sprintf("future_confidence %d out of range [0,100]", r.FutureConfidence))
	}
	if len(r.Reasoning) != reasoningCount {
		return apperr.NewValidation(fmt.Sprintf("reasoning must have exactly %d entries, got %d", reasoningCount, len(r.Reasoning)))
	}
	return nil
}

// ScoringError is one scorer's failure, kept as data alongside the successes.
type ScoringError struct {
	ModelName string `json:"model_name"`
	Error     string `json:"error"`
}

// AggregateResult is the per-player artifact combining every scorer's outcome.
// Its existence on disk is the batch driver's resumability marker.
type AggregateResult struct {
	Player        string         `json:"player"`
	Ratings       []Rating       `json:"ratings"`
	Errors        []ScoringError `json:"errors,omitempty"`
	GeneratedAt   string         `json:"generated_at"`
	SchemaVersion string         `json:"schema_version"`
}
