package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mpavlovic/scoutrate/internal/ratings"
	"github.com/mpavlovic/scoutrate/internal/scorer"
	"github.com/mpavlovic/scoutrate/internal/summary"
	"github.com/mpavlovic/scoutrate/pkg/config/env"
)

func main() {
	cfg := parseFlags()
	ctx := context.Background()

	if cfg.Input == "" {
		slog.Error("Missing required -input flag")
		os.Exit(1)
	}
	if _, err := os.Stat(cfg.Input); err != nil {
		slog.Error("Input report not found", "path", cfg.Input, "error", err)
		os.Exit(1)
	}

	_ = env.LoadDotEnv(cfg.EnvPath)

	spec, err := loadSpec(cfg.SpecPath)
	if err != nil {
		slog.Error("Failed to load scorer spec", "path", cfg.SpecPath, "error", err)
		os.Exit(1)
	}

	prompts := scorer.LoadPrompts(cfg.PromptPath)
	scorers := scorer.CreateFromSpec(spec, cfg.disabledScorers(), prompts)
	if len(scorers) == 0 {
		slog.Error("No usable scorers configured; check credentials and disable flags")
		os.Exit(1)
	}

	stem := strings.TrimSuffix(filepath.Base(cfg.Input), filepath.Ext(cfg.Input))
	outPath := cfg.Output
	if outPath == "" {
		outPath = filepath.Join(filepath.Dir(cfg.Input), "..", "ratings", stem+".json")
	}

	document := summary.LoadMerged(cfg.Input, cfg.FallbackDir)

	o := scorer.NewOrchestrator(scorers)
	result := o.ScoreDocument(ctx, playerNameFromStem(stem), document)

	store := ratings.NewStore(filepath.Dir(outPath))
	name := strings.TrimSuffix(filepath.Base(outPath), filepath.Ext(outPath))
	if err := store.Write(name, result); err != nil {
		slog.Error("Failed to write ratings", "path", outPath, "error", err)
		os.Exit(1)
	}

	slog.Info("Saved ratings",
		"path", store.PathFor(name),
		"ratings", len(result.Ratings),
		"errors", len(result.Errors),
	)
}

func loadSpec(path string) (*scorer.Spec, error) {
	if path == "" {
		return scorer.DefaultSpec(), nil
	}
	return scorer.LoadFromFile(path)
}

var separators = regexp.MustCompile(`[_-]+`)

// playerNameFromStem derives a display name from a report filename, e.g.
// "sidney_crosby" -> "Sidney Crosby".
func playerNameFromStem(stem string) string {
	if stem == "" {
		return "unknown"
	}
	spaced := separators.ReplaceAllString(stem, " ")
	return cases.Title(language.English).String(strings.TrimSpace(spaced))
}
