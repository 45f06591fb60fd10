package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mpavlovic/scoutrate/internal/batch"
	"github.com/mpavlovic/scoutrate/internal/ratings"
	"github.com/mpavlovic/scoutrate/internal/roster"
	"github.com/mpavlovic/scoutrate/internal/scorer"
	"github.com/mpavlovic/scoutrate/internal/summary"
	"github.com/mpavlovic/scoutrate/pkg/config/env"
)

func main() {
	cfg := parseFlags()
	ctx := context.Background()

	if cfg.RosterPath == "" || cfg.InputDir == "" {
		slog.Error("Missing required flags", "roster", cfg.RosterPath, "input_dir", cfg.InputDir)
		os.Exit(1)
	}

	_ = env.LoadDotEnv(cfg.EnvPath)

	rosterFile, err := os.Open(cfg.RosterPath)
	if err != nil {
		slog.Error("Failed to open roster", "path", cfg.RosterPath, "error", err)
		os.Exit(1)
	}
	players, err := roster.NewReader(rosterFile).ReadPlayers()
	rosterFile.Close()
	if err != nil {
		slog.Error("Failed to read roster", "path", cfg.RosterPath, "error", err)
		os.Exit(1)
	}
	if len(players) == 0 {
		slog.Error("Roster has no usable rows", "path", cfg.RosterPath)
		os.Exit(1)
	}

	if info, err := os.Stat(cfg.InputDir); err != nil || !info.IsDir() {
		slog.Error("Input directory not found", "path", cfg.InputDir, "error", err)
		os.Exit(1)
	}
	index, err := summary.NewIndex(cfg.InputDir, cfg.Pattern)
	if err != nil {
		slog.Error("Failed to index reports", "dir", cfg.InputDir, "pattern", cfg.Pattern, "error", err)
		os.Exit(1)
	}

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

	outputDir := cfg.OutputDir
	if outputDir == "" {
		outputDir = filepath.Join(cfg.InputDir, "..", "ratings")
	}
	store := ratings.NewStore(outputDir)

	driver := batch.NewDriver(
		players,
		index,
		store,
		scorer.NewOrchestrator(scorers),
		cfg.FallbackDir,
	)

	// Per-row failures are tallied, not fatal; only setup errors above exit
	// non-zero.
	driver.Run(ctx)
}

func loadSpec(path string) (*scorer.Spec, error) {
	if path == "" {
		return scorer.DefaultSpec(), nil
	}
	return scorer.LoadFromFile(path)
}
