// Package ratings persists per-player aggregate rating artifacts.
package ratings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mpavlovic/scoutrate/internal/rating"
)

// Store writes one JSON artifact per player under a single directory. The
// artifact's existence is the batch driver's skip marker, so writes must be
// atomic and existing artifacts are never overwritten by the driver.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) PathFor(name string) string {
	return filepath.Join(s.dir, name+".json")
}

func (s *Store) Exists(name string) bool {
	info, err := os.Stat(s.PathFor(name))
	return err == nil && !info.IsDir()
}

// Write persists the aggregate as human-readable indented JSON. The content
// lands via a temp file and rename so a crashed run never leaves a partial
// artifact behind to be mistaken for completed work.
func (s *Store) Write(name string, result *rating.AggregateResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal aggregate result: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create ratings directory: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp artifact: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close artifact: %w", err)
	}

	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("chmod artifact: %w", err)
	}
	if err := os.Rename(tmpPath, s.PathFor(name)); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename artifact: %w", err)
	}

	return nil
}

// Read loads a previously written artifact.
func (s *Store) Read(name string) (*rating.AggregateResult, error) {
	data, err := os.ReadFile(s.PathFor(name))
	if err != nil {
		return nil, fmt.Errorf("read artifact: %w", err)
	}
	var result rating.AggregateResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("parse artifact: %w", err)
	}
	return &result, nil
}
