// Package summary locates and loads player scouting-report markdown.
package summary

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const (
	extendedSuffix = "_extended"
	mergeSeparator = "\n\n---\n\n"
)

// LoadMerged loads the evidence document for one scoring pass. When the
// primary report has an extended (or base) companion, the two are joined with
// a horizontal-rule separator, companion last. A primary that cannot be read
// degrades to an empty document; scorers respond to that with low confidence.
func LoadMerged(primaryPath string, fallbackDir string) string {
	primary, err := os.ReadFile(primaryPath)
	if err != nil {
		slog.Error("Failed reading primary report", "path", primaryPath, "error", err)
		primary = nil
	}

	companionPath := findCompanion(primaryPath, fallbackDir)
	if companionPath == "" {
		return string(primary)
	}

	companion, err := os.ReadFile(companionPath)
	if err != nil {
		slog.Warn("Found companion report but failed to read it", "path", companionPath, "error", err)
		return string(primary)
	}

	slog.Info("Merging reports",
		"primary", filepath.Base(primaryPath),
		"companion", filepath.Base(companionPath),
	)
	return string(primary) + mergeSeparator + string(companion)
}

// CompanionName toggles the extended suffix: a_extended.md <-> a.md.
func CompanionName(name string) string {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	if strings.HasSuffix(stem, extendedSuffix) {
		return strings.TrimSuffix(stem, extendedSuffix) + ext
	}
	return stem + extendedSuffix + ext
}

func findCompanion(primaryPath string, fallbackDir string) string {
	wanted := CompanionName(filepath.Base(primaryPath))

	sibling := filepath.Join(filepath.Dir(primaryPath), wanted)
	if fileExists(sibling) && !samePath(sibling, primaryPath) {
		return sibling
	}

	if fallbackDir != "" {
		candidate := filepath.Join(fallbackDir, wanted)
		if fileExists(candidate) && !samePath(candidate, primaryPath) {
			return candidate
		}
	}

	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func samePath(a, b string) bool {
	ra, err := filepath.Abs(a)
	if err != nil {
		return a == b
	}
	rb, err := filepath.Abs(b)
	if err != nil {
		return a == b
	}
	return ra == rb
}
