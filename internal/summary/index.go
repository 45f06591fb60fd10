package summary

import (
	"path/filepath"
	"sort"
	"strings"
)

// Index maps lowercased file stems to report paths for one input directory.
type Index struct {
	stems map[string]string
	order []string
}

// NewIndex globs dir with pattern and indexes every match by stem.
func NewIndex(dir string, pattern string) (*Index, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, err
	}

	idx := &Index{stems: make(map[string]string, len(matches))}
	for _, path := range matches {
		base := filepath.Base(path)
		stem := strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
		idx.stems[stem] = path
	}
	for stem := range idx.stems {
		idx.order = append(idx.order, stem)
	}
	// Sorted stems make the suffix fallback deterministic regardless of
	// directory listing order.
	sort.Strings(idx.order)

	return idx, nil
}

func (idx *Index) Len() int {
	return len(idx.stems)
}

// Resolve finds the report for one player. Candidates in priority order:
// {team_slug}_{player_slug}, {player_slug}, then the first indexed stem
// ending with {player_slug}. Empty string when nothing matches.
func (idx *Index) Resolve(teamSlug, playerSlug string) string {
	for _, stem := range []string{teamSlug + "_" + playerSlug, playerSlug} {
		if path, ok := idx.stems[stem]; ok {
			return path
		}
	}
	for _, stem := range idx.order {
		if strings.HasSuffix(stem, playerSlug) {
			return idx.stems[stem]
		}
	}
	return ""
}
