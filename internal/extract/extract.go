// Package extract recovers JSON payloads from free-text model replies.
package extract

import (
	"encoding/json"
	"regexp"

	"github.com/mpavlovic/scoutrate/internal/apperr"
)

var (
	fencedJSON = regexp.MustCompile("```json\\s*(\\{[\\s\\S]*?\\})\\s*```")
	thinkBlock = regexp.MustCompile(`(?i)<think>[\s\S]*?</think>`)
	thinkTag   = regexp.MustCompile(`(?i)</?think>`)
)

// JSONObject extracts the rating payload from a model reply. Strategies in
// order: parse the whole reply, parse a fenced ```json block, parse the first
// balanced {...} span. The first one that parses wins.
func JSONObject(text string) (json.RawMessage, error) {
	raw := []byte(text)
	if json.Valid(raw) && isObject(raw) {
		return raw, nil
	}

	if m := fencedJSON.FindStringSubmatch(text); m != nil {
		candidate := []byte(m[1])
		if json.Valid(candidate) {
			return candidate, nil
		}
	}

	if candidate, ok := firstBalancedObject(text); ok {
		raw := []byte(candidate)
		if json.Valid(raw) {
			return raw, nil
		}
	}

	return nil, apperr.NewExtraction("no parseable JSON object in model reply")
}

// StripThink removes reasoning preambles delimited by <think> markers, plus
// any lone unmatched tags.
func StripThink(text string) string {
	cleaned := thinkBlock.ReplaceAllString(text, "")
	return thinkTag.ReplaceAllString(cleaned, "")
}

func isObject(raw []byte) bool {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}

// firstBalancedObject scans for the first top-level {...} span, tracking
// nested brace depth. String contents are not interpreted; a brace inside a
// JSON string can cut the span short, in which case json.Valid rejects the
// candidate and extraction fails the same way the source behavior does.
func firstBalancedObject(text string) (string, bool) {
	start := -1
	depth := 0
	for i, ch := range text {
		switch ch {
		case '{':
			if start == -1 {
				start = i
			}
			depth++
		case '}':
			if start == -1 {
				continue
			}
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}
