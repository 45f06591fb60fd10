package scorer

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

const defaultSystemPrompt = "You are a neutral hockey player scoring analyst. " +
	"Read only the provided MARKDOWN summary about a player (including its tables and any front matter). " +
	"Output ONLY valid JSON matching the required schema. " +
	"Use integers 1-9 for ratings, confidence 0-100. Provide EXACTLY three concise reasoning bullets. " +
	"If data is missing or uncertain, reduce confidence and state the gap succinctly."

const userPromptFormat = "Player summary MARKDOWN follows. Use it as your only evidence, do not fabricate.\n\n" +
	"%s\n\n" +
	"Return only the JSON for the following schema fields: current_rating, future_rating, " +
	"current_confidence, future_confidence, reasoning (3 bullets), version."

// Prompts holds the instruction text shared by every scorer.
type Prompts struct {
	System string
}

// LoadPrompts reads the system prompt from path, falling back to the built-in
// default when the path is empty or unreadable.
func LoadPrompts(path string) *Prompts {
	if path == "" {
		return &Prompts{System: defaultSystemPrompt}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("Failed reading system prompt, using default", "path", path, "error", err)
		return &Prompts{System: defaultSystemPrompt}
	}
	slog.Info("Loaded system prompt", "path", path)
	return &Prompts{System: strings.TrimSpace(string(data))}
}

// User renders the per-document user message.
func (p *Prompts) User(document string) string {
	return fmt.Sprintf(userPromptFormat, document)
}
