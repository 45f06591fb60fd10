package scorer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Parse modes for backend replies.
const (
	KindStructured = "structured" // backend returns the rating object directly (strict schema)
	KindJSON       = "json"       // free-text reply, JSON extracted
	KindJSONThink  = "json_think" // free-text reply with a <think> preamble to strip first
)

const (
	defaultTemperature     = 0.2
	defaultJetstreamAPIURL = "https://llm.jetstream-cloud.org/api"
	defaultOpenRouterURL   = "https://openrouter.ai/api/v1"
)

// Entry configures one scorer backend.
type Entry struct {
	Kind            string   `yaml:"kind"`
	Model           string   `yaml:"model"`
	BaseURL         string   `yaml:"base_url"`
	BaseURLEnv      string   `yaml:"base_url_env"`
	APIKeyEnv       string   `yaml:"api_key_env"`
	ReasoningEffort string   `yaml:"reasoning_effort"`
	Temperature     *float64 `yaml:"temperature"`
}

// Spec is the scorer roster loaded from YAML.
type Spec struct {
	Scorers map[string]Entry `yaml:"scorers"`
}

func LoadFromFile(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scorer spec: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Spec, error) {
	var s Spec
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scorer spec YAML: %w", err)
	}
	if err := validate(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

var validKinds = map[string]bool{
	KindStructured: true,
	KindJSON:       true,
	KindJSONThink:  true,
}

var validEfforts = map[string]bool{
	"":       true,
	"low":    true,
	"medium": true,
	"high":   true,
}

func validate(s *Spec) error {
	if len(s.Scorers) == 0 {
		return fmt.Errorf("spec has no scorers")
	}
	for name, e := range s.Scorers {
		if e.Kind == "" {
			return fmt.Errorf("scorer %q has no kind", name)
		}
		if !validKinds[e.Kind] {
			return fmt.Errorf("scorer %q has invalid kind %q", name, e.Kind)
		}
		if e.Model == "" {
			return fmt.Errorf("scorer %q has no model", name)
		}
		if e.APIKeyEnv == "" {
			return fmt.Errorf("scorer %q has no api_key_env", name)
		}
		if !validEfforts[e.ReasoningEffort] {
			return fmt.Errorf("scorer %q has invalid reasoning_effort %q", name, e.ReasoningEffort)
		}
		if e.Temperature != nil && (*e.Temperature < 0 || *e.Temperature > 2) {
			return fmt.Errorf("scorer %q has temperature %v out of range [0,2]", name, *e.Temperature)
		}
	}
	return nil
}

// DefaultSpec is the stock scorer roster used when no spec file is given.
// Model-name env overrides and the OpenRouter gate are resolved here, once,
// at construction.
func DefaultSpec() *Spec {
	s := &Spec{Scorers: map[string]Entry{
		"gpt-5": {
			Kind:            KindStructured,
			Model:           "gpt-5",
			APIKeyEnv:       "OPENAI_API_KEY",
			ReasoningEffort: "high",
		},
		"gpt-5-mini": {
			Kind:      KindStructured,
			Model:     "gpt-5-mini",
			APIKeyEnv: "OPENAI_API_KEY",
		},
		"deepseek": {
			Kind:       KindJSONThink,
			Model:      envOr("DEEPSEEK_MODEL", "DeepSeek-R1"),
			BaseURL:    defaultJetstreamAPIURL,
			BaseURLEnv: "JETSTREAM_BASE_URL",
			APIKeyEnv:  "JETSTREAM_API_KEY",
		},
		"llama": {
			Kind:       KindStructured,
			Model:      envOr("LLAMA_MODEL", "llama-4-scout"),
			BaseURL:    defaultJetstreamAPIURL,
			BaseURLEnv: "JETSTREAM_BASE_URL",
			APIKeyEnv:  "JETSTREAM_API_KEY",
		},
		"oss": {
			Kind:       KindJSON,
			Model:      envOr("OSS_MODEL", "gpt-oss-120b"),
			BaseURL:    defaultJetstreamAPIURL,
			BaseURLEnv: "JETSTREAM_BASE_URL",
			APIKeyEnv:  "JETSTREAM_API_KEY",
		},
	}}

	// OpenRouter scorers ride along only when the key is present. Gemini and
	// Opus additionally need an explicit model id to avoid 400s from guessing.
	if os.Getenv("OPENROUTER_API_KEY") != "" {
		if m := os.Getenv("GEMINI_MODEL"); m != "" {
			s.Scorers["gemini"] = openRouterEntry(m)
		}
		if m := os.Getenv("OPUS_MODEL"); m != "" {
			s.Scorers["opus"] = openRouterEntry(m)
		}
		s.Scorers["maverick"] = openRouterEntry(envOr("MAVERICK_MODEL", "meta-llama/llama-4-maverick:free"))
	}

	return s
}

func openRouterEntry(model string) Entry {
	return Entry{
		Kind:       KindJSON,
		Model:      model,
		BaseURL:    defaultOpenRouterURL,
		BaseURLEnv: "OPENROUTER_BASE_URL",
		APIKeyEnv:  "OPENROUTER_API_KEY",
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
