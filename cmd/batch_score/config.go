package main

import (
	"flag"
	"strings"
)

type cliConfig struct {
	RosterPath  string
	InputDir    string
	Pattern     string
	OutputDir   string
	FallbackDir string
	SpecPath    string
	PromptPath  string
	Disable     string
	EnvPath     string
}

func parseFlags() cliConfig {
	cfg := cliConfig{}

	flag.StringVar(&cfg.RosterPath, "roster", "", "Path to roster CSV")
	flag.StringVar(&cfg.InputDir, "input-dir", "", "Directory containing player report markdown files")
	flag.StringVar(&cfg.Pattern, "pattern", "*.md", "Glob pattern for report files")
	flag.StringVar(&cfg.OutputDir, "output-dir", "", "Directory for ratings JSON artifacts (default: <input-dir>/../ratings)")
	flag.StringVar(&cfg.FallbackDir, "fallback-dir", "", "Extra directory searched for companion reports")
	flag.StringVar(&cfg.SpecPath, "spec", "", "Path to scorer spec YAML (default: built-in scorer roster)")
	flag.StringVar(&cfg.PromptPath, "prompt", "", "Path to system prompt markdown (default: built-in prompt)")
	flag.StringVar(&cfg.Disable, "disable", "", "Scorer names to disable, comma-separated")
	flag.StringVar(&cfg.EnvPath, "env", ".env", "Path to .env file with credentials")

	flag.Parse()
	return cfg
}

func (c cliConfig) disabledScorers() map[string]bool {
	disabled := make(map[string]bool)
	for _, name := range strings.Split(c.Disable, ",") {
		if name = strings.TrimSpace(name); name != "" {
			disabled[name] = true
		}
	}
	return disabled
}
