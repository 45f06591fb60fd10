package main

import (
	"flag"
	"strings"
)

type cliConfig struct {
	Input       string
	Output      string
	FallbackDir string
	SpecPath    string
	PromptPath  string
	Disable     string
	EnvPath     string
}

func parseFlags() cliConfig {
	cfg := cliConfig{}

	flag.StringVar(&cfg.Input, "input", "", "Path to a player report markdown file")
	flag.StringVar(&cfg.Output, "output", "", "Path for the aggregate ratings JSON (default: ../ratings/<stem>.json)")
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
