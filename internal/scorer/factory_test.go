package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSpec() *Spec {
	return &Spec{Scorers: map[string]Entry{
		"alpha": {Kind: KindStructured, Model: "alpha-1", APIKeyEnv: "ALPHA_KEY"},
		"beta":  {Kind: KindJSON, Model: "beta-1", APIKeyEnv: "BETA_KEY"},
	}}
}

func TestCreateFromSpec(t *testing.T) {
	t.Setenv("ALPHA_KEY", "key-a")
	t.Setenv("BETA_KEY", "key-b")

	scorers := CreateFromSpec(testSpec(), nil, LoadPrompts(""))
	require.Len(t, scorers, 2)

	// Deterministic sorted-name order.
	assert.Equal(t, "alpha-1", scorers[0].Name())
	assert.Equal(t, "beta-1", scorers[1].Name())
}

func TestCreateFromSpec_MissingCredentialSkipsEntryOnly(t *testing.T) {
	t.Setenv("ALPHA_KEY", "")
	t.Setenv("BETA_KEY", "key-b")

	scorers := CreateFromSpec(testSpec(), nil, LoadPrompts(""))
	require.Len(t, scorers, 1)
	assert.Equal(t, "beta-1", scorers[0].Name())
}

func TestCreateFromSpec_DisabledByName(t *testing.T) {
	t.Setenv("ALPHA_KEY", "key-a")
	t.Setenv("BETA_KEY", "key-b")

	scorers := CreateFromSpec(testSpec(), map[string]bool{"beta": true}, LoadPrompts(""))
	require.Len(t, scorers, 1)
	assert.Equal(t, "alpha-1", scorers[0].Name())
}

func TestCreateFromSpec_BaseURLEnvOverride(t *testing.T) {
	t.Setenv("ALPHA_KEY", "key-a")
	t.Setenv("ALPHA_URL", "https://override.example.com/v1")

	spec := &Spec{Scorers: map[string]Entry{
		"alpha": {
			Kind:       KindJSON,
			Model:      "alpha-1",
			BaseURL:    "https://default.example.com/v1",
			BaseURLEnv: "ALPHA_URL",
			APIKeyEnv:  "ALPHA_KEY",
		},
	}}

	scorers := CreateFromSpec(spec, nil, LoadPrompts(""))
	require.Len(t, scorers, 1)
}
