package scorer

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	openai "github.com/openai/openai-go"
	openaiopt "github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"github.com/mpavlovic/scoutrate/internal/apperr"
	"github.com/mpavlovic/scoutrate/internal/extract"
	"github.com/mpavlovic/scoutrate/internal/rating"
)

// requestTimeout bounds every backend call so one hung scorer cannot stall a
// player's aggregate result.
const requestTimeout = 120 * time.Second

// ratingSchema is the strict response schema sent to structured-output
// backends. model_name and timestamp are excluded: the orchestrator stamps
// both and never trusts the model's claims about them.
var ratingSchema = map[string]any{
	"type":                 "object",
	"additionalProperties": false,
	"properties": map[string]any{
		"current_rating": map[string]any{
			"type": "integer", "minimum": 1, "maximum": 9,
			"description": "Integer 1-9 for current performance",
		},
		"future_rating": map[string]any{
			"type": "integer", "minimum": 1, "maximum": 9,
			"description": "Integer 1-9 for future potential",
		},
		"current_confidence": map[string]any{
			"type": "integer", "minimum": 0, "maximum": 100,
			"description": "0-100 confidence for current rating",
		},
		"future_confidence": map[string]any{
			"type": "integer", "minimum": 0, "maximum": 100,
			"description": "0-100 confidence for future rating",
		},
		"reasoning": map[string]any{
			"type": "array", "minItems": 3, "maxItems": 3,
			"items":       map[string]any{"type": "string"},
			"description": "Exactly three concise bullet points explaining the ratings",
		},
		"version": map[string]any{
			"type": "string", "description": "Schema version",
		},
	},
	"required": []string{
		"current_rating", "future_rating",
		"current_confidence", "future_confidence",
		"reasoning", "version",
	},
}

type llmScorer struct {
	name            string
	model           string
	kind            string
	temperature     float64
	reasoningEffort string
	prompts         *Prompts
	client          openai.Client
}

func newLLMScorer(name string, e Entry, apiKey, baseURL string, prompts *Prompts) *llmScorer {
	clientOpts := []openaiopt.RequestOption{
		openaiopt.WithAPIKey(apiKey),
		openaiopt.WithHTTPClient(&http.Client{Timeout: requestTimeout}),
		// Resumability across batch invocations is the retry strategy;
		// within one scoring pass a failure is final.
		openaiopt.WithMaxRetries(0),
	}
	if baseURL != "" {
		clientOpts = append(clientOpts, openaiopt.WithBaseURL(baseURL))
	}

	temperature := defaultTemperature
	if e.Temperature != nil {
		temperature = *e.Temperature
	}

	return &llmScorer{
		name:            name,
		model:           e.Model,
		kind:            e.Kind,
		temperature:     temperature,
		reasoningEffort: e.ReasoningEffort,
		prompts:         prompts,
		client:          openai.NewClient(clientOpts...),
	}
}

func (s *llmScorer) Name() string {
	return s.name
}

func (s *llmScorer) Score(ctx context.Context, document string) (*rating.Rating, error) {
	params := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(s.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			{
				OfSystem: &openai.ChatCompletionSystemMessageParam{
					Content: openai.ChatCompletionSystemMessageParamContentUnion{
						OfString: openai.String(s.prompts.System),
					},
				},
			},
			{
				OfUser: &openai.ChatCompletionUserMessageParam{
					Content: openai.ChatCompletionUserMessageParamContentUnion{
						OfString: openai.String(s.prompts.User(document)),
					},
				},
			},
		},
		Temperature: openai.Float(s.temperature),
	}
	if s.reasoningEffort != "" {
		params.ReasoningEffort = shared.ReasoningEffort(s.reasoningEffort)
	}
	if s.kind == KindStructured {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &shared.ResponseFormatJSONSchemaParam{
				JSONSchema: shared.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   "player_rating",
					Schema: ratingSchema,
					Strict: openai.Bool(true),
				},
			},
		}
	}

	completion, err := s.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, apperr.NewTransportWrap("chat completion failed", err)
	}
	if len(completion.Choices) == 0 {
		return nil, apperr.NewTransport("backend returned no choices")
	}

	raw, err := s.extractPayload(completion.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}

	var r rating.Rating
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, apperr.NewValidationWrap("malformed rating payload", err)
	}
	r.ApplyDefaults()
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *llmScorer) extractPayload(content string) (json.RawMessage, error) {
	switch s.kind {
	case KindStructured:
		raw := json.RawMessage(content)
		if !json.Valid(raw) {
			return nil, apperr.NewExtraction("structured reply is not valid JSON")
		}
		return raw, nil
	case KindJSONThink:
		return extract.JSONObject(extract.StripThink(content))
	default:
		return extract.JSONObject(content)
	}
}
