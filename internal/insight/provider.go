package insight

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DefaultTimeout bounds every remote analysis call. The request resolves to
// the fallback record when it expires.
const DefaultTimeout = 30 * time.Second

// Provider is one backend capable of producing an Analysis. Backends are
// interchangeable: an OpenAI-compatible chat-completion endpoint and a
// locally hosted Ollama model implement the same contract.
type Provider interface {
	// Name returns the provider name for logging.
	Name() string

	// Analyze sends text to the service and returns its raw analysis.
	Analyze(ctx context.Context, text string) (Analysis, error)
}

// Config selects and configures a provider backend.
type Config struct {
	// Provider name: "openai", "ollama", or "" to disable remote analysis.
	Provider string

	// Model is the model name (provider-specific, empty picks a default).
	Model string

	// APIKey authenticates against OpenAI-compatible endpoints.
	APIKey string

	// BaseURL overrides the endpoint for OpenAI-compatible services.
	BaseURL string

	// OllamaURL is the Ollama server address.
	OllamaURL string

	// Timeout bounds each analysis call; zero means DefaultTimeout.
	Timeout time.Duration
}

// NewProvider creates a provider from configuration. An empty provider name
// returns nil, which the Client treats as remote analysis disabled.
func NewProvider(cfg Config) (Provider, error) {
	switch strings.ToLower(cfg.Provider) {
	case "openai":
		p, err := NewOpenAIProvider(cfg)
		if err != nil {
			return nil, err
		}
		return p, nil
	case "ollama":
		p, err := NewOllamaProvider(cfg)
		if err != nil {
			return nil, err
		}
		return p, nil
	case "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown analysis provider: %s (supported: openai, ollama)", cfg.Provider)
	}
}

// analysisPrompt instructs the model to return the analysis record as a bare
// JSON object. Kept deliberately strict: the response is parsed, clamped and
// post-processed, never trusted.
const analysisPrompt = `You are an expert content analyst and plagiarism detector. Analyze the text and return ONLY a valid JSON object with these exact fields:

{
  "sentiment": <number from -1.0 to 1.0>,
  "main_topic": "<string>",
  "secondary_topics": ["<string>", "<string>", "<string>"],
  "plagiarism": <number from 0.0 to 1.0>,
  "ai_detection": <number from 0.0 to 1.0>,
  "overall_score": <number from 0 to 100>,
  "reasoning": "<brief explanation of the overall score>"
}

Guidance:
- sentiment: -1.0 (very negative) to +1.0 (very positive)
- main_topic: primary subject matter
- secondary_topics: 2-3 related topics
- plagiarism: 0.0 (completely original phrasing) to 1.0 (copied from the internet or very generic). Generic greetings, template language and very short content score high; personal detail and unique phrasing score low.
- ai_detection: 0.0 (definitely human) to 1.0 (definitely AI-generated). Look for formulaic structure, hedging language, perfect grammar and lack of personal voice.
- overall_score: content quality from 0 to 100. Heavily penalize very short content: single words deserve 0-10 regardless of sentiment.
- Be consistent: identical conditions must always produce identical scores.
- Harmful, violent or gibberish content always scores 0 overall.

Return ONLY the JSON object, nothing else.`

// parseAnalysis extracts the JSON object from a model response and decodes
// it. Models love to wrap JSON in prose or code fences, so the first balanced
// object substring is used.
func parseAnalysis(response string) (Analysis, error) {
	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start < 0 || end <= start {
		return Analysis{}, fmt.Errorf("no JSON object found in response")
	}

	// Absent fields keep the fallback record's neutral values.
	result := Analysis{
		Plagiarism:   0.5,
		OverallScore: 50.0,
	}
	if err := json.Unmarshal([]byte(response[start:end+1]), &result); err != nil {
		return Analysis{}, fmt.Errorf("failed to parse analysis JSON: %w", err)
	}

	return result, nil
}
