package insight

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ollama/ollama/api"
)

const defaultOllamaModel = "llama3.2"

// OllamaProvider produces analyses through a locally hosted Ollama model.
type OllamaProvider struct {
	client  *api.Client
	model   string
	timeout time.Duration
}

// NewOllamaProvider creates an Ollama-backed provider.
func NewOllamaProvider(cfg Config) (*OllamaProvider, error) {
	ollamaURL := cfg.OllamaURL
	if ollamaURL == "" {
		ollamaURL = "http://localhost:11434"
	}

	baseURL, err := url.Parse(ollamaURL)
	if err != nil {
		return nil, fmt.Errorf("invalid Ollama URL: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = defaultOllamaModel
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &OllamaProvider{
		client:  api.NewClient(baseURL, http.DefaultClient),
		model:   model,
		timeout: timeout,
	}, nil
}

// Name returns the provider name.
func (p *OllamaProvider) Name() string {
	return "ollama"
}

// Analyze requests the analysis record via a single generation call.
func (p *OllamaProvider) Analyze(ctx context.Context, text string) (Analysis, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req := &api.GenerateRequest{
		Model:  p.model,
		Prompt: analysisPrompt + "\n\nText: " + text,
		Stream: new(bool), // false
	}

	var response strings.Builder
	err := p.client.Generate(ctx, req, func(resp api.GenerateResponse) error {
		response.WriteString(resp.Response)
		return nil
	})
	if err != nil {
		return Analysis{}, fmt.Errorf("generation failed: %w", err)
	}

	return parseAnalysis(strings.TrimSpace(response.String()))
}
