package insight

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const defaultOpenAIModel = openai.GPT4oMini

// OpenAIProvider produces analyses through an OpenAI-compatible
// chat-completions endpoint. A custom BaseURL points it at any service
// speaking the same protocol.
type OpenAIProvider struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewOpenAIProvider creates an OpenAI-backed provider.
func NewOpenAIProvider(cfg Config) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = defaultOpenAIModel
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &OpenAIProvider{
		client:  openai.NewClientWithConfig(clientConfig),
		model:   model,
		timeout: timeout,
	}, nil
}

// Name returns the provider name.
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// Analyze requests the analysis record via a single chat completion.
func (p *OpenAIProvider) Analyze(ctx context.Context, text string) (Analysis, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: analysisPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: "Text: " + text,
			},
		},
		MaxTokens: 300,
		// Near-zero temperature: scoring must be repeatable.
		Temperature: 0.05,
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return Analysis{}, fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Analysis{}, fmt.Errorf("no choices in completion response")
	}

	return parseAnalysis(resp.Choices[0].Message.Content)
}
