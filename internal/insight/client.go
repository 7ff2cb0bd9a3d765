package insight

import (
	"context"
	"log/slog"
)

// Client wraps a Provider and guarantees the caller always gets a usable
// Analysis: transport errors, malformed payloads and missing configuration
// all collapse into the documented fallback record, and successful responses
// are clamped and post-processed before being returned.
type Client struct {
	provider Provider
	logger   *slog.Logger
}

// NewClient creates a client over the given provider. A nil provider
// disables remote analysis; every call then returns the fallback record.
func NewClient(provider Provider, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{provider: provider, logger: logger}
}

// Enabled reports whether a remote backend is configured.
func (c *Client) Enabled() bool {
	return c.provider != nil
}

// Analyze returns the normalized analysis for text. It never fails: any
// provider error is logged and replaced by the fallback record so the
// scoring engine downstream is isolated from remote-service variance.
func (c *Client) Analyze(ctx context.Context, text string) Analysis {
	if c.provider == nil {
		return Default("remote analysis disabled")
	}

	raw, err := c.provider.Analyze(ctx, text)
	if err != nil {
		c.logger.Warn("remote analysis failed, using fallback record",
			"provider", c.provider.Name(),
			"error", err,
		)
		return Default("analysis service unavailable: " + err.Error())
	}

	return sanitize(text, raw)
}
