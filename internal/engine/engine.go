// Package engine orchestrates the analyzers and assembles the final rating.
package engine

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/zombar/postscore/internal/bias"
	"github.com/zombar/postscore/internal/insight"
	"github.com/zombar/postscore/internal/models"
	"github.com/zombar/postscore/internal/readability"
	"github.com/zombar/postscore/internal/scoring"
)

// Engine runs the full scoring pipeline for a post.
type Engine struct {
	insight *insight.Client
	logger  *slog.Logger
}

// New creates an Engine. The insight client decides internally whether a
// remote provider is available; logger may be nil.
func New(client *insight.Client, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{insight: client, logger: logger}
}

// Rate scores a post. The analyzers run concurrently and each one degrades
// to its documented default on panic, so a complete response always comes
// back. Empty text short-circuits without touching the external service.
func (e *Engine) Rate(ctx context.Context, text, postUUID string) *models.AnalysisResponse {
	wordCount := len(strings.Fields(text))

	var (
		biasResult bias.Result
		readResult readability.Result
		extResult  insight.Analysis
	)

	if wordCount == 0 {
		biasResult = bias.Neutral()
		extResult = insight.Default("empty content")
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			biasResult = e.detectBias(text)
			return nil
		})
		g.Go(func() error {
			readResult = e.analyzeReadability(text)
			return nil
		})
		g.Go(func() error {
			extResult = e.insight.Analyze(gctx, text)
			return nil
		})
		// Analyzers never return errors, they degrade to defaults.
		_ = g.Wait()
	}

	rating, breakdown := scoring.Aggregate(biasResult, readResult, extResult, wordCount)
	recommendations := scoring.Recommend(biasResult, readResult, extResult, wordCount)

	e.logger.Info("post rated",
		"post_uuid", postUUID,
		"rating", rating,
		"word_count", wordCount,
		"bias_direction", biasResult.Direction,
	)

	return &models.AnalysisResponse{
		Rating:           rating,
		SentimentScore:   extResult.Sentiment,
		BiasScore:        biasResult.Score,
		BiasDirection:    biasResult.Direction,
		MatchedTerms:     biasResult.MatchedTerms,
		OriginalityScore: 1 - extResult.Plagiarism,
		PlagiarismScore:  extResult.Plagiarism,
		AIDetectionScore: extResult.AIDetection,
		FleschKincaid:    readResult.FleschKincaid,
		GunningFog:       readResult.GunningFog,
		ReadabilityScore: readResult.Score,
		MainTopic:        extResult.MainTopic,
		SecondaryTopics:  extResult.SecondaryTopics,
		Recommendations:  recommendations,
		Explanation: models.Explanation{
			Bias:        biasResult,
			Readability: readResult,
			External:    extResult,
			Breakdown:   breakdown,
		},
		PostUUID: postUUID,
	}
}

// detectBias runs the lexicon detector, falling back to a neutral result if
// it panics.
func (e *Engine) detectBias(text string) (result bias.Result) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Warn("bias detector panicked", "panic", r)
			result = bias.Neutral()
		}
	}()
	return bias.Detect(text)
}

// analyzeReadability runs the readability formulas, falling back to a zero
// result if they panic.
func (e *Engine) analyzeReadability(text string) (result readability.Result) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Warn("readability analyzer panicked", "panic", r)
			result = readability.Result{}
		}
	}()
	return readability.Analyze(text)
}
