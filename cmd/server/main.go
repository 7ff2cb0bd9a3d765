package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/zombar/postscore/internal/api"
	"github.com/zombar/postscore/internal/engine"
	"github.com/zombar/postscore/internal/insight"
	"github.com/zombar/postscore/pkg/logging"
	"github.com/zombar/postscore/pkg/tracing"
)

func main() {
	// Setup structured logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	logger.Info("postscore service initializing", "version", "1.0.0")

	// Initialize tracing
	tp, err := tracing.InitTracer("postscore")
	if err != nil {
		logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
	} else {
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.Error("error shutting down tracer", "error", err)
			}
		}()
		logger.Info("tracing initialized successfully")
	}

	// Get default values from environment variables, with fallbacks
	portDefault := getEnv("PORT", "8080")
	providerDefault := getEnv("INSIGHT_PROVIDER", "ollama")
	modelDefault := getEnv("INSIGHT_MODEL", "")
	apiKeyDefault := getEnv("OPENAI_API_KEY", "")
	openaiBaseDefault := getEnv("OPENAI_BASE_URL", "")
	ollamaURLDefault := getEnv("OLLAMA_URL", "http://localhost:11434")
	timeoutDefault := getEnvInt("INSIGHT_TIMEOUT_SECONDS", 30)

	var (
		port           = flag.String("port", portDefault, "Server port (env: PORT)")
		provider       = flag.String("insight-provider", providerDefault, "External analysis provider: openai, ollama or empty to disable (env: INSIGHT_PROVIDER)")
		model          = flag.String("insight-model", modelDefault, "Model override for the analysis provider (env: INSIGHT_MODEL)")
		apiKey         = flag.String("openai-api-key", apiKeyDefault, "OpenAI API key (env: OPENAI_API_KEY)")
		openaiBase     = flag.String("openai-base-url", openaiBaseDefault, "OpenAI-compatible base URL override (env: OPENAI_BASE_URL)")
		ollamaURL      = flag.String("ollama-url", ollamaURLDefault, "Ollama API URL (env: OLLAMA_URL)")
		timeoutSeconds = flag.Int("insight-timeout", timeoutDefault, "External analysis timeout in seconds (env: INSIGHT_TIMEOUT_SECONDS)")
	)
	flag.Parse()

	// Initialize the external analysis provider
	insightProvider, err := insight.NewProvider(insight.Config{
		Provider:  *provider,
		Model:     *model,
		APIKey:    *apiKey,
		BaseURL:   *openaiBase,
		OllamaURL: *ollamaURL,
		Timeout:   time.Duration(*timeoutSeconds) * time.Second,
	})
	if err != nil {
		logger.Warn("failed to initialize analysis provider, scoring with local analyzers only",
			"error", err,
			"provider", *provider,
		)
	} else if insightProvider != nil {
		logger.Info("analysis provider initialized", "provider", insightProvider.Name())
	} else {
		logger.Info("external analysis disabled, scoring with local analyzers only")
	}

	insightClient := insight.NewClient(insightProvider, logger)
	eng := engine.New(insightClient, logger)

	// Initialize API handler
	apiHandler := api.NewHandler(eng, logger)

	// Wrap handler with middleware chain: HTTP logging -> tracing -> handlers
	handler := logging.HTTPLoggingMiddleware(logger)(
		tracing.HTTPMiddleware("postscore")(apiHandler),
	)

	// Create server with extended timeouts for the external analysis call
	srv := &http.Server{
		Addr:         ":" + *port,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("postscore service starting",
			"port", *port,
			"insight_provider", *provider,
			"insight_enabled", insightClient.Enabled(),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
