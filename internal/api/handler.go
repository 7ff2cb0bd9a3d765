package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.opentelemetry.io/otel/attribute"

	"github.com/zombar/postscore/internal/engine"
	"github.com/zombar/postscore/internal/models"
	"github.com/zombar/postscore/pkg/logging"
	"github.com/zombar/postscore/pkg/tracing"
)

// Handler handles HTTP requests
type Handler struct {
	engine  *engine.Engine
	logger  *slog.Logger
	metrics *metrics
	mux     *http.ServeMux
}

// NewHandler creates a new API handler with CORS support and metrics
func NewHandler(eng *engine.Engine, logger *slog.Logger) http.Handler {
	h := &Handler{
		engine:  eng,
		logger:  logger,
		metrics: newMetrics(),
		mux:     http.NewServeMux(),
	}

	h.setupRoutes()

	// Setup CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	return c.Handler(h.mux)
}

// setupRoutes configures all API routes
func (h *Handler) setupRoutes() {
	h.mux.Handle("/metrics", promhttp.Handler()) // Prometheus metrics endpoint
	h.mux.HandleFunc("/api/analyze/post", h.handleAnalyzePost)
	h.mux.HandleFunc("/health", h.handleHealth)
}

// handleHealth handles health check requests
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, map[string]string{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleAnalyzePost scores a post synchronously and returns the full rating.
// Empty text is a valid request and scores zero; a missing or malformed body
// is a client error.
func (h *Handler) handleAnalyzePost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()

	var req models.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.metrics.analyzeRequests.WithLabelValues("bad_request").Inc()
		logging.HTTPErrorLogger(h.logger, http.StatusBadRequest, err, r)
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.PostUUID == "" {
		req.PostUUID = uuid.NewString()
	} else if _, err := uuid.Parse(req.PostUUID); err != nil {
		h.metrics.analyzeRequests.WithLabelValues("bad_request").Inc()
		logging.HTTPErrorLogger(h.logger, http.StatusBadRequest, errors.New("invalid post_uuid"), r)
		respondError(w, "Invalid post_uuid", http.StatusBadRequest)
		return
	}

	tracing.SetSpanAttributes(r.Context(),
		attribute.Int("post.text_length", len(req.Text)),
		attribute.String("post.uuid", req.PostUUID))

	resp := h.engine.Rate(r.Context(), req.Text, req.PostUUID)

	h.metrics.analyzeRequests.WithLabelValues("ok").Inc()
	h.metrics.analyzeDuration.Observe(time.Since(start).Seconds())
	h.metrics.ratings.Observe(float64(resp.Rating))

	respondJSON(w, resp, http.StatusOK)
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}
