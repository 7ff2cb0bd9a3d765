package api

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/zombar/postscore/internal/engine"
	"github.com/zombar/postscore/internal/insight"
	"github.com/zombar/postscore/internal/models"
)

func setupTestHandler(t *testing.T) http.Handler {
	t.Helper()

	// Reset Prometheus registry to avoid metric registration conflicts between tests
	prometheus.DefaultRegisterer = prometheus.NewRegistry()

	logger := slog.New(slog.DiscardHandler)
	eng := engine.New(insight.NewClient(nil, logger), logger)
	return NewHandler(eng, logger)
}

func TestHealthEndpoint(t *testing.T) {
	handler := setupTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if response["status"] != "ok" {
		t.Errorf("Expected status 'ok', got '%s'", response["status"])
	}
}

func TestAnalyzePostEndpoint(t *testing.T) {
	handler := setupTestHandler(t)

	reqBody := models.AnalysisRequest{
		Text: "The committee reviewed the proposal carefully and published a detailed report. " +
			"Members discussed the findings over several sessions before reaching a conclusion.",
	}

	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/analyze/post", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var response models.AnalysisResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if response.Rating < 0 || response.Rating > 100 {
		t.Errorf("Rating out of range: %d", response.Rating)
	}
	if response.PostUUID == "" {
		t.Error("Expected a generated post_uuid")
	}
	if _, err := uuid.Parse(response.PostUUID); err != nil {
		t.Errorf("Generated post_uuid is not a valid UUID: %q", response.PostUUID)
	}
	if len(response.Recommendations) == 0 {
		t.Error("Expected recommendations in response")
	}
}

func TestAnalyzePostPreservesUUID(t *testing.T) {
	handler := setupTestHandler(t)

	id := uuid.NewString()
	body, _ := json.Marshal(models.AnalysisRequest{Text: "Some ordinary text.", PostUUID: id})
	req := httptest.NewRequest(http.MethodPost, "/api/analyze/post", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response models.AnalysisResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.PostUUID != id {
		t.Errorf("Expected post_uuid %q to be preserved, got %q", id, response.PostUUID)
	}
}

func TestAnalyzePostEmptyText(t *testing.T) {
	handler := setupTestHandler(t)

	body, _ := json.Marshal(models.AnalysisRequest{Text: ""})
	req := httptest.NewRequest(http.MethodPost, "/api/analyze/post", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	// Empty text is valid input, it just scores zero
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200 for empty text, got %d", w.Code)
	}

	var response models.AnalysisResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.Rating != 0 {
		t.Errorf("Expected rating 0 for empty text, got %d", response.Rating)
	}
}

func TestAnalyzePostInvalidBody(t *testing.T) {
	handler := setupTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/analyze/post", strings.NewReader("{not json"))
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	if response["error"] == "" {
		t.Error("Expected an error message in response")
	}
}

func TestAnalyzePostInvalidUUID(t *testing.T) {
	handler := setupTestHandler(t)

	body, _ := json.Marshal(models.AnalysisRequest{Text: "hello", PostUUID: "not-a-uuid"})
	req := httptest.NewRequest(http.MethodPost, "/api/analyze/post", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for invalid post_uuid, got %d", w.Code)
	}
}

func TestAnalyzePostMethodNotAllowed(t *testing.T) {
	handler := setupTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/analyze/post", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status 405, got %d", w.Code)
	}
}
