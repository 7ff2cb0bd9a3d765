package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("POSTSCORE_TEST_KEY", "value")

	if got := getEnv("POSTSCORE_TEST_KEY", "fallback"); got != "value" {
		t.Errorf("expected env value, got %q", got)
	}
	if got := getEnv("POSTSCORE_MISSING_KEY", "fallback"); got != "fallback" {
		t.Errorf("expected fallback, got %q", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("POSTSCORE_TEST_TIMEOUT", "45")

	if got := getEnvInt("POSTSCORE_TEST_TIMEOUT", 30); got != 45 {
		t.Errorf("expected 45, got %d", got)
	}
	if got := getEnvInt("POSTSCORE_MISSING_TIMEOUT", 30); got != 30 {
		t.Errorf("expected default 30, got %d", got)
	}

	t.Setenv("POSTSCORE_TEST_TIMEOUT", "not-a-number")
	if got := getEnvInt("POSTSCORE_TEST_TIMEOUT", 30); got != 30 {
		t.Errorf("expected default for malformed value, got %d", got)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()

	promhttp.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	body := w.Body.String()
	for _, metric := range []string{"go_goroutines", "go_info"} {
		if !strings.Contains(body, metric) {
			t.Errorf("Expected metrics output to contain %q", metric)
		}
	}
}
