package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHealthHandler_Health(t *testing.T) {
	tests := []struct {
		name       string
		redis      HealthChecker
		wantStatus string
		wantRedis  string
	}{
		{name: "redis disabled", redis: nil, wantStatus: "healthy", wantRedis: "disabled"},
		{name: "redis healthy", redis: &mockHealthChecker{}, wantStatus: "healthy", wantRedis: "healthy"},
		{name: "redis down", redis: &mockHealthChecker{err: errors.New("connection refused")}, wantStatus: "degraded", wantRedis: "unhealthy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHealthHandler(tt.redis, "gemini")

			rr := httptest.NewRecorder()
			handler.Health(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

			if rr.Code != http.StatusOK {
				t.Errorf("expected status 200, got %d", rr.Code)
			}

			var response HealthResponse
			if err := json.Unmarshal(rr.Body.Bytes(), &response); err != nil {
				t.Fatalf("failed to parse response: %v", err)
			}
			if response.Status != tt.wantStatus {
				t.Errorf("expected status %q, got %q", tt.wantStatus, response.Status)
			}
			if response.Checks["redis"] != tt.wantRedis {
				t.Errorf("expected redis %q, got %q", tt.wantRedis, response.Checks["redis"])
			}
			if response.Checks["recommendations"] != "gemini" {
				t.Errorf("expected generator to be reported, got %q", response.Checks["recommendations"])
			}
			if response.Timestamp == "" {
				t.Error("expected timestamp to be set")
			}
		})
	}
}

func TestHealthHandler_Ready(t *testing.T) {
	tests := []struct {
		name     string
		redis    HealthChecker
		wantCode int
		wantBody string
	}{
		{name: "no redis", redis: nil, wantCode: http.StatusOK, wantBody: "ready"},
		{name: "redis healthy", redis: &mockHealthChecker{}, wantCode: http.StatusOK, wantBody: "ready"},
		{name: "redis down", redis: &mockHealthChecker{err: errors.New("timeout")}, wantCode: http.StatusServiceUnavailable, wantBody: "not ready"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			NewHealthHandler(tt.redis, "").Ready(rr, httptest.NewRequest(http.MethodGet, "/ready", nil))

			if rr.Code != tt.wantCode {
				t.Errorf("expected status %d, got %d", tt.wantCode, rr.Code)
			}
			if rr.Body.String() != tt.wantBody {
				t.Errorf("expected body %q, got %q", tt.wantBody, rr.Body.String())
			}
		})
	}
}

func TestHealthHandler_Live(t *testing.T) {
	rr := httptest.NewRecorder()
	NewHealthHandler(nil, "").Live(rr, httptest.NewRequest(http.MethodGet, "/live", nil))

	if rr.Code != http.StatusOK || rr.Body.String() != "alive" {
		t.Errorf("expected 200 alive, got %d %q", rr.Code, rr.Body.String())
	}
}
