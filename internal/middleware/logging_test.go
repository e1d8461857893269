package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/HammerMeetNail/bloomnext/internal/logging"
)

func decodeLogLines(t *testing.T, buf *bytes.Buffer) []logging.LogEntry {
	t.Helper()
	var entries []logging.LogEntry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry logging.LogEntry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("invalid log line %q: %v", line, err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestRequestLogger_LogsWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New().SetOutput(&buf)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logging.FromContext(r.Context()).Info("inside handler")
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/products?color=Red", nil)
	rr := httptest.NewRecorder()
	NewRequestLogger(logger).Apply(next).ServeHTTP(rr, req)

	requestID := rr.Header().Get(requestIDHeader)
	if requestID == "" {
		t.Fatal("expected a generated request id")
	}

	entries := decodeLogLines(t, &buf)
	if len(entries) != 2 {
		t.Fatalf("expected 2 log entries, got %d", len(entries))
	}
	if entries[0].Message != "inside handler" || entries[0].Fields["request_id"] != requestID {
		t.Errorf("expected handler log to carry request id, got %+v", entries[0])
	}

	access := entries[1]
	if access.Level != "WARN" {
		t.Errorf("expected WARN for 4xx, got %s", access.Level)
	}
	if access.Fields["status"] != float64(http.StatusTeapot) {
		t.Errorf("unexpected status field %v", access.Fields["status"])
	}
	if access.Fields["size"] != float64(len("short and stout")) {
		t.Errorf("unexpected size field %v", access.Fields["size"])
	}
	if access.Fields["query"] != "color=Red" {
		t.Errorf("unexpected query field %v", access.Fields["query"])
	}
}

func TestRequestLogger_KeepsIncomingRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New().SetOutput(&buf)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rr := httptest.NewRecorder()
	NewRequestLogger(logger).Apply(okHandler()).ServeHTTP(rr, req)

	if got := rr.Header().Get(requestIDHeader); got != "abc-123" {
		t.Errorf("expected incoming request id to be kept, got %q", got)
	}
	entries := decodeLogLines(t, &buf)
	if len(entries) != 1 || entries[0].Level != "INFO" {
		t.Fatalf("expected one INFO entry, got %+v", entries)
	}
}

func TestRequestLogger_ServerErrorsLogAtError(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New().SetOutput(&buf)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	NewRequestLogger(logger).Apply(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/recommendations", nil))

	entries := decodeLogLines(t, &buf)
	if len(entries) != 1 || entries[0].Level != "ERROR" {
		t.Fatalf("expected one ERROR entry, got %+v", entries)
	}
}
