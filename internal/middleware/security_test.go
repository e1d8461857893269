package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSecurityHeaders_Apply(t *testing.T) {
	tests := []struct {
		name     string
		secure   bool
		wantHSTS bool
	}{
		{name: "non-secure mode", secure: false},
		{name: "secure mode", secure: true, wantHSTS: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			NewSecurityHeaders(tt.secure).Apply(okHandler()).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

			expected := map[string]string{
				"X-Frame-Options":        "DENY",
				"X-Content-Type-Options": "nosniff",
				"Referrer-Policy":        "strict-origin-when-cross-origin",
			}
			for header, want := range expected {
				if got := rr.Header().Get(header); got != want {
					t.Errorf("header %s: expected %q, got %q", header, want, got)
				}
			}
			if hasHSTS := rr.Header().Get("Strict-Transport-Security") != ""; hasHSTS != tt.wantHSTS {
				t.Errorf("expected HSTS present=%v", tt.wantHSTS)
			}
			if rr.Code != http.StatusOK {
				t.Errorf("expected handler to run, got status %d", rr.Code)
			}
		})
	}
}

func TestSecurityHeaders_CSPImageOrigins(t *testing.T) {
	rr := httptest.NewRecorder()
	NewSecurityHeaders(false, "https://placehold.co").Apply(okHandler()).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	csp := rr.Header().Get("Content-Security-Policy")
	for _, directive := range []string{"default-src 'self'", "img-src 'self' data: https://placehold.co;", "frame-ancestors 'none'"} {
		if !strings.Contains(csp, directive) {
			t.Errorf("expected CSP to contain %q, got %q", directive, csp)
		}
	}
}
