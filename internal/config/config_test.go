package config

import (
	"os"
	"testing"
	"time"
)

var configEnvVars = []string{
	"SERVER_HOST", "SERVER_PORT", "SERVER_SECURE", "APP_ENV", "DEBUG", "LOG_LEVEL",
	"REDIS_ENABLED", "REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD", "REDIS_DB",
	"GEMINI_API_KEY", "AI_MODEL", "AI_TEMPERATURE", "AI_TIMEOUT", "AI_STUB", "AI_RATE_LIMIT",
	"TEMPLATES_DIR", "STATIC_DIR",
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, v := range configEnvVars {
		if old, ok := os.LookupEnv(v); ok {
			t.Cleanup(func() { os.Setenv(v, old) })
		}
		os.Unsetenv(v)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("expected Server.Host to be 0.0.0.0, got %s", cfg.Server.Host)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected Server.Port to be 8080, got %d", cfg.Server.Port)
	}
	if cfg.Server.Secure {
		t.Error("expected Server.Secure to be false")
	}
	if cfg.Server.Environment != "development" {
		t.Errorf("expected Server.Environment to be development, got %s", cfg.Server.Environment)
	}

	if !cfg.Redis.Enabled {
		t.Error("expected Redis.Enabled to default to true")
	}
	if cfg.Redis.Addr() != "localhost:6379" {
		t.Errorf("expected Redis.Addr localhost:6379, got %s", cfg.Redis.Addr())
	}

	if cfg.AI.GeminiAPIKey != "" {
		t.Errorf("expected AI.GeminiAPIKey to be empty, got %q", cfg.AI.GeminiAPIKey)
	}
	if cfg.AI.Model != "gemini-2.5-flash-lite" {
		t.Errorf("expected AI.Model gemini-2.5-flash-lite, got %q", cfg.AI.Model)
	}
	if cfg.AI.Timeout != 30*time.Second {
		t.Errorf("expected AI.Timeout 30s, got %s", cfg.AI.Timeout)
	}
	if cfg.AI.RateLimit != 10 {
		t.Errorf("expected AI.RateLimit 10, got %d", cfg.AI.RateLimit)
	}
	if cfg.AI.Stub {
		t.Error("expected AI.Stub to be false")
	}

	if cfg.Web.TemplatesDir != "web/templates" {
		t.Errorf("expected Web.TemplatesDir web/templates, got %s", cfg.Web.TemplatesDir)
	}
}

func TestLoad_CustomValues(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("SERVER_HOST", "127.0.0.1")
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("SERVER_SECURE", "true")
	t.Setenv("APP_ENV", "production")
	t.Setenv("REDIS_ENABLED", "false")
	t.Setenv("REDIS_HOST", "redis.example.com")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("GEMINI_API_KEY", "key-123")
	t.Setenv("AI_MODEL", "gemini-2.5-flash")
	t.Setenv("AI_TIMEOUT", "45s")
	t.Setenv("AI_STUB", "true")
	t.Setenv("AI_RATE_LIMIT", "25")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Host != "127.0.0.1" || cfg.Server.Port != 3000 || !cfg.Server.Secure {
		t.Errorf("unexpected server config: %+v", cfg.Server)
	}
	if cfg.Server.Environment != "production" {
		t.Errorf("expected production, got %s", cfg.Server.Environment)
	}
	if cfg.Redis.Enabled {
		t.Error("expected Redis.Enabled to be false")
	}
	if cfg.Redis.Addr() != "redis.example.com:6380" {
		t.Errorf("unexpected redis addr %s", cfg.Redis.Addr())
	}
	if cfg.AI.GeminiAPIKey != "key-123" || cfg.AI.Model != "gemini-2.5-flash" {
		t.Errorf("unexpected AI config: %+v", cfg.AI)
	}
	if cfg.AI.Timeout != 45*time.Second {
		t.Errorf("expected 45s timeout, got %s", cfg.AI.Timeout)
	}
	if !cfg.AI.Stub {
		t.Error("expected AI.Stub to be true")
	}
	if cfg.AI.RateLimit != 25 {
		t.Errorf("expected rate limit 25, got %d", cfg.AI.RateLimit)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("SERVER_PORT", "not-a-number")
	t.Setenv("SERVER_SECURE", "maybe")
	t.Setenv("AI_RATE_LIMIT", "-3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port, got %d", cfg.Server.Port)
	}
	if cfg.Server.Secure {
		t.Error("expected default secure=false")
	}
	if cfg.AI.RateLimit != 10 {
		t.Errorf("expected default rate limit, got %d", cfg.AI.RateLimit)
	}
}

func TestLoad_NonPositiveTimeout(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("AI_TIMEOUT", "0s")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for zero AI_TIMEOUT")
	}
}

func TestGetEnvDuration(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		set      bool
		expected time.Duration
	}{
		{name: "unset", expected: 5 * time.Second},
		{name: "duration string", value: "2m", set: true, expected: 2 * time.Minute},
		{name: "bare seconds", value: "12", set: true, expected: 12 * time.Second},
		{name: "garbage", value: "soon", set: true, expected: 5 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Unsetenv("TEST_DURATION")
			if tt.set {
				t.Setenv("TEST_DURATION", tt.value)
			}
			got := getEnvDuration("TEST_DURATION", 5*time.Second)
			if got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}
