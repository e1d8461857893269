package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

type HealthChecker interface {
	Health(ctx context.Context) error
}

// HealthHandler reports service health. Redis is optional: when it is not
// configured the check is reported as disabled and never fails readiness.
type HealthHandler struct {
	redis     HealthChecker
	generator string
}

func NewHealthHandler(redis HealthChecker, generator string) *HealthHandler {
	return &HealthHandler{
		redis:     redis,
		generator: generator,
	}
}

type HealthResponse struct {
	Status    string            `json:"status"`
	Checks    map[string]string `json:"checks"`
	Timestamp string            `json:"timestamp"`
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	response := HealthResponse{
		Status:    "healthy",
		Checks:    make(map[string]string),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	switch {
	case h.redis == nil:
		response.Checks["redis"] = "disabled"
	case h.redis.Health(ctx) != nil:
		response.Status = "degraded"
		response.Checks["redis"] = "unhealthy"
	default:
		response.Checks["redis"] = "healthy"
	}

	if h.generator != "" {
		response.Checks["recommendations"] = h.generator
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(response)
}

// Ready fails only when a configured Redis is unreachable. Rate limiting
// fails open, so the storefront still serves without it.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if h.redis != nil {
		if err := h.redis.Health(ctx); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("not ready"))
			return
		}
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("alive"))
}
