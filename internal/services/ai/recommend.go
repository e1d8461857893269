package ai

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/HammerMeetNail/bloomnext/internal/logging"
)

// DefaultTimeout bounds a single backend call when no timeout is configured.
const DefaultTimeout = 30 * time.Second

// UsageStats describes one backend call for logging and metrics.
type UsageStats struct {
	Model        string
	TokensInput  int
	TokensOutput int
	Duration     time.Duration
}

// Generator sends a rendered prompt to a generative text backend and returns
// the raw reply text. Implementations must honour ctx cancellation.
type Generator interface {
	Generate(ctx context.Context, prompt Prompt) (string, UsageStats, error)
}

// Service turns recommendation requests into validated results. It holds no
// per-request state and is safe for concurrent use.
type Service struct {
	generator Generator
	timeout   time.Duration
}

func NewService(generator Generator, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Service{generator: generator, timeout: timeout}
}

type generation struct {
	text  string
	stats UsageStats
	err   error
}

// Recommend validates req, makes exactly one backend call and returns the
// parsed result. Errors are either *ValidationError or *GenerationError.
func (s *Service) Recommend(ctx context.Context, req RecommendationRequest) (*RecommendationResult, error) {
	if err := req.validate(); err != nil {
		recommendationsTotal.WithLabelValues(outcomeInvalid).Inc()
		return nil, err
	}

	log := logging.FromContext(ctx)
	prompt := buildPrompt(req)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	// Log request metadata only; never the shopper's text.
	log.Info("Requesting flower recommendation", map[string]interface{}{
		"prompt_length": len(prompt.User),
	})

	start := time.Now()
	done := make(chan generation, 1)
	go func() {
		text, stats, err := s.generator.Generate(ctx, prompt)
		done <- generation{text: text, stats: stats, err: err}
	}()

	var g generation
	select {
	case g = <-done:
	case <-ctx.Done():
		g = generation{err: ctx.Err()}
	}
	duration := time.Since(start)
	observeUsage(g.stats)

	if g.err != nil {
		outcome, reason := classifyFailure(g.err)
		recommendationsTotal.WithLabelValues(outcome).Inc()
		log.Warn("Recommendation generation failed", map[string]interface{}{
			"reason":      reason,
			"error":       g.err.Error(),
			"duration_ms": duration.Milliseconds(),
		})
		return nil, &GenerationError{Reason: reason, Err: g.err}
	}

	result, err := parseResult(g.text)
	if err != nil {
		recommendationsTotal.WithLabelValues(outcomeBadReply).Inc()
		log.Warn("Recommendation reply rejected", map[string]interface{}{
			"error":           err.Error(),
			"response_length": len(g.text),
		})
		return nil, err
	}

	recommendationsTotal.WithLabelValues(outcomeSuccess).Inc()
	log.Info("Recommendation generated", map[string]interface{}{
		"response_length": len(g.text),
		"has_reasoning":   result.Reasoning != nil,
		"duration_ms":     duration.Milliseconds(),
		"tokens_input":    g.stats.TokensInput,
		"tokens_output":   g.stats.TokensOutput,
	})
	return result, nil
}

func classifyFailure(err error) (outcome, reason string) {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return outcomeTimeout, "timed out"
	case errors.Is(err, context.Canceled):
		return outcomeBackendError, "canceled"
	case errors.Is(err, ErrSafetyViolation):
		return outcomeRefused, "refused"
	case errors.Is(err, ErrAINotConfigured):
		return outcomeBackendError, "not configured"
	case errors.Is(err, ErrEmptyReply):
		return outcomeBadReply, "empty reply"
	default:
		return outcomeBackendError, "backend unavailable"
	}
}

type replyShape struct {
	Recommendation *string `json:"recommendation"`
	Reasoning      *string `json:"reasoning"`
}

// parseResult decodes a model reply into a result, requiring a non-blank
// recommendation. Blank reasoning is treated as absent.
func parseResult(text string) (*RecommendationResult, error) {
	cleaned := stripMarkdownCodeBlock(text)
	if cleaned == "" {
		return nil, &GenerationError{Reason: "empty reply", Err: ErrEmptyReply}
	}

	var reply replyShape
	if err := json.Unmarshal([]byte(cleaned), &reply); err != nil {
		return nil, &GenerationError{Reason: "invalid JSON reply", Err: err}
	}
	if reply.Recommendation == nil || strings.TrimSpace(*reply.Recommendation) == "" {
		return nil, &GenerationError{Reason: "reply missing recommendation", Err: ErrEmptyReply}
	}

	result := &RecommendationResult{Recommendation: strings.TrimSpace(*reply.Recommendation)}
	if reply.Reasoning != nil {
		if reasoning := strings.TrimSpace(*reply.Reasoning); reasoning != "" {
			result.Reasoning = &reasoning
		}
	}
	return result, nil
}

// stripMarkdownCodeBlock removes leading and trailing markdown code block fences (```json or ```).
func stripMarkdownCodeBlock(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimSpace(s)
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSpace(s)
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimSpace(s)
	}
	return s
}
