package ai

import (
	"errors"
	"fmt"
)

var (
	ErrAINotConfigured = errors.New("AI provider is not configured")
	ErrSafetyViolation = errors.New("generated content violated safety policies")
	ErrEmptyReply      = errors.New("AI provider returned an empty reply")
)

// ValidationError reports a malformed recommendation request. The backend is
// never contacted when one is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// GenerationError reports that the backend could not produce a usable
// recommendation: it was unreachable, timed out, refused, or replied with
// something that does not fit the result shape.
type GenerationError struct {
	Reason string
	Err    error
}

func (e *GenerationError) Error() string {
	if e.Err == nil {
		return "recommendation generation failed: " + e.Reason
	}
	return fmt.Sprintf("recommendation generation failed: %s: %v", e.Reason, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
