package ai

import (
	"fmt"
	"strings"
)

const systemPrompt = "You are a floral expert providing personalized flower arrangement recommendations."

// RecommendationRequest is the shopper's intent. Preferences is optional; nil
// and empty both mean no stated preference.
type RecommendationRequest struct {
	Occasion    string  `json:"occasion"`
	Recipient   string  `json:"recipient"`
	Preferences *string `json:"preferences,omitempty"`
}

// RecommendationResult is the validated model reply.
type RecommendationResult struct {
	Recommendation string  `json:"recommendation"`
	Reasoning      *string `json:"reasoning,omitempty"`
}

// Prompt is a rendered request ready for a Generator.
type Prompt struct {
	System string
	User   string
}

func (r RecommendationRequest) validate() error {
	if strings.TrimSpace(r.Occasion) == "" {
		return &ValidationError{Field: "occasion", Message: "Occasion is required"}
	}
	if strings.TrimSpace(r.Recipient) == "" {
		return &ValidationError{Field: "recipient", Message: "Recipient is required"}
	}
	return nil
}

// buildPrompt embeds the request fields verbatim in a fixed template.
func buildPrompt(req RecommendationRequest) Prompt {
	preferences := ""
	if req.Preferences != nil {
		preferences = *req.Preferences
	}

	user := fmt.Sprintf(`Based on the occasion, recipient, and preferences, recommend a flower arrangement.

Occasion: %s
Recipient: %s
Preferences: %s

Respond with a JSON object with a "recommendation" field describing the arrangement and an optional "reasoning" field explaining the choice.`,
		req.Occasion, req.Recipient, preferences)

	return Prompt{System: systemPrompt, User: user}
}
