package ai

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/HammerMeetNail/bloomnext/internal/config"
	"github.com/HammerMeetNail/bloomnext/internal/logging"
)

const defaultGeminiModel = "gemini-2.5-flash-lite"

// geminiBaseURL overrides the API endpoint when non-empty.
var geminiBaseURL = ""

// GeminiGenerator calls Google Gemini through the genai SDK.
type GeminiGenerator struct {
	client      *genai.Client
	model       string
	temperature float32
}

func NewGeminiGenerator(ctx context.Context, cfg config.AIConfig) (*GeminiGenerator, error) {
	if strings.TrimSpace(cfg.GeminiAPIKey) == "" {
		return nil, ErrAINotConfigured
	}

	model := cfg.Model
	if model == "" {
		model = defaultGeminiModel
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.GeminiAPIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  &http.Client{Timeout: timeout},
		HTTPOptions: genai.HTTPOptions{BaseURL: geminiBaseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}

	return &GeminiGenerator{
		client:      client,
		model:       model,
		temperature: float32(cfg.Temperature),
	}, nil
}

func recommendationSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"recommendation": {
				Type:        genai.TypeString,
				Description: "A personalized flower arrangement recommendation.",
			},
			"reasoning": {
				Type:        genai.TypeString,
				Description: "The reasoning behind the recommendation.",
			},
		},
		Required: []string{"recommendation"},
	}
}

func safetySettings() []*genai.SafetySetting {
	categories := []genai.HarmCategory{
		genai.HarmCategoryHarassment,
		genai.HarmCategoryHateSpeech,
		genai.HarmCategorySexuallyExplicit,
		genai.HarmCategoryDangerousContent,
	}
	settings := make([]*genai.SafetySetting, 0, len(categories))
	for _, c := range categories {
		settings = append(settings, &genai.SafetySetting{
			Category:  c,
			Threshold: genai.HarmBlockThresholdBlockMediumAndAbove,
		})
	}
	return settings
}

func (g *GeminiGenerator) Generate(ctx context.Context, prompt Prompt) (string, UsageStats, error) {
	start := time.Now()
	stats := UsageStats{Model: g.model}

	genConfig := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(prompt.System, genai.RoleUser),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    recommendationSchema(),
		SafetySettings:    safetySettings(),
	}
	if g.temperature > 0 {
		genConfig.Temperature = genai.Ptr(g.temperature)
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{genai.NewContentFromText(prompt.User, genai.RoleUser)},
		genConfig,
	)
	stats.Duration = time.Since(start)
	if err != nil {
		return "", stats, fmt.Errorf("gemini generate: %w", err)
	}

	if resp.UsageMetadata != nil {
		stats.TokensInput = int(resp.UsageMetadata.PromptTokenCount)
		stats.TokensOutput = int(resp.UsageMetadata.CandidatesTokenCount)
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", stats, fmt.Errorf("%w: prompt blocked (%s)", ErrSafetyViolation, resp.PromptFeedback.BlockReason)
	}
	if len(resp.Candidates) == 0 {
		return "", stats, ErrEmptyReply
	}
	if resp.Candidates[0].FinishReason == genai.FinishReasonSafety {
		return "", stats, ErrSafetyViolation
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", stats, ErrEmptyReply
	}

	logging.FromContext(ctx).Debug("Received response from Gemini", map[string]interface{}{
		"model":           g.model,
		"response_length": len(text),
	})
	return text, stats, nil
}
