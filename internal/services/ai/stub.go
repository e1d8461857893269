package ai

import (
	"context"
	"time"
)

const stubModel = "stub"

const stubReply = `{"recommendation":"A hand-tied bouquet of seasonal blooms in soft pastels, finished with eucalyptus and a linen ribbon.","reasoning":"Pastel seasonal flowers suit most occasions and recipients, and eucalyptus adds fragrance and texture."}`

// StubGenerator returns a fixed reply without contacting any backend.
type StubGenerator struct {
	Reply string
}

func NewStubGenerator() *StubGenerator {
	return &StubGenerator{Reply: stubReply}
}

func (g *StubGenerator) Generate(ctx context.Context, prompt Prompt) (string, UsageStats, error) {
	if err := ctx.Err(); err != nil {
		return "", UsageStats{}, err
	}
	return g.Reply, UsageStats{Model: stubModel, Duration: time.Microsecond}, nil
}

// UnavailableGenerator fails every request with ErrAINotConfigured. It keeps
// the storefront serving when no backend credentials are present.
type UnavailableGenerator struct{}

func (UnavailableGenerator) Generate(ctx context.Context, prompt Prompt) (string, UsageStats, error) {
	return "", UsageStats{}, ErrAINotConfigured
}
