package ai

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeSuccess      = "success"
	outcomeInvalid      = "invalid_request"
	outcomeTimeout      = "timeout"
	outcomeRefused      = "refused"
	outcomeBackendError = "backend_error"
	outcomeBadReply     = "invalid_reply"
)

var (
	recommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bloomnext_recommendations_total",
			Help: "Total number of recommendation requests by outcome.",
		},
		[]string{"outcome"},
	)
	recommendationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bloomnext_recommendation_duration_seconds",
			Help:    "Histogram of generative backend call durations.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"model"},
	)
	recommendationTokens = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bloomnext_recommendation_tokens_total",
			Help: "Total number of tokens exchanged with the generative backend.",
		},
		[]string{"model", "direction"},
	)
)

func observeUsage(stats UsageStats) {
	if stats.Model == "" {
		return
	}
	recommendationDuration.WithLabelValues(stats.Model).Observe(stats.Duration.Seconds())
	if stats.TokensInput > 0 {
		recommendationTokens.WithLabelValues(stats.Model, "input").Add(float64(stats.TokensInput))
	}
	if stats.TokensOutput > 0 {
		recommendationTokens.WithLabelValues(stats.Model, "output").Add(float64(stats.TokensOutput))
	}
}
