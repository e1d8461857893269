package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/HammerMeetNail/bloomnext/internal/logging"
	"github.com/HammerMeetNail/bloomnext/internal/services/ai"
)

const recommendationUnavailable = "Sorry, we couldn't generate a recommendation at this time. Please try again."

// Recommender produces a flower recommendation for a validated request.
type Recommender interface {
	Recommend(ctx context.Context, req ai.RecommendationRequest) (*ai.RecommendationResult, error)
}

type RecommendationHandler struct {
	recommender Recommender
}

func NewRecommendationHandler(recommender Recommender) *RecommendationHandler {
	return &RecommendationHandler{recommender: recommender}
}

func (h *RecommendationHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req ai.RecommendationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.recommender.Recommend(r.Context(), req)
	if err != nil {
		var validationErr *ai.ValidationError
		var generationErr *ai.GenerationError

		status := http.StatusInternalServerError
		msg := "An unexpected error occurred."

		switch {
		case errors.As(err, &validationErr):
			status = http.StatusBadRequest
			msg = validationErr.Message
		case errors.As(err, &generationErr):
			status = http.StatusServiceUnavailable
			msg = recommendationUnavailable
			logging.FromContext(r.Context()).Warn("Recommendation unavailable", map[string]interface{}{
				"reason": generationErr.Reason,
			})
		default:
			logging.FromContext(r.Context()).Error("Recommendation failed", map[string]interface{}{
				"error": err.Error(),
			})
		}

		writeError(w, status, msg)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
