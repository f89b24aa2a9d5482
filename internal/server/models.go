package server

import (
	"makers-assistant/internal/catalog"
	"makers-assistant/internal/recommend"
)

// ChatRequest is the body of POST /api/v1/chat.
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatResponse wraps the engine's reply with the classification outcome
// and a per-exchange id.
type ChatResponse struct {
	ID               string            `json:"id"`
	Message          string            `json:"message"`
	SuggestedActions []string          `json:"suggestedActions,omitempty"`
	Products         []catalog.Product `json:"products,omitempty"`
	Intent           string            `json:"intent"`
	Confidence       float64           `json:"confidence"`
}

// RecommendationRequest is the body of POST /api/v1/recommendations.
type RecommendationRequest struct {
	Budget   float64 `json:"budget"`
	Category string  `json:"category"`
	Brand    string  `json:"brand"`
	Usage    string  `json:"usage"`
}

// RecommendationResponse carries the three ranked tiers.
type RecommendationResponse struct {
	HighlyRecommended []recommend.ScoredProduct `json:"highlyRecommended"`
	Recommended       []recommend.ScoredProduct `json:"recommended"`
	NotRecommended    []recommend.ScoredProduct `json:"notRecommended"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
