package chat

import "makers-assistant/internal/catalog"

// Response is one bot reply: the rendered message, optional suggested
// follow-up phrases and the products the reply refers to. Responses are
// built per exchange and never stored.
type Response struct {
	Message          string            `json:"message"`
	SuggestedActions []string          `json:"suggestedActions,omitempty"`
	Products         []catalog.Product `json:"products,omitempty"`
}
