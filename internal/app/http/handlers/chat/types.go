package chat

import (
	"gamestore/gamebot/internal/domain/intent"
	"gamestore/gamebot/internal/domain/listing"
)

type ChatRequest struct {
	Question string `json:"question"`
	Context  string `json:"context"`
}

// ChatResponse is what the chat page reads: only Response.
type ChatResponse struct {
	Response string `json:"response"`
}

type DetailedResponse struct {
	Response  string            `json:"response"`
	RequestID string            `json:"request_id"`
	Kind      intent.Kind       `json:"kind,omitempty"`
	Source    string            `json:"source"`
	Listings  []listing.Listing `json:"listings,omitempty"`
}
