// Package assistant answers one question at a time: hand-written filters
// first, the language model only when no filter applies.
package assistant

import (
	"context"
	"errors"

	"gamestore/gamebot/internal/domain/intent"
	"gamestore/gamebot/internal/domain/listing"
)

var ErrEmptyQuestion = errors.New("question is required")

const (
	SourceFilter = "filter"
	SourceModel  = "model"
)

type Question struct {
	Text string
	// Context is whatever history the caller keeps; it only reaches the prompt.
	Context string
}

type Reply struct {
	Text     string            `json:"response"`
	Listings []listing.Listing `json:"listings,omitempty"`
	Query    *intent.Query     `json:"query,omitempty"`
	Source   string            `json:"source"`
}

type Router interface {
	Answer(ctx context.Context, q Question) (Reply, error)
}
