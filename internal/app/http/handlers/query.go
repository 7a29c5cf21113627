package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"gamestore/gamebot/internal/domain/intent"
	"gamestore/gamebot/internal/domain/listing"
)

type QueryRequest struct {
	Question string `json:"question"`
}

type QueryResponse struct {
	Matched  bool              `json:"matched"`
	Query    *intent.Query     `json:"query,omitempty"`
	Response string            `json:"response,omitempty"`
	Listings []listing.Listing `json:"listings"`
}

// QueryListings runs the question through the hand-written parsers only. Questions
// no parser recognises come back with matched=false instead of a model call.
func (h *Handlers) QueryListings(w http.ResponseWriter, r *http.Request) {
	var req QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	question := strings.TrimSpace(req.Question)
	if question == "" {
		http.Error(w, "question is required", http.StatusBadRequest)
		return
	}

	reply, ok := h.Query.Resolve(question)
	if !ok {
		writeJSON(w, http.StatusOK, QueryResponse{Listings: []listing.Listing{}})
		return
	}
	rows := reply.Listings
	if rows == nil {
		rows = []listing.Listing{}
	}
	writeJSON(w, http.StatusOK, QueryResponse{
		Matched:  true,
		Query:    reply.Query,
		Response: reply.Text,
		Listings: rows,
	})
}
