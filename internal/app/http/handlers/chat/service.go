package chat

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"gamestore/gamebot/internal/domain/assistant"
)

const maxContextLen = 8000

type Service struct {
	Router  assistant.Router
	Timeout time.Duration
}

func New(router assistant.Router, timeout time.Duration) *Service {
	return &Service{Router: router, Timeout: timeout}
}

// Handle serves the chat page contract: {"question","context"} in,
// {"response"} out.
func (s *Service) Handle(w http.ResponseWriter, r *http.Request) {
	reply, _, ok := s.answer(w, r)
	if !ok {
		return
	}
	writeJSON(w, ChatResponse{Response: reply.Text})
}

func (s *Service) HandleDetailed(w http.ResponseWriter, r *http.Request) {
	reply, reqID, ok := s.answer(w, r)
	if !ok {
		return
	}
	resp := DetailedResponse{
		Response:  reply.Text,
		RequestID: reqID,
		Source:    reply.Source,
		Listings:  reply.Listings,
	}
	if reply.Query != nil {
		resp.Kind = reply.Query.Kind
	}
	writeJSON(w, resp)
}

func (s *Service) answer(w http.ResponseWriter, r *http.Request) (assistant.Reply, string, bool) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("chat req=unknown bad request: %v", err)
		http.Error(w, "bad request", http.StatusBadRequest)
		return assistant.Reply{}, "", false
	}

	reqID := uuid.NewString()
	question := strings.TrimSpace(req.Question)
	if question == "" {
		log.Printf("chat req=%s empty question", reqID)
		http.Error(w, "question is required", http.StatusBadRequest)
		return assistant.Reply{}, "", false
	}
	log.Printf("chat req=%s start question_len=%d context_len=%d", reqID, len(question), len(req.Context))

	ctx := r.Context()
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	start := time.Now()
	reply, err := s.Router.Answer(ctx, assistant.Question{
		Text:    question,
		Context: tail(req.Context, maxContextLen),
	})
	if err != nil {
		if errors.Is(err, assistant.ErrEmptyQuestion) {
			http.Error(w, "question is required", http.StatusBadRequest)
			return assistant.Reply{}, "", false
		}
		log.Printf("chat req=%s generation failed: %v", reqID, err)
		http.Error(w, "generation failed", http.StatusBadGateway)
		return assistant.Reply{}, "", false
	}
	log.Printf("chat req=%s ok source=%s rows=%d answer_len=%d took=%s",
		reqID, reply.Source, len(reply.Listings), len(reply.Text), time.Since(start))
	return reply, reqID, true
}

// tail keeps the most recent part of the page transcript.
func tail(s string, max int) string {
	s = strings.TrimSpace(s)
	if len(s) <= max {
		return s
	}
	start := len(s) - max
	for start < len(s) && !utf8.RuneStart(s[start]) {
		start++
	}
	s = s[start:]
	if i := strings.IndexByte(s, '\n'); i >= 0 && i < len(s)-1 {
		s = s[i+1:]
	}
	return s
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
