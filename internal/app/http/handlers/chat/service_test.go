package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamestore/gamebot/internal/domain/assistant"
	"gamestore/gamebot/internal/domain/intent"
	"gamestore/gamebot/internal/domain/listing"
)

type stubRouter struct {
	got   assistant.Question
	reply assistant.Reply
	err   error
}

func (s *stubRouter) Answer(_ context.Context, q assistant.Question) (assistant.Reply, error) {
	s.got = q
	return s.reply, s.err
}

func post(h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body)))
	return rec
}

func TestHandle(t *testing.T) {
	router := &stubRouter{reply: assistant.Reply{Text: "We have 2 RPG games.", Source: assistant.SourceFilter}}
	s := New(router, 0)

	rec := post(s.Handle, `{"question":" rpg games ","context":"Bot: hi"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"response":"We have 2 RPG games."}`, rec.Body.String())
	assert.Equal(t, "rpg games", router.got.Text)
	assert.Equal(t, "Bot: hi", router.got.Context)
}

func TestHandleRejectsBadInput(t *testing.T) {
	s := New(&stubRouter{}, 0)

	assert.Equal(t, http.StatusBadRequest, post(s.Handle, `{`).Code)
	assert.Equal(t, http.StatusBadRequest, post(s.Handle, `{"question":"   "}`).Code)
}

func TestHandleModelFailure(t *testing.T) {
	s := New(&stubRouter{err: errors.New("ollama: connection refused")}, 0)

	rec := post(s.Handle, `{"question":"what is the best game?"}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "generation failed\n", rec.Body.String())
}

func TestHandleDetailed(t *testing.T) {
	q := intent.Query{Kind: intent.KindGenre, Genre: "RPG"}
	router := &stubRouter{reply: assistant.Reply{
		Text:     "Here are the games available in the Rpg genre:",
		Listings: []listing.Listing{{Name: "Elden Ring", Genre: "RPG", Price: 45}},
		Query:    &q,
		Source:   assistant.SourceFilter,
	}}

	rec := post(New(router, 0).HandleDetailed, `{"question":"rpg games"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp DetailedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, intent.KindGenre, resp.Kind)
	assert.Equal(t, assistant.SourceFilter, resp.Source)
	assert.NotEmpty(t, resp.RequestID)
	require.Len(t, resp.Listings, 1)
	assert.Equal(t, "Elden Ring", resp.Listings[0].Name)
}

func TestTail(t *testing.T) {
	assert.Equal(t, "short", tail("  short ", 100))
	assert.Equal(t, "line3", tail("line1\nline2\nline3", 8))

	// "é" is two bytes; a cut inside it must not leak half a rune.
	got := tail("ééé", 3)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, "é", got)
}
