package repl

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamestore/gamebot/internal/domain/assistant"
)

type scripted struct {
	questions []assistant.Question
	fail      map[string]bool
}

func (s *scripted) Answer(_ context.Context, q assistant.Question) (assistant.Reply, error) {
	s.questions = append(s.questions, q)
	if s.fail[q.Text] {
		return assistant.Reply{}, errors.New("model unavailable")
	}
	return assistant.Reply{Text: "echo " + q.Text}, nil
}

func TestRunUntilExit(t *testing.T) {
	router := &scripted{}
	var out bytes.Buffer

	err := Run(context.Background(), strings.NewReader("rpg games\n\nunder $20\nexit\nnever asked\n"), &out, router)
	require.NoError(t, err)

	require.Len(t, router.questions, 2)
	assert.Equal(t, "under $20", router.questions[1].Text)
	assert.Empty(t, router.questions[1].Context)

	s := out.String()
	assert.Contains(t, s, "Bot: echo rpg games\n")
	assert.Contains(t, s, "Bot: echo under $20\n")
	assert.True(t, strings.HasSuffix(s, "Bot: "+Farewell+"\n"))
	assert.NotContains(t, s, "never asked")
}

func TestRunStopsAtEOF(t *testing.T) {
	var out bytes.Buffer
	err := Run(context.Background(), strings.NewReader("hello"), &out, &scripted{})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Bot: echo hello\n")
	assert.True(t, strings.HasSuffix(out.String(), Farewell+"\n"))
}

func TestRunApologisesOnFailure(t *testing.T) {
	router := &scripted{fail: map[string]bool{"best game?": true}}
	var out bytes.Buffer

	err := Run(context.Background(), strings.NewReader("best game?\nBye!\n"), &out, router)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Bot: "+Apology+"\n")
}
