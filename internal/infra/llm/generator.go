package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Generator turns a fully rendered prompt into model text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Options struct {
	Provider      string
	Timeout       time.Duration
	OllamaURL     string
	OllamaModel   string
	OpenAIBaseURL string
	OpenAIAPIKey  string
	OpenAIModel   string
}

func New(opts Options) (Generator, error) {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	httpClient := &http.Client{Timeout: timeout}

	switch strings.ToLower(strings.TrimSpace(opts.Provider)) {
	case "", "ollama":
		return NewOllama(opts.OllamaURL, opts.OllamaModel, httpClient)
	case "openai":
		return NewOpenAI(opts.OpenAIBaseURL, opts.OpenAIAPIKey, opts.OpenAIModel, httpClient), nil
	default:
		return nil, fmt.Errorf("llm: unknown provider %q", opts.Provider)
	}
}
