package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	ollama "github.com/ollama/ollama/api"
)

type Ollama struct {
	client *ollama.Client
	model  string
}

func NewOllama(baseURL, model string, httpClient *http.Client) (*Ollama, error) {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = "http://127.0.0.1:11434"
	}
	if strings.TrimSpace(model) == "" {
		model = "llama3"
	}
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("ollama url: %w", err)
	}
	return &Ollama{client: ollama.NewClient(u, httpClient), model: model}, nil
}

func (o *Ollama) Generate(ctx context.Context, prompt string) (string, error) {
	stream := false
	req := &ollama.GenerateRequest{
		Model:  o.model,
		Prompt: prompt,
		Stream: &stream,
	}
	var b strings.Builder
	err := o.client.Generate(ctx, req, func(resp ollama.GenerateResponse) error {
		b.WriteString(resp.Response)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("ollama generate model=%s: %w", o.model, err)
	}
	out := strings.TrimSpace(b.String())
	if out == "" {
		return "", errors.New("empty ollama response")
	}
	return out, nil
}
