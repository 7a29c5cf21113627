package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/prompts"

	"gamestore/gamebot/internal/domain/listing"
	"gamestore/gamebot/internal/infra/llm"
)

const storeTemplate = `
You are a chatbot for an ecommerce website that sells games. You must answer questions based on the data provided below only. Provide detailed information about games, their genres, account levels, prices, and whether the price is debatable.

Data:
{{.data}}

Here is the conversation history: {{.context}}

Question: {{.question}}

Answer:
`

const catalogTemplate = `
You answer questions about game accounts for sale. Use only the listings below. If the answer is not in the listings, say that you don't know. Answer in 1-3 short sentences.

Listings:
{{.data}}

Question: {{.question}}

Answer:
`

// Chain is prompt | model.
type Chain struct {
	Prompt prompts.PromptTemplate
	Model  llm.Generator
}

func NewStoreChain(model llm.Generator) *Chain {
	return &Chain{
		Prompt: prompts.NewPromptTemplate(storeTemplate, []string{"data", "context", "question"}),
		Model:  model,
	}
}

func NewCatalogChain(model llm.Generator) *Chain {
	return &Chain{
		Prompt: prompts.NewPromptTemplate(catalogTemplate, []string{"data", "question"}),
		Model:  model,
	}
}

func (c *Chain) Invoke(ctx context.Context, values map[string]any) (string, error) {
	if c == nil || c.Model == nil {
		return "", fmt.Errorf("no language model configured")
	}
	prompt, err := c.Prompt.Format(values)
	if err != nil {
		return "", fmt.Errorf("render prompt: %w", err)
	}
	out, err := c.Model.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

const maxPromptRows = 200

func catalogData(rows []listing.Listing) string {
	if len(rows) == 0 {
		return "No listings."
	}
	var b strings.Builder
	for i, l := range rows {
		if i >= maxPromptRows {
			fmt.Fprintf(&b, "... and %d more\n", len(rows)-maxPromptRows)
			break
		}
		b.WriteString("- ")
		b.WriteString(l.Describe())
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
