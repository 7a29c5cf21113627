package app

import (
	"context"
	"io"
	"log"
	"net/http"
	"time"

	"gamestore/gamebot/internal/app/config"
	apphttp "gamestore/gamebot/internal/app/http"
	"gamestore/gamebot/internal/app/repl"
	"gamestore/gamebot/internal/domain/assistant"
	"gamestore/gamebot/internal/infra/llm"
)

func newModel(cfg config.Config) (llm.Generator, error) {
	return llm.New(llm.Options{
		Provider:      cfg.LLMProvider,
		Timeout:       cfg.LLMTimeout,
		OllamaURL:     cfg.OllamaURL,
		OllamaModel:   cfg.OllamaModel,
		OpenAIBaseURL: cfg.OpenAIBaseURL,
		OpenAIAPIKey:  cfg.OpenAIAPIKey,
		OpenAIModel:   cfg.OpenAIModel,
	})
}

// Run serves the web chat until the listener fails.
func Run(cfg config.Config) error {
	ctx := context.Background()

	catalog, ds, err := loadCatalog(ctx, cfg)
	if err != nil {
		return err
	}
	defer ds.close()

	model, err := newModel(cfg)
	if err != nil {
		return err
	}

	router := apphttp.NewRouter(cfg, catalog, model, ds.load)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("listening on %s router=%s llm=%s", cfg.HTTPAddr, cfg.WebRouter, cfg.LLMProvider)
	return srv.ListenAndServe()
}

func queryRouter(ctx context.Context, cfg config.Config) (*assistant.QueryRouter, func(), error) {
	catalog, ds, err := loadCatalog(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	model, err := newModel(cfg)
	if err != nil {
		ds.close()
		return nil, nil, err
	}
	return assistant.NewQueryRouter(catalog, assistant.NewCatalogChain(model)), ds.close, nil
}

// Chat runs the terminal loop with the full parser set in front of the model.
func Chat(ctx context.Context, cfg config.Config, in io.Reader, out io.Writer) error {
	router, closeFn, err := queryRouter(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeFn()
	return repl.Run(ctx, in, out, router)
}

// Ask answers a single question the way Chat would.
func Ask(ctx context.Context, cfg config.Config, question string) (assistant.Reply, error) {
	router, closeFn, err := queryRouter(ctx, cfg)
	if err != nil {
		return assistant.Reply{}, err
	}
	defer closeFn()
	return router.Answer(ctx, assistant.Question{Text: question})
}
