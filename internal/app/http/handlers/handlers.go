package handlers

import (
	"context"

	"gamestore/gamebot/internal/app/config"
	"gamestore/gamebot/internal/app/http/handlers/chat"
	"gamestore/gamebot/internal/domain/assistant"
	"gamestore/gamebot/internal/domain/listing"
	"gamestore/gamebot/internal/domain/pricelist/pdf"
	pdfgen "gamestore/gamebot/internal/domain/pricelist/pdf/gofpdf"
	"gamestore/gamebot/internal/infra/llm"
)

// ReloadFunc re-reads the listing table from its configured source.
type ReloadFunc func(ctx context.Context) ([]listing.Listing, error)

type Handlers struct {
	Catalog     *listing.Catalog
	Cfg         config.Config
	ChatService *chat.Service
	Query       *assistant.QueryRouter
	PDF         pdf.Generator
	Reload      ReloadFunc
}

func New(cfg config.Config, catalog *listing.Catalog, model llm.Generator, reload ReloadFunc) *Handlers {
	query := assistant.NewQueryRouter(catalog, assistant.NewCatalogChain(model))

	var web assistant.Router = assistant.NewGenreRouter(catalog, assistant.NewStoreChain(model))
	if cfg.WebRouter == "query" {
		web = query
	}

	return &Handlers{
		Catalog:     catalog,
		Cfg:         cfg,
		ChatService: chat.New(web, cfg.LLMTimeout),
		Query:       query,
		PDF:         pdfgen.New(),
		Reload:      reload,
	}
}
