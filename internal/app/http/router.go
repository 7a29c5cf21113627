package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"gamestore/gamebot/internal/app/config"
	"gamestore/gamebot/internal/app/http/handlers"
	"gamestore/gamebot/internal/app/http/middleware"
	"gamestore/gamebot/internal/domain/listing"
	"gamestore/gamebot/internal/infra/llm"
)

func NewRouter(cfg config.Config, catalog *listing.Catalog, model llm.Generator, reload handlers.ReloadFunc) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSAllowOrigin))

	h := handlers.New(cfg, catalog, model, reload)

	r.Get("/", h.Index)
	r.Handle("/static/*", h.Static())
	r.Get("/health", h.Health)
	r.Post("/chat", h.Chat)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/chat", h.ChatV1)
		r.Get("/listings", h.ListListings)
		r.Post("/query", h.QueryListings)
		r.Post("/pricelist", h.CreatePriceList)

		r.Group(func(r chi.Router) {
			r.Use(middleware.InternalAuth(cfg.InternalToken))

			r.Post("/listings/reload", h.ReloadListings)
		})
	})

	return r
}
