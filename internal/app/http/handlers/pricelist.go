package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"gamestore/gamebot/internal/domain/listing"
	"gamestore/gamebot/internal/domain/pricelist"
)

type PriceListRequest struct {
	Question string `json:"question"`
	Genre    string `json:"genre"`
}

func (h *Handlers) CreatePriceList(w http.ResponseWriter, r *http.Request) {
	var req PriceListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	var (
		rows  []listing.Listing
		title string
		query string
	)
	switch {
	case strings.TrimSpace(req.Genre) != "":
		query = strings.TrimSpace(req.Genre)
		rows = h.Catalog.ByGenre(query)
		if len(rows) > 0 {
			title = rows[0].Genre + " games"
		}
	case strings.TrimSpace(req.Question) != "":
		query = strings.TrimSpace(req.Question)
		if reply, ok := h.Query.Resolve(query); ok {
			rows = reply.Listings
		}
		title = "Game accounts"
	default:
		http.Error(w, "question or genre is required", http.StatusBadRequest)
		return
	}
	if len(rows) == 0 {
		http.Error(w, "no matching listings", http.StatusNotFound)
		return
	}

	pdfBytes, err := h.PDF.Generate(pricelist.New(title, query, rows))
	if err != nil {
		log.Printf("pricelist: pdf generation failed: %v", err)
		http.Error(w, "pdf generation failed", http.StatusInternalServerError)
		return
	}
	log.Printf("pricelist: ok rows=%d bytes=%d", len(rows), len(pdfBytes))

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="price-list.pdf"`)
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}
