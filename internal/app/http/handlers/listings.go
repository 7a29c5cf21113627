package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"gamestore/gamebot/internal/domain/listing"
)

type ListingsResponse struct {
	Genres   []string          `json:"genres"`
	Count    int               `json:"count"`
	Listings []listing.Listing `json:"listings"`
}

func (h *Handlers) ListListings(w http.ResponseWriter, r *http.Request) {
	rows := h.Catalog.All()
	if genre := strings.TrimSpace(r.URL.Query().Get("genre")); genre != "" {
		rows = h.Catalog.ByGenre(genre)
	}
	if rows == nil {
		rows = []listing.Listing{}
	}
	writeJSON(w, http.StatusOK, ListingsResponse{
		Genres:   h.Catalog.Genres(),
		Count:    len(rows),
		Listings: rows,
	})
}

func (h *Handlers) ReloadListings(w http.ResponseWriter, r *http.Request) {
	if h.Reload == nil {
		http.Error(w, "reload not configured", http.StatusNotImplemented)
		return
	}
	start := time.Now()
	rows, err := h.Reload(r.Context())
	if err != nil {
		log.Printf("listings: reload failed: %v", err)
		http.Error(w, "reload failed", http.StatusBadGateway)
		return
	}
	h.Catalog.Replace(rows)
	log.Printf("listings: reloaded rows=%d source=%s took=%s", len(rows), h.Cfg.DatasetSource, time.Since(start))
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"count":  len(rows),
		"genres": h.Catalog.Genres(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
