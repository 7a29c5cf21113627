package handlers

import (
	"net/http"

	"gamestore/gamebot/internal/app/http/web"
)

func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	page, err := web.Index()
	if err != nil {
		http.Error(w, "page not found", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(page)
}

func (h *Handlers) Static() http.Handler {
	return http.StripPrefix("/static/", http.FileServer(web.Static()))
}
