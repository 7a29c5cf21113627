package handlers

import "net/http"

func (h *Handlers) Chat(w http.ResponseWriter, r *http.Request) {
	h.ChatService.Handle(w, r)
}

func (h *Handlers) ChatV1(w http.ResponseWriter, r *http.Request) {
	h.ChatService.HandleDetailed(w, r)
}
