package handlers

import (
	"net/http"
	"strconv"
)

// Health always answers ok; the row count shows whether the table loaded.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("X-Listings-Count", strconv.Itoa(h.Catalog.Len()))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
