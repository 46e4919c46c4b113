package results

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/{id}", h.GetResults)
	r.Get("/{id}/export", h.ExportReview)
	return r
}
