package session

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.StartSession)
	r.Get("/{id}", h.GetSession)
	r.Delete("/{id}", h.AbandonSession)
	r.Post("/{id}/select", h.SelectAnswer)
	r.Post("/{id}/check", h.CheckAnswer)
	r.Post("/{id}/review", h.MarkForReview)
	r.Post("/{id}/next", h.NextQuestion)
	r.Post("/{id}/previous", h.PreviousQuestion)
	r.Post("/{id}/goto", h.GoToQuestion)
	r.Post("/{id}/finish", h.FinishSession)
	return r
}
