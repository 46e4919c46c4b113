package results

import (
	"bytes"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/lifeinuk-quiz/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// GetResults godoc
// @Summary Read the results of a finished session (once)
// @Tags results
// @Produce json
// @Param id path string true "results id"
// @Success 200 {object} ResultsResponse
// @Failure 404 {object} map[string]string
// @Router /results/{id} [get]
func (h *Handler) GetResults(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	id := chi.URLParam(r, "id")

	res, err := h.service.Take(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidID) {
			log.WithField("results_id", id).Warn("Resultados não encontrados")
			config.Error(w, http.StatusNotFound, ErrNotFound.Error())
			return
		}
		log.WithError(err).Error("Erro ao buscar resultados")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, res)
}

// ExportReview godoc
// @Summary Download incorrect and reviewed answers as CSV
// @Tags results
// @Produce text/csv
// @Param id path string true "results id"
// @Success 200 {string} string
// @Failure 404 {object} map[string]string
// @Router /results/{id}/export [get]
func (h *Handler) ExportReview(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	id := chi.URLParam(r, "id")

	var buf bytes.Buffer
	if err := h.service.ExportReview(r.Context(), id, &buf); err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidID) {
			config.Error(w, http.StatusNotFound, ErrNotFound.Error())
			return
		}
		log.WithError(err).Error("Erro ao exportar resultados")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+ExportFileName(time.Now())+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log.WithError(err).Warn("Erro ao enviar exportação")
	}
}
