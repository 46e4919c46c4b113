package progress

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/saulo-duarte/lifeinuk-quiz/internal/config"
)

type Handler struct {
	service  Service
	validate *validator.Validate
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s, validate: validator.New()}
}

// ClearProgress godoc
// @Summary Clear saved practice progress
// @Tags progress
// @Success 204
// @Router /progress [delete]
func (h *Handler) ClearProgress(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if err := h.service.ClearProgress(r.Context()); err != nil {
		log.WithError(err).Error("Erro ao limpar progresso")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ClearReviewed godoc
// @Summary Clear review markers
// @Tags progress
// @Success 204
// @Router /progress/reviewed [delete]
func (h *Handler) ClearReviewed(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if err := h.service.ClearReviewed(r.Context()); err != nil {
		log.WithError(err).Error("Erro ao limpar marcações de revisão")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetSettings godoc
// @Summary Practice settings
// @Tags settings
// @Produce json
// @Success 200 {object} SettingsResponse
// @Router /settings [get]
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	shuffle, err := h.service.ShuffleQuestions(r.Context())
	if err != nil {
		log.WithError(err).Error("Erro ao carregar configurações")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}
	config.JSON(w, http.StatusOK, SettingsResponse{ShuffleQuestions: shuffle})
}

// UpdateSettings godoc
// @Summary Update practice settings
// @Tags settings
// @Accept json
// @Produce json
// @Param body body SettingsDTO true "settings"
// @Success 200 {object} SettingsResponse
// @Failure 422 {object} map[string]string
// @Router /settings [put]
func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto SettingsDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Warn("Corpo da requisição inválido para configurações")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(dto); err != nil {
		config.Error(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := h.service.SetShuffleQuestions(r.Context(), *dto.ShuffleQuestions); err != nil {
		log.WithError(err).Error("Erro ao salvar configurações")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}
	config.JSON(w, http.StatusOK, SettingsResponse{ShuffleQuestions: *dto.ShuffleQuestions})
}
