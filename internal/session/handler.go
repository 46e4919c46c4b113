package session

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/saulo-duarte/lifeinuk-quiz/internal/config"
	"github.com/saulo-duarte/lifeinuk-quiz/internal/quiz"
)

type Handler struct {
	service  Service
	validate *validator.Validate
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s, validate: validator.New()}
}

// StartSession godoc
// @Summary Start a quiz session
// @Tags sessions
// @Accept json
// @Produce json
// @Param body body StartSessionDTO true "session config"
// @Success 201 {object} SessionResponse
// @Failure 422 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /sessions [post]
func (h *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto StartSessionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Warn("Corpo da requisição inválido para iniciar sessão")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(dto); err != nil {
		config.Error(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	resp, err := h.service.Start(r.Context(), dto)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	config.JSON(w, http.StatusCreated, resp)
}

// GetSession godoc
// @Summary Current view of a session
// @Tags sessions
// @Produce json
// @Param id path string true "session id"
// @Success 200 {object} SessionResponse
// @Failure 404 {object} map[string]string
// @Router /sessions/{id} [get]
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, resp)
}

// SelectAnswer godoc
// @Summary Select or toggle an answer on the current question
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "session id"
// @Param body body SelectAnswerDTO true "answer"
// @Success 200 {object} SessionResponse
// @Failure 422 {object} map[string]string
// @Router /sessions/{id}/select [post]
func (h *Handler) SelectAnswer(w http.ResponseWriter, r *http.Request) {
	var dto SelectAnswerDTO
	if !h.decode(w, r, &dto) {
		return
	}
	h.dispatch(w, r, quiz.SelectAnswer{AnswerNumber: *dto.AnswerNumber})
}

// CheckAnswer godoc
// @Summary Check the current selection
// @Tags sessions
// @Produce json
// @Param id path string true "session id"
// @Success 200 {object} SessionResponse
// @Failure 422 {object} map[string]string
// @Router /sessions/{id}/check [post]
func (h *Handler) CheckAnswer(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, r, quiz.CheckAnswer{})
}

// MarkForReview godoc
// @Summary Toggle the review marker of the current question
// @Tags sessions
// @Produce json
// @Param id path string true "session id"
// @Success 200 {object} SessionResponse
// @Router /sessions/{id}/review [post]
func (h *Handler) MarkForReview(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, r, quiz.MarkForReview{})
}

// NextQuestion godoc
// @Summary Move to the next question
// @Tags sessions
// @Produce json
// @Param id path string true "session id"
// @Success 200 {object} SessionResponse
// @Router /sessions/{id}/next [post]
func (h *Handler) NextQuestion(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, r, quiz.NextQuestion{})
}

// PreviousQuestion godoc
// @Summary Move to the previous question
// @Tags sessions
// @Produce json
// @Param id path string true "session id"
// @Success 200 {object} SessionResponse
// @Router /sessions/{id}/previous [post]
func (h *Handler) PreviousQuestion(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, r, quiz.PreviousQuestion{})
}

// GoToQuestion godoc
// @Summary Jump to a question by index
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "session id"
// @Param body body GoToQuestionDTO true "index"
// @Success 200 {object} SessionResponse
// @Router /sessions/{id}/goto [post]
func (h *Handler) GoToQuestion(w http.ResponseWriter, r *http.Request) {
	var dto GoToQuestionDTO
	if !h.decode(w, r, &dto) {
		return
	}
	h.dispatch(w, r, quiz.GoToQuestion{Index: *dto.Index})
}

// FinishSession godoc
// @Summary Finish a session and store its results
// @Tags sessions
// @Produce json
// @Param id path string true "session id"
// @Success 200 {object} FinishResponse
// @Failure 404 {object} map[string]string
// @Router /sessions/{id}/finish [post]
func (h *Handler) FinishSession(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Finish(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, resp)
}

// AbandonSession godoc
// @Summary Abandon a session
// @Tags sessions
// @Param id path string true "session id"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /sessions/{id} [delete]
func (h *Handler) AbandonSession(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Abandon(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListExams godoc
// @Summary Exam numbers available for individual practice
// @Tags exams
// @Produce json
// @Success 200 {object} ExamsResponse
// @Failure 502 {object} map[string]string
// @Router /exams [get]
func (h *Handler) ListExams(w http.ResponseWriter, r *http.Request) {
	exams, err := h.service.ListExams(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, ExamsResponse{Exams: exams})
}

func (h *Handler) dispatch(w http.ResponseWriter, r *http.Request, action quiz.Action) {
	resp, err := h.service.Dispatch(r.Context(), chi.URLParam(r, "id"), action)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dto interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dto); err != nil {
		config.WithContext(r.Context()).WithError(err).Warn("Corpo da requisição inválido")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := h.validate.Struct(dto); err != nil {
		config.Error(w, http.StatusUnprocessableEntity, err.Error())
		return false
	}
	return true
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		config.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, quiz.ErrNoSelection),
		errors.Is(err, quiz.ErrUnknownAnswer),
		errors.Is(err, ErrExamRequired),
		errors.Is(err, ErrInvalidMode):
		config.Error(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, quiz.ErrNoQuestions),
		errors.Is(err, quiz.ErrLoadFailed):
		config.Error(w, http.StatusBadGateway, err.Error())
	default:
		config.WithContext(r.Context()).WithError(err).Error("Erro inesperado na sessão")
		config.Error(w, http.StatusInternalServerError, "internal server error")
	}
}
