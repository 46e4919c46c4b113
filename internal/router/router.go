package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/saulo-duarte/lifeinuk-quiz/internal/config"
	_ "github.com/saulo-duarte/lifeinuk-quiz/internal/docs"
	"github.com/saulo-duarte/lifeinuk-quiz/internal/middlewares"
	"github.com/saulo-duarte/lifeinuk-quiz/internal/progress"
	"github.com/saulo-duarte/lifeinuk-quiz/internal/results"
	"github.com/saulo-duarte/lifeinuk-quiz/internal/session"
)

type RouterConfig struct {
	SessionHandler  *session.Handler
	ProgressHandler *progress.Handler
	ResultsHandler  *results.Handler
	AllowedOrigin   string
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.Cors(cfg.AllowedOrigin))

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/exams", cfg.SessionHandler.ListExams)

	r.Mount("/sessions", session.Routes(cfg.SessionHandler))
	r.Mount("/results", results.Routes(cfg.ResultsHandler))
	r.Mount("/progress", progress.Routes(cfg.ProgressHandler))
	r.Mount("/settings", progress.SettingsRoutes(cfg.ProgressHandler))

	return r
}
