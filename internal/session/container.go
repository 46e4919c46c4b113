package session

import (
	"time"

	"github.com/saulo-duarte/lifeinuk-quiz/internal/dataset"
	"github.com/saulo-duarte/lifeinuk-quiz/internal/progress"
	"github.com/saulo-duarte/lifeinuk-quiz/internal/quiz"
	"github.com/saulo-duarte/lifeinuk-quiz/internal/results"
)

type SessionContainer struct {
	Service Service
	Handler *Handler
}

func NewSessionContainer(source dataset.Source, progressService progress.Service, resultsService results.Service) *SessionContainer {
	loader := quiz.NewLoader(source)
	builder := quiz.NewBuilder(quiz.NewRand())
	service := NewService(loader, builder, progressService, resultsService, time.Second)
	handler := NewHandler(service)

	return &SessionContainer{
		Service: service,
		Handler: handler,
	}
}
