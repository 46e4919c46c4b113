package progress

import "github.com/saulo-duarte/lifeinuk-quiz/internal/storage"

type ProgressContainer struct {
	Service Service
	Handler *Handler
}

func NewProgressContainer(store storage.Store) *ProgressContainer {
	service := NewService(store)
	handler := NewHandler(service)

	return &ProgressContainer{
		Service: service,
		Handler: handler,
	}
}
