package results

import (
	"time"

	"gorm.io/gorm"
)

type ResultsContainer struct {
	Service Service
	Handler *Handler
}

func NewResultsContainer(db *gorm.DB, ttl time.Duration) (*ResultsContainer, error) {
	if err := db.AutoMigrate(&Handoff{}); err != nil {
		return nil, err
	}

	repo := NewRepository(db)
	service := NewService(repo, ttl)
	handler := NewHandler(service)

	return &ResultsContainer{
		Service: service,
		Handler: handler,
	}, nil
}
