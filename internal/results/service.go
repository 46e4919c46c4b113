package results

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/lifeinuk-quiz/internal/config"
	"github.com/saulo-duarte/lifeinuk-quiz/internal/quiz"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

var (
	ErrNotFound  = errors.New("results not found")
	ErrInvalidID = errors.New("invalid results id")
)

type Service interface {
	Store(ctx context.Context, mode quiz.Mode, examNumber int, outcome quiz.Outcome) (uuid.UUID, error)
	Take(ctx context.Context, id string) (*ResultsResponse, error)
	ExportReview(ctx context.Context, id string, w io.Writer) error
	PurgeExpired(ctx context.Context) (int64, error)
}

type service struct {
	repo Repository
	ttl  time.Duration
}

func NewService(repo Repository, ttl time.Duration) Service {
	return &service{repo: repo, ttl: ttl}
}

func (s *service) Store(ctx context.Context, mode quiz.Mode, examNumber int, outcome quiz.Outcome) (uuid.UUID, error) {
	log := config.WithContext(ctx)

	payload, err := json.Marshal(outcome)
	if err != nil {
		return uuid.Nil, fmt.Errorf("encode outcome: %w", err)
	}

	handoff := &Handoff{
		ID:         uuid.New(),
		Mode:       mode,
		ExamNumber: examNumber,
		Payload:    datatypes.JSON(payload),
		ExpiresAt:  time.Now().UTC().Add(s.ttl),
	}
	if err := s.repo.Create(ctx, handoff); err != nil {
		log.WithError(err).Error("Erro ao salvar resultados")
		return uuid.Nil, err
	}

	log.WithFields(logrus.Fields{
		"results_id": handoff.ID.String(),
		"mode":       mode,
		"percentage": outcome.Summary.Percentage,
	}).Info("Resultados salvos com sucesso")
	return handoff.ID, nil
}

func (s *service) Take(ctx context.Context, id string) (*ResultsResponse, error) {
	log := config.WithContext(ctx)

	handoffID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	handoff, err := s.repo.Take(ctx, handoffID, time.Now().UTC())
	if err != nil {
		log.WithError(err).Error("Erro ao buscar resultados")
		return nil, err
	}
	if handoff == nil {
		return nil, ErrNotFound
	}

	outcome, err := decode(handoff)
	if err != nil {
		log.WithError(err).Error("Erro ao decodificar resultados")
		return nil, err
	}

	return &ResultsResponse{
		ID:         handoff.ID,
		Mode:       handoff.Mode,
		ExamNumber: handoff.ExamNumber,
		Results:    outcome.Results,
		Summary:    outcome.Summary,
		CreatedAt:  handoff.CreatedAt,
	}, nil
}

func (s *service) ExportReview(ctx context.Context, id string, w io.Writer) error {
	handoffID, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidID
	}

	handoff, err := s.repo.GetActive(ctx, handoffID, time.Now().UTC())
	if err != nil {
		return err
	}
	if handoff == nil {
		return ErrNotFound
	}

	outcome, err := decode(handoff)
	if err != nil {
		return err
	}
	return WriteReviewCSV(w, outcome.Results)
}

func (s *service) PurgeExpired(ctx context.Context) (int64, error) {
	deleted, err := s.repo.DeleteExpired(ctx, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("delete expired results: %w", err)
	}
	return deleted, nil
}

func decode(h *Handoff) (quiz.Outcome, error) {
	var outcome quiz.Outcome
	if err := json.Unmarshal(h.Payload, &outcome); err != nil {
		return quiz.Outcome{}, fmt.Errorf("decode results %s: %w", h.ID, err)
	}
	return outcome, nil
}
