package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/saulo-duarte/lifeinuk-quiz/internal/config"
	"github.com/saulo-duarte/lifeinuk-quiz/internal/quiz"
	"github.com/saulo-duarte/lifeinuk-quiz/internal/storage"
	"github.com/sirupsen/logrus"
)

// Service mirrors practice sessions to durable storage. Restore and Save never
// fail; storage problems are logged and otherwise ignored.
type Service interface {
	Restore(ctx context.Context, s quiz.State) quiz.State
	Save(ctx context.Context, s quiz.State)
	ClearProgress(ctx context.Context) error
	ClearReviewed(ctx context.Context) error
	ShuffleQuestions(ctx context.Context) (bool, error)
	SetShuffleQuestions(ctx context.Context, shuffle bool) error
}

type service struct {
	store storage.Store
}

func NewService(store storage.Store) Service {
	return &service{store: store}
}

func (s *service) Restore(ctx context.Context, state quiz.State) quiz.State {
	log := config.WithContext(ctx)
	if len(state.Questions) == 0 {
		return state
	}

	restored := state.Clone()
	indexByKey := make(map[string]int, len(state.Questions))
	for i, q := range state.Questions {
		indexByKey[q.Key().String()] = i
	}

	var reviewedKeys []string
	if ok, err := s.read(ctx, ReviewedKey, &reviewedKeys); err != nil {
		log.WithError(err).Warn("Erro ao carregar questões marcadas para revisão")
	} else if ok {
		restored.Reviewed = map[int]struct{}{}
		for _, key := range reviewedKeys {
			if i, found := lookup(indexByKey, key); found {
				restored.Reviewed[i] = struct{}{}
			}
		}
	}

	var record Record
	if ok, err := s.read(ctx, ProgressKey, &record); err != nil {
		log.WithError(err).Warn("Erro ao carregar progresso da prática")
	} else if ok {
		restored.Selected = map[int][]int{}
		for key, selected := range record.SelectedAnswers {
			if i, found := lookup(indexByKey, key); found {
				restored.Selected[i] = append([]int{}, selected...)
			}
		}
		restored.Statuses = map[int]quiz.Status{}
		for key, status := range record.QuestionStatuses {
			if i, found := lookup(indexByKey, key); found && status.Scored() {
				restored.Statuses[i] = status
			}
		}

		restored.CurrentIndex = min(max(record.CurrentIndex, 0), len(state.Questions)-1)
		restored.ShowResult = restored.Statuses[restored.CurrentIndex].Scored()
	}

	log.WithFields(logrus.Fields{
		"reviewed": len(restored.Reviewed),
		"answered": restored.AnsweredCount(),
		"index":    restored.CurrentIndex,
	}).Debug("Progresso da prática restaurado")
	return restored
}

func (s *service) Save(ctx context.Context, state quiz.State) {
	log := config.WithContext(ctx)

	reviewedKeys := []string{}
	for _, i := range state.ReviewedIndices() {
		if i >= 0 && i < len(state.Questions) {
			reviewedKeys = append(reviewedKeys, state.Questions[i].Key().String())
		}
	}
	if err := s.write(ctx, ReviewedKey, reviewedKeys); err != nil {
		log.WithError(err).Error("Erro ao salvar questões marcadas para revisão")
	}

	record := Record{
		SelectedAnswers:  map[string][]int{},
		QuestionStatuses: map[string]quiz.Status{},
		CurrentIndex:     state.CurrentIndex,
	}
	for i, selected := range state.Selected {
		if i >= 0 && i < len(state.Questions) {
			record.SelectedAnswers[state.Questions[i].Key().String()] = selected
		}
	}
	for i, status := range state.Statuses {
		if i >= 0 && i < len(state.Questions) {
			record.QuestionStatuses[state.Questions[i].Key().String()] = status
		}
	}
	if err := s.write(ctx, ProgressKey, record); err != nil {
		log.WithError(err).Error("Erro ao salvar progresso da prática")
	}
}

func (s *service) ClearProgress(ctx context.Context) error {
	if err := s.store.Remove(ctx, ProgressKey); err != nil {
		return fmt.Errorf("clear progress: %w", err)
	}
	config.WithContext(ctx).Info("Progresso da prática removido")
	return nil
}

func (s *service) ClearReviewed(ctx context.Context) error {
	if err := s.store.Remove(ctx, ReviewedKey); err != nil {
		return fmt.Errorf("clear reviewed questions: %w", err)
	}
	config.WithContext(ctx).Info("Marcações de revisão removidas")
	return nil
}

// ShuffleQuestions defaults to false when nothing is stored.
func (s *service) ShuffleQuestions(ctx context.Context) (bool, error) {
	value, ok, err := s.store.Get(ctx, ShuffleKey)
	if err != nil {
		return false, fmt.Errorf("read shuffle setting: %w", err)
	}
	return ok && value == "true", nil
}

func (s *service) SetShuffleQuestions(ctx context.Context, shuffle bool) error {
	if err := s.store.Set(ctx, ShuffleKey, strconv.FormatBool(shuffle)); err != nil {
		return fmt.Errorf("save shuffle setting: %w", err)
	}
	return nil
}

func (s *service) read(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, ok, err := s.store.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (s *service) write(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, key, string(raw))
}

// lookup resolves a stored key to a session index. Malformed keys are skipped.
func lookup(indexByKey map[string]int, raw string) (int, bool) {
	key, err := quiz.ParseKey(raw)
	if err != nil {
		return 0, false
	}
	i, ok := indexByKey[key.String()]
	return i, ok
}
