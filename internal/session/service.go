package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/lifeinuk-quiz/internal/config"
	"github.com/saulo-duarte/lifeinuk-quiz/internal/progress"
	"github.com/saulo-duarte/lifeinuk-quiz/internal/quiz"
	"github.com/saulo-duarte/lifeinuk-quiz/internal/results"
	"github.com/sirupsen/logrus"
)

const (
	TestQuestionCount = 24
	TestTimeLimit     = 45 * 60
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrExamRequired    = errors.New("examNumber is required for individual exams")
	ErrInvalidMode     = errors.New("mode must be practice, test or individual")
)

type Service interface {
	Start(ctx context.Context, dto StartSessionDTO) (*SessionResponse, error)
	Get(ctx context.Context, id string) (*SessionResponse, error)
	Dispatch(ctx context.Context, id string, action quiz.Action) (*SessionResponse, error)
	Finish(ctx context.Context, id string) (*FinishResponse, error)
	Abandon(ctx context.Context, id string) error
	ListExams(ctx context.Context) ([]int, error)
	EvictIdle(ctx context.Context, maxIdle time.Duration) int
	Shutdown()
}

type entry struct {
	id     uuid.UUID
	cfg    quiz.Config
	engine *Engine
}

type service struct {
	loader   *quiz.Loader
	builder  *quiz.Builder
	progress progress.Service
	results  results.Service
	interval time.Duration

	mu       sync.RWMutex
	sessions map[uuid.UUID]*entry
}

// NewService keeps live sessions in memory. interval is the countdown step,
// one second outside tests.
func NewService(loader *quiz.Loader, builder *quiz.Builder, progressService progress.Service, resultsService results.Service, interval time.Duration) Service {
	return &service{
		loader:   loader,
		builder:  builder,
		progress: progressService,
		results:  resultsService,
		interval: interval,
		sessions: map[uuid.UUID]*entry{},
	}
}

func (s *service) Start(ctx context.Context, dto StartSessionDTO) (*SessionResponse, error) {
	log := config.WithContext(ctx)

	cfg, err := s.resolveConfig(ctx, dto)
	if err != nil {
		return nil, err
	}

	loaded, err := s.loader.Load(ctx, cfg.ExamNumber)
	if err != nil {
		log.WithError(err).WithField("mode", cfg.Mode).Error("Erro ao carregar questões")
		return nil, err
	}

	state := quiz.NewState(s.builder.Build(loaded, cfg), cfg.TimeLimit)

	var observer Observer
	if cfg.Persistent() {
		state = s.progress.Restore(ctx, state)
		s.progress.Save(ctx, state)
		observer = func(next quiz.State) {
			s.progress.Save(context.Background(), next)
		}
	}

	e := &entry{
		id:     uuid.New(),
		cfg:    cfg,
		engine: NewEngine(cfg.Mode, state, s.interval, observer),
	}
	e.engine.Start()

	s.mu.Lock()
	s.sessions[e.id] = e
	s.mu.Unlock()

	log.WithFields(logrus.Fields{
		"session_id": e.id.String(),
		"mode":       cfg.Mode,
		"exam":       cfg.ExamNumber,
		"questions":  len(state.Questions),
	}).Info("Sessão iniciada com sucesso")

	return toResponse(e.id, cfg, state), nil
}

func (s *service) Get(ctx context.Context, id string) (*SessionResponse, error) {
	e, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	return toResponse(e.id, e.cfg, e.engine.State()), nil
}

func (s *service) Dispatch(ctx context.Context, id string, action quiz.Action) (*SessionResponse, error) {
	e, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	state, err := e.engine.Dispatch(action)
	if err != nil {
		if errors.Is(err, ErrSessionClosed) {
			return nil, ErrSessionNotFound
		}
		config.WithContext(ctx).WithError(err).WithField("session_id", id).Debug("Ação rejeitada")
		return nil, err
	}
	return toResponse(e.id, e.cfg, state), nil
}

func (s *service) Finish(ctx context.Context, id string) (*FinishResponse, error) {
	log := config.WithContext(ctx)

	e, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	var resp *FinishResponse
	err = e.engine.Finish(func(final quiz.State) error {
		outcome := quiz.Compile(final, e.cfg.Mode)
		resultsID, err := s.results.Store(ctx, e.cfg.Mode, e.cfg.ExamNumber, outcome)
		if err != nil {
			return fmt.Errorf("store results: %w", err)
		}
		resp = &FinishResponse{ResultsID: resultsID, Mode: e.cfg.Mode, Summary: outcome.Summary}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSessionClosed) {
			return nil, ErrSessionNotFound
		}
		log.WithError(err).WithField("session_id", id).Error("Erro ao finalizar sessão")
		return nil, err
	}

	s.remove(e.id)
	log.WithFields(logrus.Fields{
		"session_id": id,
		"results_id": resp.ResultsID.String(),
		"percentage": resp.Summary.Percentage,
	}).Info("Sessão finalizada com sucesso")
	return resp, nil
}

func (s *service) Abandon(ctx context.Context, id string) error {
	e, err := s.lookup(id)
	if err != nil {
		return err
	}
	e.engine.Close()
	s.remove(e.id)

	config.WithContext(ctx).WithField("session_id", id).Info("Sessão encerrada")
	return nil
}

func (s *service) ListExams(ctx context.Context) ([]int, error) {
	exams, err := s.loader.ExamNumbers(ctx)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Erro ao listar provas")
		return nil, err
	}
	return exams, nil
}

// EvictIdle closes sessions without actions for longer than maxIdle.
func (s *service) EvictIdle(ctx context.Context, maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)

	s.mu.Lock()
	evicted := 0
	for id, e := range s.sessions {
		if e.engine.LastUsed().Before(cutoff) {
			e.engine.Close()
			delete(s.sessions, id)
			evicted++
		}
	}
	s.mu.Unlock()

	if evicted > 0 {
		config.WithContext(ctx).WithField("evicted", evicted).Info("Sessões inativas removidas")
	}
	return evicted
}

func (s *service) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, e := range s.sessions {
		e.engine.Close()
		delete(s.sessions, id)
	}
}

func (s *service) lookup(id string) (*entry, error) {
	sessionID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrSessionNotFound
	}

	s.mu.RLock()
	e, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return e, nil
}

func (s *service) remove(id uuid.UUID) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// resolveConfig fills the mode presets for every field the request left out.
func (s *service) resolveConfig(ctx context.Context, dto StartSessionDTO) (quiz.Config, error) {
	if !dto.Mode.IsValid() {
		return quiz.Config{}, ErrInvalidMode
	}

	cfg := quiz.Config{Mode: dto.Mode, ExamNumber: dto.ExamNumber}

	switch dto.Mode {
	case quiz.ModePractice:
		shuffle, err := s.progress.ShuffleQuestions(ctx)
		if err != nil {
			config.WithContext(ctx).WithError(err).Warn("Erro ao carregar preferência de embaralhamento")
		}
		cfg.ShuffleQuestions = shuffle
		cfg.ShuffleAnswers = true
	case quiz.ModeTest:
		cfg.ShuffleQuestions = true
		cfg.ShuffleAnswers = true
		cfg.MaxQuestions = TestQuestionCount
		cfg.TimeLimit = TestTimeLimit
	case quiz.ModeIndividual:
		if dto.ExamNumber <= 0 {
			return quiz.Config{}, ErrExamRequired
		}
	}

	if dto.ShuffleQuestions != nil {
		cfg.ShuffleQuestions = *dto.ShuffleQuestions
	}
	if dto.ShuffleAnswers != nil {
		cfg.ShuffleAnswers = *dto.ShuffleAnswers
	}
	if dto.MaxQuestions != nil {
		cfg.MaxQuestions = *dto.MaxQuestions
	}
	if dto.TimeLimit != nil {
		cfg.TimeLimit = *dto.TimeLimit
	}
	return cfg, nil
}
