package session

import (
	"errors"
	"sync"
	"time"

	"github.com/saulo-duarte/lifeinuk-quiz/internal/quiz"
)

var ErrSessionClosed = errors.New("session is closed")

// Observer is called with every new state, in order, while the engine is locked.
type Observer func(s quiz.State)

// Engine owns the state of one quiz session. States handed out are never
// mutated afterwards.
type Engine struct {
	mu       sync.Mutex
	mode     quiz.Mode
	state    quiz.State
	observer Observer
	interval time.Duration
	timer    *time.Timer
	closed   bool
	lastUsed time.Time
}

func NewEngine(mode quiz.Mode, state quiz.State, interval time.Duration, observer Observer) *Engine {
	return &Engine{
		mode:     mode,
		state:    state,
		observer: observer,
		interval: interval,
		lastUsed: time.Now(),
	}
}

// Start begins the countdown when the session has a time limit.
func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.schedule()
}

func (e *Engine) Mode() quiz.Mode {
	return e.mode
}

func (e *Engine) State() quiz.State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

func (e *Engine) Dispatch(action quiz.Action) (quiz.State, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return e.state, ErrSessionClosed
	}
	e.lastUsed = time.Now()

	next, err := quiz.Reduce(e.state, e.mode, action)
	if err != nil {
		return e.state, err
	}
	e.apply(next)
	return next, nil
}

// Finish hands the final state to commit and closes the engine if commit succeeds.
func (e *Engine) Finish(commit func(quiz.State) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrSessionClosed
	}
	if err := commit(e.state); err != nil {
		return err
	}
	e.closeLocked()
	return nil
}

// Close stops the countdown. No state changes happen afterwards.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closeLocked()
}

func (e *Engine) Closed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.closed
}

func (e *Engine) LastUsed() time.Time {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastUsed
}

func (e *Engine) closeLocked() {
	e.closed = true
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}

func (e *Engine) apply(next quiz.State) {
	e.state = next
	if e.observer != nil {
		e.observer(next)
	}
}

// schedule arms a single tick; each tick re-arms the next one.
func (e *Engine) schedule() {
	if e.closed || e.timer != nil {
		return
	}
	if e.state.TimeLeft == nil || *e.state.TimeLeft <= 0 {
		return
	}
	e.timer = time.AfterFunc(e.interval, e.tick)
}

func (e *Engine) tick() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.timer = nil
	if e.closed {
		return
	}
	next, err := quiz.Reduce(e.state, e.mode, quiz.Tick{})
	if err != nil {
		return
	}
	e.apply(next)
	e.schedule()
}
