package quiz

import (
	"math/rand"
	"sync"
	"time"
)

// Rand is the random source used for shuffling. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

// NewRand returns a time-seeded source safe for concurrent use.
func NewRand() Rand {
	return &lockedRand{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Shuffle permutes items in place with Fisher-Yates.
func Shuffle[T any](r Rand, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

type Builder struct {
	rand Rand
}

func NewBuilder(r Rand) *Builder {
	return &Builder{rand: r}
}

// Build turns loaded questions into the session's question sequence. The order
// of steps matters: questions are shuffled before truncation so a limited
// session samples the whole pool.
func (b *Builder) Build(questions []Question, cfg Config) []Question {
	built := make([]Question, len(questions))
	for i, q := range questions {
		q = q.clone()
		q.IsMultipleChoice = len(q.CorrectNumbers()) > 1
		q.DisplayNumber = i + 1
		built[i] = q
	}

	if cfg.ShuffleQuestions {
		Shuffle(b.rand, built)
	}

	if cfg.MaxQuestions > 0 && len(built) > cfg.MaxQuestions {
		built = built[:cfg.MaxQuestions]
	}

	if cfg.ShuffleAnswers {
		for i := range built {
			Shuffle(b.rand, built[i].Answers)
		}
	}

	return built
}
