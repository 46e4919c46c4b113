package session_test

import (
	"context"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/saulo-duarte/lifeinuk-quiz/internal/dataset"
	"github.com/saulo-duarte/lifeinuk-quiz/internal/progress"
	"github.com/saulo-duarte/lifeinuk-quiz/internal/quiz"
	"github.com/saulo-duarte/lifeinuk-quiz/internal/results"
	"github.com/saulo-duarte/lifeinuk-quiz/internal/session"
	"github.com/saulo-duarte/lifeinuk-quiz/internal/storage"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeSource struct {
	tables map[string][]dataset.Row
	err    error
}

func (f *fakeSource) Fetch(_ context.Context, table string) ([]dataset.Row, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.tables[table], nil
}

// bank has exams 1 and 2 with 15 questions each. Answer 1 is correct, and
// question 5 of each exam also accepts answer 3.
func bank() *fakeSource {
	var questions, answers []dataset.Row
	for exam := 1; exam <= 2; exam++ {
		for q := 1; q <= 15; q++ {
			e, n := strconv.Itoa(exam), strconv.Itoa(q)
			questions = append(questions, dataset.Row{
				"examNumber": e, "questionNumber": n,
				"question": fmt.Sprintf("Exam %d question %d", exam, q), "reference": "ref",
			})
			for a := 1; a <= 3; a++ {
				correct := a == 1 || (q == 5 && a == 3)
				answers = append(answers, dataset.Row{
					"examNumber": e, "questionNumber": n, "answerNumber": strconv.Itoa(a),
					"answer": fmt.Sprintf("answer %d", a), "isCorrect": strconv.FormatBool(correct),
				})
			}
		}
	}
	return &fakeSource{tables: map[string][]dataset.Row{
		dataset.QuestionsTable: questions,
		dataset.AnswersTable:   answers,
	}}
}

type zeroRand struct{}

func (zeroRand) Intn(int) int { return 0 }

type fixture struct {
	sessions session.Service
	progress progress.Service
	results  results.Service
	store    *storage.MemoryStore
}

func newFixture(t *testing.T, source dataset.Source) *fixture {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	rc, err := results.NewResultsContainer(db, time.Hour)
	require.NoError(t, err)

	store := storage.NewMemoryStore()
	ps := progress.NewService(store)
	svc := session.NewService(quiz.NewLoader(source), quiz.NewBuilder(zeroRand{}), ps, rc.Service, 5*time.Millisecond)
	t.Cleanup(svc.Shutdown)

	return &fixture{sessions: svc, progress: ps, results: rc.Service, store: store}
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }
