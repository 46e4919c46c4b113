package quiz

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/saulo-duarte/lifeinuk-quiz/internal/dataset"
	"golang.org/x/sync/errgroup"
)

var (
	ErrLoadFailed  = errors.New("failed to load quiz data")
	ErrNoQuestions = errors.New("no valid questions found after filtering")
)

type Loader struct {
	source dataset.Source
}

func NewLoader(source dataset.Source) *Loader {
	return &Loader{source: source}
}

// Load returns every valid question in source order. A non-zero examNumber keeps
// only that exam's questions.
func (l *Loader) Load(ctx context.Context, examNumber int) ([]Question, error) {
	questionRows, answerRows, err := l.fetch(ctx)
	if err != nil {
		return nil, err
	}

	order := []Key{}
	byKey := map[Key]*Question{}

	for _, row := range questionRows {
		prompt := row["question"]
		if strings.TrimSpace(prompt) == "" {
			continue
		}

		q := Question{
			ExamNumber:     parseInt(row["examNumber"]),
			QuestionNumber: parseInt(row["questionNumber"]),
			Prompt:         prompt,
			Reference:      row["reference"],
		}
		if examNumber != 0 && q.ExamNumber != examNumber {
			continue
		}

		key := q.Key()
		if existing, ok := byKey[key]; ok {
			*existing = q
			continue
		}
		order = append(order, key)
		byKey[key] = &q
	}

	for _, row := range answerRows {
		text := row["answer"]
		if strings.TrimSpace(text) == "" {
			continue
		}

		a := Answer{
			ExamNumber:     parseInt(row["examNumber"]),
			QuestionNumber: parseInt(row["questionNumber"]),
			AnswerNumber:   parseInt(row["answerNumber"]),
			Text:           text,
			IsCorrect:      parseCorrect(row["isCorrect"]),
		}

		q, ok := byKey[Key{ExamNumber: a.ExamNumber, QuestionNumber: a.QuestionNumber}]
		if !ok {
			continue
		}
		q.Answers = append(q.Answers, a)
	}

	questions := []Question{}
	for _, key := range order {
		q := byKey[key]
		if len(q.Answers) == 0 || len(q.CorrectNumbers()) == 0 {
			continue
		}
		questions = append(questions, *q)
	}

	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	return questions, nil
}

// ExamNumbers lists the distinct positive exam numbers in ascending order.
func (l *Loader) ExamNumbers(ctx context.Context) ([]int, error) {
	rows, err := l.source.Fetch(ctx, dataset.QuestionsTable)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w: %w", ErrLoadFailed, err)
	}

	seen := map[int]struct{}{}
	exams := []int{}
	for _, row := range rows {
		n := parseInt(row["examNumber"])
		if n <= 0 {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		exams = append(exams, n)
	}
	sort.Ints(exams)
	return exams, nil
}

func (l *Loader) fetch(ctx context.Context) ([]dataset.Row, []dataset.Row, error) {
	var questionRows, answerRows []dataset.Row

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := l.source.Fetch(ctx, dataset.QuestionsTable)
		if err != nil {
			return fmt.Errorf("load questions: %w: %w", ErrLoadFailed, err)
		}
		questionRows = rows
		return nil
	})
	g.Go(func() error {
		rows, err := l.source.Fetch(ctx, dataset.AnswersTable)
		if err != nil {
			return fmt.Errorf("load answers: %w: %w", ErrLoadFailed, err)
		}
		answerRows = rows
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return questionRows, answerRows, nil
}

// parseInt reads an optional sign and leading digits, ignoring anything after
// them. Input without leading digits yields 0.
func parseInt(s string) int {
	s = strings.TrimSpace(s)
	sign := 1
	if s != "" && (s[0] == '-' || s[0] == '+') {
		if s[0] == '-' {
			sign = -1
		}
		s = s[1:]
	}

	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int(c-'0')
		if n > 1<<31 {
			break
		}
	}
	return sign * n
}

func parseCorrect(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes":
		return true
	default:
		return false
	}
}
