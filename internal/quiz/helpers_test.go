package quiz_test

import (
	"context"

	"github.com/saulo-duarte/lifeinuk-quiz/internal/dataset"
	"github.com/saulo-duarte/lifeinuk-quiz/internal/quiz"
)

type fakeSource struct {
	tables map[string][]dataset.Row
	errs   map[string]error
}

func (f *fakeSource) Fetch(_ context.Context, table string) ([]dataset.Row, error) {
	if err := f.errs[table]; err != nil {
		return nil, err
	}
	return f.tables[table], nil
}

func questionRow(exam, number, prompt string) dataset.Row {
	return dataset.Row{"examNumber": exam, "questionNumber": number, "question": prompt, "reference": "ref " + number}
}

func answerRow(exam, question, answer, text, correct string) dataset.Row {
	return dataset.Row{"examNumber": exam, "questionNumber": question, "answerNumber": answer, "answer": text, "isCorrect": correct}
}

// zeroRand always picks index 0, so Fisher-Yates output is predictable.
type zeroRand struct{}

func (zeroRand) Intn(int) int { return 0 }

func answers(exam, number int, correct ...int) []quiz.Answer {
	isCorrect := map[int]bool{}
	for _, n := range correct {
		isCorrect[n] = true
	}
	out := []quiz.Answer{}
	for n := 1; n <= 4; n++ {
		out = append(out, quiz.Answer{
			ExamNumber:     exam,
			QuestionNumber: number,
			AnswerNumber:   n,
			Text:           string(rune('A' + n - 1)),
			IsCorrect:      isCorrect[n],
		})
	}
	return out
}

// twoQuestions is one single-choice question (correct 2) and one multiple-choice
// question (correct 1 and 3).
func twoQuestions() []quiz.Question {
	return quiz.NewBuilder(zeroRand{}).Build([]quiz.Question{
		{ExamNumber: 1, QuestionNumber: 1, Prompt: "Single", Answers: answers(1, 1, 2)},
		{ExamNumber: 1, QuestionNumber: 2, Prompt: "Multi", Answers: answers(1, 2, 1, 3)},
	}, quiz.Config{})
}

func reduceAll(s quiz.State, mode quiz.Mode, actions ...quiz.Action) (quiz.State, error) {
	for _, a := range actions {
		var err error
		s, err = quiz.Reduce(s, mode, a)
		if err != nil {
			return s, err
		}
	}
	return s, nil
}
