package quiz

import "math"

// PassPercentage is the official pass mark: 18 of 24.
const PassPercentage = 75

type Result struct {
	QuestionIndex      int      `json:"questionIndex"`
	DisplayNumber      int      `json:"displayNumber"`
	ExamNumber         int      `json:"examNumber"`
	QuestionNumber     int      `json:"questionNumber"`
	Question           string   `json:"question"`
	Reference          string   `json:"reference"`
	SelectedAnswers    []int    `json:"selectedAnswers"`
	CorrectAnswers     []int    `json:"correctAnswers"`
	IsCorrect          bool     `json:"isCorrect"`
	WasAnswered        bool     `json:"wasAnswered"`
	UserAnswerTexts    []string `json:"userAnswerTexts"`
	CorrectAnswerTexts []string `json:"correctAnswerTexts"`
	IsReviewed         bool     `json:"isReviewed"`
}

type Summary struct {
	TotalQuestions int  `json:"totalQuestions"`
	AnsweredCount  int  `json:"answeredCount"`
	CorrectCount   int  `json:"correctCount"`
	Percentage     int  `json:"percentage"`
	Passed         bool `json:"passed"`
}

type Outcome struct {
	Results []Result `json:"results"`
	Summary Summary  `json:"summary"`
}

// Compile scores the final state of a session.
//
// Practice counts a question as answered when it has a selection or a status
// and only reports answered or reviewed questions. The other modes count
// questions with a selection and report every question.
func Compile(s State, mode Mode) Outcome {
	all := make([]Result, 0, len(s.Questions))
	answered, correct := 0, 0

	for i, q := range s.Questions {
		selected := append([]int{}, s.Selected[i]...)
		wasAnswered := len(selected) > 0 || s.Statuses[i].Scored()
		isCorrect := wasAnswered && q.IsCorrectSelection(selected)

		userTexts := []string{}
		for _, n := range selected {
			if a, ok := q.Answer(n); ok && a.Text != "" {
				userTexts = append(userTexts, a.Text)
			}
		}
		correctTexts := []string{}
		for _, a := range q.CorrectAnswers() {
			correctTexts = append(correctTexts, a.Text)
		}

		r := Result{
			QuestionIndex:      i,
			DisplayNumber:      q.DisplayNumber,
			ExamNumber:         q.ExamNumber,
			QuestionNumber:     q.QuestionNumber,
			Question:           q.Prompt,
			Reference:          q.Reference,
			SelectedAnswers:    selected,
			CorrectAnswers:     q.CorrectNumbers(),
			IsCorrect:          isCorrect,
			WasAnswered:        wasAnswered,
			UserAnswerTexts:    userTexts,
			CorrectAnswerTexts: correctTexts,
			IsReviewed:         s.IsReviewed(i),
		}
		all = append(all, r)

		if mode == ModePractice {
			if r.WasAnswered {
				answered++
			}
		} else if len(r.SelectedAnswers) > 0 {
			answered++
		}
		if r.IsCorrect {
			correct++
		}
	}

	results := all
	if mode == ModePractice {
		results = make([]Result, 0, len(all))
		for _, r := range all {
			if r.WasAnswered || r.IsReviewed {
				results = append(results, r)
			}
		}
	}

	percentage := Percentage(correct, answered)
	return Outcome{
		Results: results,
		Summary: Summary{
			TotalQuestions: len(s.Questions),
			AnsweredCount:  answered,
			CorrectCount:   correct,
			Percentage:     percentage,
			Passed:         percentage >= PassPercentage,
		},
	}
}

// Percentage rounds half up and is 0 when nothing was answered.
func Percentage(correct, answered int) int {
	if answered == 0 {
		return 0
	}
	return int(math.Floor(float64(correct)/float64(answered)*100 + 0.5))
}
