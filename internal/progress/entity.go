package progress

import "github.com/saulo-duarte/lifeinuk-quiz/internal/quiz"

const (
	ReviewedKey = "life-in-uk-reviewed-questions"
	ProgressKey = "life-in-uk-practice-progress"
	ShuffleKey  = "life-in-uk-practice-shuffle-questions"
)

// Record is the stored practice progress, keyed by quiz.Key strings.
type Record struct {
	SelectedAnswers  map[string][]int       `json:"selectedAnswers"`
	QuestionStatuses map[string]quiz.Status `json:"questionStatuses"`
	CurrentIndex     int                    `json:"currentIndex"`
}
