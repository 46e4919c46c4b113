package results

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/saulo-duarte/lifeinuk-quiz/internal/quiz"
)

var reviewHeader = []string{
	"Question Number",
	"Question",
	"Your Answer(s)",
	"Correct Answer(s)",
	"Status",
	"Explanation",
}

// ReviewRows keeps the results worth revisiting: wrong answers and anything
// marked for review.
func ReviewRows(results []quiz.Result) []quiz.Result {
	rows := []quiz.Result{}
	for _, r := range results {
		if !r.IsCorrect || r.IsReviewed {
			rows = append(rows, r)
		}
	}
	return rows
}

func WriteReviewCSV(w io.Writer, results []quiz.Result) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(reviewHeader); err != nil {
		return err
	}

	for _, r := range ReviewRows(results) {
		record := []string{
			fmt.Sprintf("Question %d", r.QuestionIndex+1),
			r.Question,
			strings.Join(r.UserAnswerTexts, "; "),
			strings.Join(r.CorrectAnswerTexts, "; "),
			reviewStatus(r),
			r.Reference,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func reviewStatus(r quiz.Result) string {
	switch {
	case r.IsReviewed && r.IsCorrect:
		return "Correct (Reviewed)"
	case r.IsReviewed:
		return "Incorrect (Reviewed)"
	default:
		return "Incorrect"
	}
}

func ExportFileName(t time.Time) string {
	return "life-in-uk-incorrect-answers-" + t.UTC().Format("2006-01-02") + ".csv"
}
