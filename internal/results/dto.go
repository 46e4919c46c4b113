package results

import (
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/lifeinuk-quiz/internal/quiz"
)

type ResultsResponse struct {
	ID         uuid.UUID     `json:"id"`
	Mode       quiz.Mode     `json:"mode"`
	ExamNumber int           `json:"examNumber,omitempty"`
	Results    []quiz.Result `json:"results"`
	Summary    quiz.Summary  `json:"summary"`
	CreatedAt  time.Time     `json:"createdAt"`
}
