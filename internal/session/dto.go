package session

import (
	"github.com/google/uuid"
	"github.com/saulo-duarte/lifeinuk-quiz/internal/quiz"
)

type StartSessionDTO struct {
	Mode             quiz.Mode `json:"mode" validate:"required,oneof=practice test individual"`
	ExamNumber       int       `json:"examNumber" validate:"required_if=Mode individual,omitempty,min=1"`
	TimeLimit        *int      `json:"timeLimit" validate:"omitempty,min=1"`
	ShuffleQuestions *bool     `json:"shuffleQuestions"`
	ShuffleAnswers   *bool     `json:"shuffleAnswers"`
	MaxQuestions     *int      `json:"maxQuestions" validate:"omitempty,min=1"`
}

type SelectAnswerDTO struct {
	AnswerNumber *int `json:"answerNumber" validate:"required"`
}

type GoToQuestionDTO struct {
	Index *int `json:"index" validate:"required"`
}

type AnswerView struct {
	AnswerNumber int    `json:"answerNumber"`
	Text         string `json:"answer"`
}

// QuestionView hides correctness; it is revealed through Result once checked.
type QuestionView struct {
	ExamNumber       int          `json:"examNumber"`
	QuestionNumber   int          `json:"questionNumber"`
	DisplayNumber    int          `json:"displayNumber"`
	Prompt           string       `json:"question"`
	Reference        string       `json:"reference,omitempty"`
	IsMultipleChoice bool         `json:"isMultipleChoice"`
	Answers          []AnswerView `json:"answers"`
}

type GridItem struct {
	Index  int         `json:"index"`
	Status quiz.Status `json:"status"`
}

type SessionResponse struct {
	ID               uuid.UUID           `json:"id"`
	Config           quiz.Config         `json:"config"`
	TotalQuestions   int                 `json:"totalQuestions"`
	CurrentIndex     int                 `json:"currentIndex"`
	Question         *QuestionView       `json:"question"`
	SelectedAnswers  []int               `json:"selectedAnswers"`
	ShowResult       bool                `json:"showResult"`
	Result           *quiz.CurrentResult `json:"result"`
	Grid             []GridItem          `json:"grid"`
	AnsweredCount    int                 `json:"answeredCount"`
	IsComplete       bool                `json:"isComplete"`
	IsReviewed       bool                `json:"isReviewed"`
	CanMarkForReview bool                `json:"canMarkForReview"`
	CanFinish        bool                `json:"canFinish"`
	TimeLeft         *int                `json:"timeLeft,omitempty"`
	Expired          bool                `json:"expired"`
}

type FinishResponse struct {
	ResultsID uuid.UUID    `json:"resultsId"`
	Mode      quiz.Mode    `json:"mode"`
	Summary   quiz.Summary `json:"summary"`
}

type ExamsResponse struct {
	Exams []int `json:"exams"`
}

func toResponse(id uuid.UUID, cfg quiz.Config, s quiz.State) *SessionResponse {
	resp := &SessionResponse{
		ID:               id,
		Config:           cfg,
		TotalQuestions:   len(s.Questions),
		CurrentIndex:     s.CurrentIndex,
		SelectedAnswers:  append([]int{}, s.Selected[s.CurrentIndex]...),
		ShowResult:       s.ShowResult,
		Result:           s.CurrentResult(),
		Grid:             make([]GridItem, len(s.Questions)),
		AnsweredCount:    s.AnsweredCount(),
		IsComplete:       s.IsComplete(),
		IsReviewed:       s.IsCurrentReviewed(),
		CanMarkForReview: s.CanMarkForReview(cfg.Mode),
		CanFinish:        s.CanFinish(cfg.Mode),
		Expired:          s.Expired(),
	}
	if s.TimeLeft != nil {
		t := *s.TimeLeft
		resp.TimeLeft = &t
	}

	for i := range s.Questions {
		resp.Grid[i] = GridItem{Index: i, Status: s.QuestionStatus(i)}
	}

	if q, ok := s.CurrentQuestion(); ok {
		view := &QuestionView{
			ExamNumber:       q.ExamNumber,
			QuestionNumber:   q.QuestionNumber,
			DisplayNumber:    q.DisplayNumber,
			Prompt:           q.Prompt,
			IsMultipleChoice: q.IsMultipleChoice,
			Answers:          make([]AnswerView, 0, len(q.Answers)),
		}
		if s.ShowResult {
			view.Reference = q.Reference
		}
		for _, a := range q.Answers {
			view.Answers = append(view.Answers, AnswerView{AnswerNumber: a.AnswerNumber, Text: a.Text})
		}
		resp.Question = view
	}

	return resp
}
