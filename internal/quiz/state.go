package quiz

import "sort"

// State is the full state of one quiz session. Indices refer to Questions and
// are only meaningful within the session.
type State struct {
	Questions    []Question
	CurrentIndex int
	Selected     map[int][]int
	Statuses     map[int]Status
	Reviewed     map[int]struct{}
	ShowResult   bool
	TimeLeft     *int
	Loading      bool
	Error        string
}

func NewState(questions []Question, timeLimit int) State {
	s := State{
		Questions: questions,
		Selected:  map[int][]int{},
		Statuses:  map[int]Status{},
		Reviewed:  map[int]struct{}{},
	}
	if timeLimit > 0 {
		s.TimeLeft = &timeLimit
	}
	return s
}

// Clone copies everything but the questions, which are never mutated after build.
func (s State) Clone() State {
	out := s

	out.Selected = make(map[int][]int, len(s.Selected))
	for i, sel := range s.Selected {
		out.Selected[i] = append([]int(nil), sel...)
	}
	out.Statuses = make(map[int]Status, len(s.Statuses))
	for i, st := range s.Statuses {
		out.Statuses[i] = st
	}
	out.Reviewed = make(map[int]struct{}, len(s.Reviewed))
	for i := range s.Reviewed {
		out.Reviewed[i] = struct{}{}
	}
	if s.TimeLeft != nil {
		t := *s.TimeLeft
		out.TimeLeft = &t
	}
	return out
}

func (s State) CurrentQuestion() (Question, bool) {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Questions) {
		return Question{}, false
	}
	return s.Questions[s.CurrentIndex], true
}

func (s State) QuestionStatus(index int) Status {
	if index == s.CurrentIndex {
		return StatusCurrent
	}
	if s.IsReviewed(index) {
		return StatusReview
	}
	if st := s.Statuses[index]; st.Scored() {
		return st
	}
	return StatusUnanswered
}

func (s State) IsReviewed(index int) bool {
	_, ok := s.Reviewed[index]
	return ok
}

func (s State) IsCurrentReviewed() bool {
	return s.IsReviewed(s.CurrentIndex)
}

// ReviewedIndices returns the review set in ascending order.
func (s State) ReviewedIndices() []int {
	indices := make([]int, 0, len(s.Reviewed))
	for i := range s.Reviewed {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	return indices
}

type CurrentResult struct {
	IsCorrect      bool     `json:"isCorrect"`
	CorrectAnswers []Answer `json:"correctAnswers"`
	Selected       []int    `json:"selectedAnswers"`
}

// CurrentResult is nil unless the check feedback of the current question is visible.
func (s State) CurrentResult() *CurrentResult {
	if !s.ShowResult {
		return nil
	}
	q, ok := s.CurrentQuestion()
	if !ok {
		return nil
	}

	selected := append([]int{}, s.Selected[s.CurrentIndex]...)
	return &CurrentResult{
		IsCorrect:      q.IsCorrectSelection(selected),
		CorrectAnswers: q.CorrectAnswers(),
		Selected:       selected,
	}
}

func (s State) isAnswered(index int) bool {
	return s.Statuses[index].Scored() || len(s.Selected[index]) > 0
}

// AnsweredCount counts questions that are checked or have a pending selection.
func (s State) AnsweredCount() int {
	count := 0
	for i := range s.Questions {
		if s.isAnswered(i) {
			count++
		}
	}
	return count
}

func (s State) IsComplete() bool {
	for i := range s.Questions {
		if !s.isAnswered(i) {
			return false
		}
	}
	return true
}

func (s State) CanMarkForReview(mode Mode) bool {
	if mode == ModePractice {
		return true
	}
	return !s.ShowResult && !s.Statuses[s.CurrentIndex].Scored()
}

// CanFinish gates the finish action: practice needs any answer, the other
// modes need the last question reached with its result shown or every
// question answered.
func (s State) CanFinish(mode Mode) bool {
	if mode == ModePractice {
		return s.AnsweredCount() > 0
	}
	last := s.CurrentIndex == len(s.Questions)-1
	return last && (s.ShowResult || s.IsComplete())
}

func (s State) Expired() bool {
	return s.TimeLeft != nil && *s.TimeLeft <= 0
}
