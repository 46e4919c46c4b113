package quiz

import "errors"

var (
	ErrNoSelection   = errors.New("please select an answer before checking")
	ErrUnknownAnswer = errors.New("answer is not an option of the current question")
)

// Action is a user or timer event applied to a State by Reduce.
type Action interface {
	apply(s *State, mode Mode) error
}

type SelectAnswer struct {
	AnswerNumber int
}

type CheckAnswer struct{}

type MarkForReview struct{}

type NextQuestion struct{}

type PreviousQuestion struct{}

type GoToQuestion struct {
	Index int
}

type Tick struct{}

// Reduce applies action to a copy of s. On error the returned state equals s.
func Reduce(s State, mode Mode, action Action) (State, error) {
	next := s.Clone()
	if err := action.apply(&next, mode); err != nil {
		return s, err
	}
	return next, nil
}

func (a SelectAnswer) apply(s *State, _ Mode) error {
	if s.ShowResult {
		return nil
	}
	q, ok := s.CurrentQuestion()
	if !ok {
		return nil
	}
	if _, ok := q.Answer(a.AnswerNumber); !ok {
		return ErrUnknownAnswer
	}

	current := s.Selected[s.CurrentIndex]
	if !q.IsMultipleChoice {
		s.Selected[s.CurrentIndex] = []int{a.AnswerNumber}
		return nil
	}

	toggled := make([]int, 0, len(current)+1)
	removed := false
	for _, n := range current {
		if n == a.AnswerNumber {
			removed = true
			continue
		}
		toggled = append(toggled, n)
	}
	if !removed {
		toggled = append(toggled, a.AnswerNumber)
	}
	s.Selected[s.CurrentIndex] = toggled
	return nil
}

func (CheckAnswer) apply(s *State, mode Mode) error {
	selected := s.Selected[s.CurrentIndex]
	if len(selected) == 0 {
		return ErrNoSelection
	}
	q, ok := s.CurrentQuestion()
	if !ok {
		return nil
	}

	if q.IsCorrectSelection(selected) {
		s.Statuses[s.CurrentIndex] = StatusCorrect
	} else {
		s.Statuses[s.CurrentIndex] = StatusIncorrect
	}
	if mode != ModePractice {
		delete(s.Reviewed, s.CurrentIndex)
	}
	s.ShowResult = true
	return nil
}

func (MarkForReview) apply(s *State, mode Mode) error {
	if !s.CanMarkForReview(mode) {
		return nil
	}

	if s.IsCurrentReviewed() {
		delete(s.Reviewed, s.CurrentIndex)
	} else {
		s.Reviewed[s.CurrentIndex] = struct{}{}
	}

	if mode != ModeIndividual {
		return NextQuestion{}.apply(s, mode)
	}
	return nil
}

func (NextQuestion) apply(s *State, _ Mode) error {
	if s.CurrentIndex < len(s.Questions)-1 {
		s.CurrentIndex++
		s.ShowResult = false
	}
	return nil
}

func (PreviousQuestion) apply(s *State, _ Mode) error {
	if s.CurrentIndex > 0 {
		s.CurrentIndex--
		s.ShowResult = false
	}
	return nil
}

func (a GoToQuestion) apply(s *State, _ Mode) error {
	if a.Index >= 0 && a.Index < len(s.Questions) {
		s.CurrentIndex = a.Index
		s.ShowResult = false
	}
	return nil
}

func (Tick) apply(s *State, _ Mode) error {
	if s.TimeLeft != nil && *s.TimeLeft > 0 {
		*s.TimeLeft--
	}
	return nil
}
