package quiz

type Mode string

const (
	ModePractice   Mode = "practice"
	ModeTest       Mode = "test"
	ModeIndividual Mode = "individual"
)

var AllModes = []Mode{
	ModePractice,
	ModeTest,
	ModeIndividual,
}

func (m Mode) IsValid() bool {
	for _, v := range AllModes {
		if m == v {
			return true
		}
	}
	return false
}

type Status string

const (
	StatusUnanswered Status = "unanswered"
	StatusCorrect    Status = "correct"
	StatusIncorrect  Status = "incorrect"
	StatusReview     Status = "review"
	StatusCurrent    Status = "current"
)

// Scored reports whether s is an outcome of checking a question.
func (s Status) Scored() bool {
	return s == StatusCorrect || s == StatusIncorrect
}
