package quiz

// Answer is one option of a question. IsCorrect is decided once at load time.
type Answer struct {
	ExamNumber     int    `json:"examNumber"`
	QuestionNumber int    `json:"questionNumber"`
	AnswerNumber   int    `json:"answerNumber"`
	Text           string `json:"answer"`
	IsCorrect      bool   `json:"isCorrect"`
}

type Question struct {
	ExamNumber       int      `json:"examNumber"`
	QuestionNumber   int      `json:"questionNumber"`
	DisplayNumber    int      `json:"displayNumber"`
	Prompt           string   `json:"question"`
	Reference        string   `json:"reference"`
	Answers          []Answer `json:"answers"`
	IsMultipleChoice bool     `json:"isMultipleChoice"`
}

func (q Question) Key() Key {
	return Key{ExamNumber: q.ExamNumber, QuestionNumber: q.QuestionNumber}
}

// CorrectAnswers keeps the question's own answer order.
func (q Question) CorrectAnswers() []Answer {
	correct := []Answer{}
	for _, a := range q.Answers {
		if a.IsCorrect {
			correct = append(correct, a)
		}
	}
	return correct
}

func (q Question) CorrectNumbers() []int {
	numbers := []int{}
	for _, a := range q.Answers {
		if a.IsCorrect {
			numbers = append(numbers, a.AnswerNumber)
		}
	}
	return numbers
}

func (q Question) Answer(number int) (Answer, bool) {
	for _, a := range q.Answers {
		if a.AnswerNumber == number {
			return a, true
		}
	}
	return Answer{}, false
}

// IsCorrectSelection reports whether selected holds exactly the correct answer
// numbers, in any order.
func (q Question) IsCorrectSelection(selected []int) bool {
	return sameSet(selected, q.CorrectNumbers())
}

func sameSet(a, b []int) bool {
	left := make(map[int]struct{}, len(a))
	for _, n := range a {
		left[n] = struct{}{}
	}
	right := make(map[int]struct{}, len(b))
	for _, n := range b {
		right[n] = struct{}{}
	}
	if len(left) != len(right) {
		return false
	}
	for n := range left {
		if _, ok := right[n]; !ok {
			return false
		}
	}
	return true
}

func (q Question) clone() Question {
	out := q
	out.Answers = append([]Answer(nil), q.Answers...)
	return out
}

// Config describes one quiz session. Zero ExamNumber, TimeLimit and
// MaxQuestions mean "not configured".
type Config struct {
	Mode             Mode `json:"mode"`
	ExamNumber       int  `json:"examNumber,omitempty"`
	TimeLimit        int  `json:"timeLimit,omitempty"`
	ShuffleQuestions bool `json:"shuffleQuestions"`
	ShuffleAnswers   bool `json:"shuffleAnswers"`
	MaxQuestions     int  `json:"maxQuestions,omitempty"`
}

// Persistent reports whether the session mirrors progress to storage. Only
// untimed practice over the whole question bank does; a subset would replace
// the stored records with its own keys.
func (c Config) Persistent() bool {
	return c.Mode == ModePractice && c.ExamNumber == 0 && c.MaxQuestions == 0 && c.TimeLimit == 0
}
