package quiz

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidKey = errors.New("invalid question key")

// Key identifies a question independently of its position in a session.
type Key struct {
	ExamNumber     int
	QuestionNumber int
}

func (k Key) String() string {
	return strconv.Itoa(k.ExamNumber) + "-" + strconv.Itoa(k.QuestionNumber)
}

func ParseKey(s string) (Key, error) {
	exam, question, ok := strings.Cut(s, "-")
	if !ok {
		return Key{}, fmt.Errorf("%q: %w", s, ErrInvalidKey)
	}

	examNumber, err := strconv.Atoi(exam)
	if err != nil || examNumber < 0 {
		return Key{}, fmt.Errorf("%q: %w", s, ErrInvalidKey)
	}
	questionNumber, err := strconv.Atoi(question)
	if err != nil || questionNumber < 0 {
		return Key{}, fmt.Errorf("%q: %w", s, ErrInvalidKey)
	}

	return Key{ExamNumber: examNumber, QuestionNumber: questionNumber}, nil
}
