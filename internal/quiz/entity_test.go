package quiz_test

import (
	"testing"

	"github.com/saulo-duarte/lifeinuk-quiz/internal/quiz"
	"github.com/stretchr/testify/assert"
)

func TestConfig_Persistent(t *testing.T) {
	tests := []struct {
		name string
		cfg  quiz.Config
		want bool
	}{
		{"Practice", quiz.Config{Mode: quiz.ModePractice, ShuffleAnswers: true}, true},
		{"PracticeSingleExam", quiz.Config{Mode: quiz.ModePractice, ExamNumber: 1}, false},
		{"PracticeLimited", quiz.Config{Mode: quiz.ModePractice, MaxQuestions: 10}, false},
		{"PracticeTimed", quiz.Config{Mode: quiz.ModePractice, TimeLimit: 60}, false},
		{"Test", quiz.Config{Mode: quiz.ModeTest, MaxQuestions: 24, TimeLimit: 2700}, false},
		{"Individual", quiz.Config{Mode: quiz.ModeIndividual, ExamNumber: 3}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.Persistent())
		})
	}
}
