package session_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/saulo-duarte/lifeinuk-quiz/internal/quiz"
	"github.com/saulo-duarte/lifeinuk-quiz/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_StartPresets(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, bank())

	t.Run("Test", func(t *testing.T) {
		resp, err := f.sessions.Start(ctx, session.StartSessionDTO{Mode: quiz.ModeTest})
		require.NoError(t, err)
		assert.Equal(t, session.TestQuestionCount, resp.TotalQuestions)
		require.NotNil(t, resp.TimeLeft)
		assert.Equal(t, session.TestTimeLimit, *resp.TimeLeft)
		assert.True(t, resp.Config.ShuffleQuestions)
		assert.True(t, resp.Config.ShuffleAnswers)
		assert.Equal(t, quiz.StatusCurrent, resp.Grid[0].Status)
	})

	t.Run("TestOverrides", func(t *testing.T) {
		resp, err := f.sessions.Start(ctx, session.StartSessionDTO{
			Mode:         quiz.ModeTest,
			MaxQuestions: intPtr(5),
			TimeLimit:    intPtr(60),
		})
		require.NoError(t, err)
		assert.Equal(t, 5, resp.TotalQuestions)
		assert.Equal(t, 60, *resp.TimeLeft)
	})

	t.Run("IndividualNeedsExam", func(t *testing.T) {
		_, err := f.sessions.Start(ctx, session.StartSessionDTO{Mode: quiz.ModeIndividual})
		assert.ErrorIs(t, err, session.ErrExamRequired)

		resp, err := f.sessions.Start(ctx, session.StartSessionDTO{Mode: quiz.ModeIndividual, ExamNumber: 2})
		require.NoError(t, err)
		assert.Equal(t, 15, resp.TotalQuestions)
		assert.Equal(t, 2, resp.Question.ExamNumber)
		assert.Equal(t, 1, resp.Question.QuestionNumber, "individual exams keep source order")
		assert.Nil(t, resp.TimeLeft)
		assert.False(t, resp.Config.ShuffleAnswers)
	})

	t.Run("PracticeUsesStoredShufflePreference", func(t *testing.T) {
		resp, err := f.sessions.Start(ctx, session.StartSessionDTO{Mode: quiz.ModePractice})
		require.NoError(t, err)
		assert.False(t, resp.Config.ShuffleQuestions)
		assert.True(t, resp.Config.ShuffleAnswers)
		assert.Equal(t, 30, resp.TotalQuestions)
		require.NoError(t, f.sessions.Abandon(ctx, resp.ID.String()))

		require.NoError(t, f.progress.SetShuffleQuestions(ctx, true))
		resp, err = f.sessions.Start(ctx, session.StartSessionDTO{Mode: quiz.ModePractice})
		require.NoError(t, err)
		assert.True(t, resp.Config.ShuffleQuestions)

		resp, err = f.sessions.Start(ctx, session.StartSessionDTO{Mode: quiz.ModePractice, ShuffleQuestions: boolPtr(false)})
		require.NoError(t, err)
		assert.False(t, resp.Config.ShuffleQuestions)
	})

	t.Run("InvalidMode", func(t *testing.T) {
		_, err := f.sessions.Start(ctx, session.StartSessionDTO{Mode: "exam"})
		assert.ErrorIs(t, err, session.ErrInvalidMode)
	})
}

func TestService_LoadFailure(t *testing.T) {
	ctx := context.Background()
	source := bank()
	source.err = errors.New("dial tcp: connection refused")
	f := newFixture(t, source)

	_, err := f.sessions.Start(ctx, session.StartSessionDTO{Mode: quiz.ModeTest})
	assert.ErrorIs(t, err, quiz.ErrLoadFailed)

	_, err = f.sessions.ListExams(ctx)
	assert.ErrorIs(t, err, quiz.ErrLoadFailed)

	f = newFixture(t, bank())
	_, err = f.sessions.Start(ctx, session.StartSessionDTO{Mode: quiz.ModeIndividual, ExamNumber: 7})
	assert.ErrorIs(t, err, quiz.ErrNoQuestions)
}

func TestService_PracticeProgressSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, bank())

	first, err := f.sessions.Start(ctx, session.StartSessionDTO{Mode: quiz.ModePractice})
	require.NoError(t, err)
	id := first.ID.String()

	_, err = f.sessions.Dispatch(ctx, id, quiz.SelectAnswer{AnswerNumber: 1})
	require.NoError(t, err)
	_, err = f.sessions.Dispatch(ctx, id, quiz.CheckAnswer{})
	require.NoError(t, err)
	_, err = f.sessions.Dispatch(ctx, id, quiz.MarkForReview{})
	require.NoError(t, err)
	view, err := f.sessions.Dispatch(ctx, id, quiz.MarkForReview{})
	require.NoError(t, err)
	assert.Equal(t, 2, view.CurrentIndex, "review auto-advances in practice")
	require.NoError(t, f.sessions.Abandon(ctx, id))

	second, err := f.sessions.Start(ctx, session.StartSessionDTO{Mode: quiz.ModePractice})
	require.NoError(t, err)
	assert.Equal(t, 2, second.CurrentIndex)
	assert.Equal(t, 1, second.AnsweredCount)
	assert.Equal(t, quiz.StatusReview, second.Grid[0].Status, "question 1 was checked and marked")
	assert.Equal(t, quiz.StatusReview, second.Grid[1].Status)
	assert.False(t, second.ShowResult)

	individual, err := f.sessions.Start(ctx, session.StartSessionDTO{Mode: quiz.ModeIndividual, ExamNumber: 1})
	require.NoError(t, err)
	assert.Equal(t, 0, individual.AnsweredCount, "only practice restores progress")
}

func TestService_PracticeSubsetKeepsStoredProgress(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, bank())

	full, err := f.sessions.Start(ctx, session.StartSessionDTO{Mode: quiz.ModePractice})
	require.NoError(t, err)
	id := full.ID.String()

	// index 15 is exam 2 question 1
	_, err = f.sessions.Dispatch(ctx, id, quiz.GoToQuestion{Index: 15})
	require.NoError(t, err)
	_, err = f.sessions.Dispatch(ctx, id, quiz.SelectAnswer{AnswerNumber: 1})
	require.NoError(t, err)
	_, err = f.sessions.Dispatch(ctx, id, quiz.CheckAnswer{})
	require.NoError(t, err)
	require.NoError(t, f.sessions.Abandon(ctx, id))

	subsets := map[string]session.StartSessionDTO{
		"SingleExam": {Mode: quiz.ModePractice, ExamNumber: 1},
		"Limited":    {Mode: quiz.ModePractice, MaxQuestions: intPtr(5)},
		"Timed":      {Mode: quiz.ModePractice, TimeLimit: intPtr(600)},
	}
	for name, dto := range subsets {
		t.Run(name, func(t *testing.T) {
			view, err := f.sessions.Start(ctx, dto)
			require.NoError(t, err)
			assert.Equal(t, 0, view.AnsweredCount, "subset sessions start fresh")
			assert.Equal(t, 0, view.CurrentIndex)

			_, err = f.sessions.Dispatch(ctx, view.ID.String(), quiz.SelectAnswer{AnswerNumber: 2})
			require.NoError(t, err)
			require.NoError(t, f.sessions.Abandon(ctx, view.ID.String()))
		})
	}

	again, err := f.sessions.Start(ctx, session.StartSessionDTO{Mode: quiz.ModePractice})
	require.NoError(t, err)
	assert.Equal(t, 15, again.CurrentIndex)
	assert.Equal(t, 1, again.AnsweredCount)
	assert.True(t, again.ShowResult)

	moved, err := f.sessions.Dispatch(ctx, again.ID.String(), quiz.PreviousQuestion{})
	require.NoError(t, err)
	assert.Equal(t, quiz.StatusCorrect, moved.Grid[15].Status)
}

func TestService_DispatchAndFinish(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, bank())

	start, err := f.sessions.Start(ctx, session.StartSessionDTO{
		Mode:             quiz.ModeIndividual,
		ExamNumber:       1,
		MaxQuestions:     intPtr(5),
		ShuffleQuestions: boolPtr(false),
	})
	require.NoError(t, err)
	id := start.ID.String()

	_, err = f.sessions.Dispatch(ctx, id, quiz.CheckAnswer{})
	assert.ErrorIs(t, err, quiz.ErrNoSelection)
	_, err = f.sessions.Dispatch(ctx, id, quiz.SelectAnswer{AnswerNumber: 9})
	assert.ErrorIs(t, err, quiz.ErrUnknownAnswer)

	view, err := f.sessions.Dispatch(ctx, id, quiz.SelectAnswer{AnswerNumber: 1})
	require.NoError(t, err)
	assert.Equal(t, []int{1}, view.SelectedAnswers)
	assert.Nil(t, view.Result)
	assert.Empty(t, view.Question.Reference, "reference stays hidden until checked")

	view, err = f.sessions.Dispatch(ctx, id, quiz.CheckAnswer{})
	require.NoError(t, err)
	require.NotNil(t, view.Result)
	assert.True(t, view.Result.IsCorrect)
	assert.Equal(t, "ref", view.Question.Reference)

	view, err = f.sessions.Dispatch(ctx, id, quiz.GoToQuestion{Index: 4})
	require.NoError(t, err)
	assert.True(t, view.Question.IsMultipleChoice)
	assert.False(t, view.CanFinish)

	_, err = f.sessions.Dispatch(ctx, id, quiz.SelectAnswer{AnswerNumber: 1})
	require.NoError(t, err)
	view, err = f.sessions.Dispatch(ctx, id, quiz.CheckAnswer{})
	require.NoError(t, err)
	assert.False(t, view.Result.IsCorrect)
	assert.True(t, view.CanFinish)

	finished, err := f.sessions.Finish(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, quiz.Summary{TotalQuestions: 5, AnsweredCount: 2, CorrectCount: 1, Percentage: 50}, finished.Summary)

	_, err = f.sessions.Get(ctx, id)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
	_, err = f.sessions.Finish(ctx, id)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)

	stored, err := f.results.Take(ctx, finished.ResultsID.String())
	require.NoError(t, err)
	assert.Equal(t, quiz.ModeIndividual, stored.Mode)
	assert.Equal(t, 1, stored.ExamNumber)
	assert.Len(t, stored.Results, 5)
}

func TestService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, bank())

	_, err := f.sessions.Get(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)

	timed, err := f.sessions.Start(ctx, session.StartSessionDTO{Mode: quiz.ModeTest, TimeLimit: intPtr(2)})
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		view, err := f.sessions.Get(ctx, timed.ID.String())
		return err == nil && view.Expired
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, f.sessions.Abandon(ctx, timed.ID.String()))
	assert.ErrorIs(t, f.sessions.Abandon(ctx, timed.ID.String()), session.ErrSessionNotFound)

	idle, err := f.sessions.Start(ctx, session.StartSessionDTO{Mode: quiz.ModeTest})
	require.NoError(t, err)
	assert.Equal(t, 0, f.sessions.EvictIdle(ctx, time.Hour))

	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, 1, f.sessions.EvictIdle(ctx, time.Millisecond))
	_, err = f.sessions.Get(ctx, idle.ID.String())
	assert.ErrorIs(t, err, session.ErrSessionNotFound)

	exams, err := f.sessions.ListExams(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, exams)
}
