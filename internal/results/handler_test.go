package results_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/saulo-duarte/lifeinuk-quiz/internal/quiz"
	"github.com/saulo-duarte/lifeinuk-quiz/internal/results"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler(t *testing.T) {
	c, err := results.NewResultsContainer(openDB(t), time.Hour)
	require.NoError(t, err)

	router := chi.NewRouter()
	router.Mount("/results", results.Routes(c.Handler))

	id, err := c.Service.Store(context.Background(), quiz.ModeTest, 0, sampleOutcome())
	require.NoError(t, err)

	t.Run("GetOnce", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/results/"+id.String(), nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"percentage":67`)

		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/results/"+id.String(), nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Export", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/results/"+id.String()+"/export", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "life-in-uk-incorrect-answers-")
		assert.True(t, strings.HasPrefix(rec.Body.String(), "Question Number,Question,"))
	})

	t.Run("Unknown", func(t *testing.T) {
		for _, path := range []string{"/results/" + uuid.NewString(), "/results/garbage", "/results/garbage/export"} {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusNotFound, rec.Code, path)
		}
	})
}
