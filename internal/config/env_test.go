package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/saulo-duarte/lifeinuk-quiz/internal/config"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("RESULTS_TTL", "")
		t.Setenv("STORAGE_DRIVER", "")

		s := config.Load()

		assert.Equal(t, "8080", s.Port)
		assert.Equal(t, "database", s.StorageDriver)
		assert.Equal(t, time.Hour, s.ResultsTTL)
	})

	t.Run("Overrides", func(t *testing.T) {
		t.Setenv("PORT", "9000")
		t.Setenv("RESULTS_TTL", "90s")
		t.Setenv("SESSION_IDLE_TTL", "600")
		t.Setenv("STORAGE_DRIVER", "redis")

		s := config.Load()

		assert.Equal(t, "9000", s.Port)
		assert.Equal(t, 90*time.Second, s.ResultsTTL)
		assert.Equal(t, 10*time.Minute, s.SessionIdleTTL)
		assert.Equal(t, "redis", s.StorageDriver)
	})

	t.Run("InvalidDurationFallsBack", func(t *testing.T) {
		t.Setenv("RESULTS_TTL", "soon")

		s := config.Load()

		assert.Equal(t, time.Hour, s.ResultsTTL)
	})
}

func TestDialector(t *testing.T) {
	for _, driver := range []string{"sqlite", "postgres", "mysql", ""} {
		_, err := config.Dialector(driver, "dsn")
		assert.NoError(t, err, driver)
	}

	_, err := config.Dialector("oracle", "dsn")
	assert.Error(t, err)
}
