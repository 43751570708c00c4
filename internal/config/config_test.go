package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("WORD_LENGTH", "")
	t.Setenv("SOLVER_TIMEOUT_SECONDS", "")

	c := Load()
	assert.Equal(t, "5175", c.Port)
	assert.Equal(t, 5, c.WordLength)
	assert.Equal(t, ":memory:", c.DBPath)
	assert.Equal(t, 30*time.Second, c.EvalTimeout)
	assert.Positive(t, c.Workers)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("WORD_LENGTH", "6")
	t.Setenv("SOLVER_WORKERS", "not-a-number")
	t.Setenv("SESSION_TTL_HOURS", "2")

	c := Load()
	assert.Equal(t, "9000", c.Port)
	assert.Equal(t, 6, c.WordLength)
	assert.Positive(t, c.Workers)
	assert.Equal(t, 2*time.Hour, c.SessionTTL)
}
