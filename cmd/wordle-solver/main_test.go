package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/solver/internal/config"
)

func testConfig() *config.Config {
	c := config.Load()
	c.AnswersFile, c.AllowedFile = "", ""
	c.WordLength = 5
	c.Workers = 2
	return &c
}

func TestPatternCommand(t *testing.T) {
	cmd := newPatternCmd(testConfig())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"SPEED", "erase"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "*_**_\n", out.String())

	cmd.SetArgs([]string{"spee", "erase"})
	assert.Error(t, cmd.Execute())
}

func TestPlaySolverMode(t *testing.T) {
	lost := false
	cmd := newPlayCmd(testConfig(), zerolog.Nop(), &lost)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--mode", "solver", "--answer", "lemon", "--first-guess", "soare"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "Try 1: soare")
	assert.False(t, lost, out.String())
	assert.Contains(t, out.String(), "Solved in")
}

func TestPlaySolverModeUppercaseFirstGuess(t *testing.T) {
	lost := false
	cmd := newPlayCmd(testConfig(), zerolog.Nop(), &lost)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--mode", "solver", "--answer", "lemon", "--first-guess", "SOARE"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "Try 1: soare")
	assert.Contains(t, out.String(), "Solved in")
	assert.False(t, lost, out.String())
}

func TestPlayHumanMode(t *testing.T) {
	lost := false
	cmd := newPlayCmd(testConfig(), zerolog.Nop(), &lost)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader("zz\nqqqqq\ngrape\napple\n"))
	cmd.SetArgs([]string{"--mode", "human", "--answer", "apple"})
	require.NoError(t, cmd.Execute())

	s := out.String()
	assert.Contains(t, s, "Rejected")
	assert.Contains(t, s, "__**o")
	assert.Contains(t, s, "Solved in 2 tries.")
	assert.False(t, lost)
}

func TestPlayRejectsBadMode(t *testing.T) {
	lost := false
	cmd := newPlayCmd(testConfig(), zerolog.Nop(), &lost)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--mode", "robot"})
	assert.Error(t, cmd.Execute())
}
