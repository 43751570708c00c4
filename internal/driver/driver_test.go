package driver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/pattern"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

func setup(t *testing.T) (*pattern.Engine, *words.Lists) {
	t.Helper()
	eng, err := pattern.NewEngine(pattern.DefaultLength)
	require.NoError(t, err)
	lists, err := words.FromStrings(
		[]string{"apple", "grape", "table", "level", "eerie", "speed", "crane", "slate", "llama", "lemon"},
		[]string{"soare", "roate"},
		pattern.DefaultLength,
	)
	require.NoError(t, err)
	return eng, lists
}

func TestRunSolvesEveryAnswer(t *testing.T) {
	eng, lists := setup(t)
	for _, target := range lists.Answers() {
		sv, err := solver.New(eng, lists.Answers(), lists.Allowed(), solver.WithWorkers(2))
		require.NoError(t, err)
		round, err := game.New(eng, lists, target)
		require.NoError(t, err)

		var seen int
		tr, err := Run(context.Background(), sv, round, Options{OnTurn: func(Turn) { seen++ }})
		require.NoError(t, err)

		assert.True(t, tr.Solved(), "target %s: %+v", target, tr.Turns)
		assert.Equal(t, target, tr.Target)
		assert.Equal(t, len(tr.Turns), seen)
		last := tr.Turns[len(tr.Turns)-1]
		assert.Equal(t, target, last.Guess)
		assert.True(t, last.Pattern.Solved())

		for i := 1; i < len(tr.Turns); i++ {
			assert.LessOrEqual(t, tr.Turns[i].Remaining, tr.Turns[i-1].Remaining)
		}
	}
}

func TestRunForcedFirstGuess(t *testing.T) {
	eng, lists := setup(t)
	sv, err := solver.New(eng, lists.Answers(), lists.Allowed())
	require.NoError(t, err)
	round, err := game.New(eng, lists, "lemon")
	require.NoError(t, err)

	tr, err := Run(context.Background(), sv, round, Options{FirstGuess: "roate"})
	require.NoError(t, err)
	assert.Equal(t, pattern.Word("roate"), tr.Turns[0].Guess)
	assert.Equal(t, pattern.Pattern("_*__*"), tr.Turns[0].Pattern)
	assert.True(t, tr.Solved())
}

func TestRunRejectsInvalidFirstGuess(t *testing.T) {
	eng, lists := setup(t)
	sv, err := solver.New(eng, lists.Answers(), lists.Allowed())
	require.NoError(t, err)
	round, err := game.New(eng, lists, "lemon")
	require.NoError(t, err)

	_, err = Run(context.Background(), sv, round, Options{FirstGuess: "roa"})
	assert.ErrorIs(t, err, pattern.ErrLengthMismatch)

	_, err = Run(context.Background(), sv, round, Options{FirstGuess: "zzzzz"})
	assert.ErrorIs(t, err, game.ErrNotAllowed)
}

func TestRunNormalizesFirstGuess(t *testing.T) {
	eng, lists := setup(t)
	sv, err := solver.New(eng, lists.Answers(), lists.Allowed())
	require.NoError(t, err)
	round, err := game.New(eng, lists, "lemon")
	require.NoError(t, err)

	var first Turn
	tr, err := Run(context.Background(), sv, round, Options{
		FirstGuess: " ROATE ",
		OnTurn: func(turn Turn) {
			if first.Guess == "" {
				first = turn
			}
		},
	})
	require.NoError(t, err)
	assert.Equal(t, pattern.Word("roate"), first.Guess)
	assert.Positive(t, first.Remaining)
	assert.True(t, tr.Solved())
}
