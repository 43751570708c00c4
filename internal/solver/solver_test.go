package solver

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/solver/internal/candidates"
	"github.com/robalobadob/wordle/apps/solver/internal/pattern"
)

func engine(t *testing.T) *pattern.Engine {
	t.Helper()
	e, err := pattern.NewEngine(pattern.DefaultLength)
	require.NoError(t, err)
	return e
}

var fruit = []pattern.Word{"apple", "grape", "table"}

func TestBestGuessPicksMostDiscriminating(t *testing.T) {
	e := engine(t)
	answers := candidates.New("abcde", "abcdf", "abcdg")
	// zzzzz splits nothing, abcde splits 1/2, fgxyz splits 1/1/1.
	guesses := candidates.New("zzzzz", "abcde", "fgxyz")

	w, score, err := BestGuess(context.Background(), e, guesses, answers, 2)
	require.NoError(t, err)
	assert.Equal(t, pattern.Word("fgxyz"), w)
	assert.InDelta(t, 2.0, score, 1e-9)

	s, err := ScoreGuess(e, "abcde", answers)
	require.NoError(t, err)
	assert.InDelta(t, 4.0/3.0, s, 1e-9)

	s, err = ScoreGuess(e, "zzzzz", answers)
	require.NoError(t, err)
	assert.Zero(t, s)
}

func TestBestGuessTieBreakIsFirstSeen(t *testing.T) {
	e := engine(t)
	// Every fruit separates all three answers, so all score 2.
	for _, workers := range []int{1, 2, 8} {
		w, score, err := BestGuess(context.Background(), e, candidates.New(fruit...), candidates.New(fruit...), workers)
		require.NoError(t, err)
		assert.Equal(t, pattern.Word("apple"), w, "workers=%d", workers)
		assert.InDelta(t, 2.0, score, 1e-9)
	}

	reversed := candidates.New("table", "grape", "apple")
	w, _, err := BestGuess(context.Background(), e, reversed, candidates.New(fruit...), 3)
	require.NoError(t, err)
	assert.Equal(t, pattern.Word("table"), w)
}

func TestBestGuessSingleAnswer(t *testing.T) {
	e := engine(t)
	w, score, err := BestGuess(context.Background(), e, candidates.New("zzzzz"), candidates.New("grape"), 1)
	require.NoError(t, err)
	assert.Equal(t, pattern.Word("grape"), w)
	assert.Zero(t, score)
}

func TestBestGuessEmpty(t *testing.T) {
	e := engine(t)
	_, _, err := BestGuess(context.Background(), e, candidates.New(), candidates.New(fruit...), 1)
	assert.ErrorIs(t, err, ErrEmptyCandidateSet)
	_, _, err = BestGuess(context.Background(), e, candidates.New(fruit...), candidates.New(), 1)
	assert.ErrorIs(t, err, ErrEmptyCandidateSet)
}

func TestBestGuessCanceled(t *testing.T) {
	e := engine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := BestGuess(ctx, e, candidates.New(fruit...), candidates.New(fruit...), 2)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBestGuessRejectsWrongLength(t *testing.T) {
	e := engine(t)
	_, _, err := BestGuess(context.Background(), e, candidates.New("apples"), candidates.New(fruit...), 1)
	assert.ErrorIs(t, err, pattern.ErrLengthMismatch)
}

func TestBestGuessDoesNotMutate(t *testing.T) {
	e := engine(t)
	s, err := New(e, fruit, append([]pattern.Word{"zzzzz"}, fruit...), WithWorkers(4))
	require.NoError(t, err)

	_, err = s.BestGuess(context.Background())
	require.NoError(t, err)
	if diff := cmp.Diff(fruit, s.Answers()); diff != "" {
		t.Errorf("answers mutated (-want +got):\n%s", diff)
	}
	assert.Equal(t, 4, s.GuessesLeft())
}

func TestEliminate(t *testing.T) {
	e := engine(t)
	answers := candidates.New(fruit...)
	guesses := candidates.New(fruit...)

	// grape played against apple gives __**o.
	n, err := Eliminate(e, answers, guesses, "grape", "__**o", true)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 3, answers.Len())
	assert.Equal(t, 3, guesses.Len())

	n, err = Eliminate(e, answers, guesses, "grape", "__**o", false)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []pattern.Word{"apple"}, answers.Words())
	assert.Equal(t, []pattern.Word{"apple", "table"}, guesses.Words())
}

func TestEliminateValidatesBeforeMutating(t *testing.T) {
	e := engine(t)
	answers := candidates.New(fruit...)
	guesses := candidates.New(fruit...)

	_, err := Eliminate(e, answers, guesses, "grapes", "__**o", false)
	assert.ErrorIs(t, err, pattern.ErrLengthMismatch)
	_, err = Eliminate(e, answers, guesses, "grape", "__**", false)
	assert.ErrorIs(t, err, pattern.ErrLengthMismatch)
	_, err = Eliminate(e, answers, guesses, "grape", "__*zo", false)
	assert.ErrorIs(t, err, pattern.ErrInvalidSymbol)

	assert.Equal(t, 3, answers.Len())
	assert.Equal(t, 3, guesses.Len())
}

func TestEliminateRejectsWrongLengthAnswer(t *testing.T) {
	e := engine(t)
	answers := candidates.New("apple", "grapes", "table")
	guesses := candidates.New(fruit...)

	for _, dry := range []bool{true, false} {
		n, err := Eliminate(e, answers, guesses, "grape", "__**o", dry)
		assert.ErrorIs(t, err, pattern.ErrLengthMismatch)
		assert.Zero(t, n)
	}
	assert.Equal(t, []pattern.Word{"apple", "grapes", "table"}, answers.Words())
	assert.Equal(t, fruit, guesses.Words())
}

var pool = []pattern.Word{
	"apple", "grape", "table", "level", "eerie", "speed", "erase", "abbey",
	"geese", "crane", "slate", "llama", "sassy", "fluff", "robot", "lemon",
}

func TestEliminateKeepsTarget(t *testing.T) {
	e := engine(t)
	for _, target := range pool {
		for _, guess := range pool {
			answers := candidates.New(pool...)
			guesses := candidates.New(pool...)
			before := answers.Len()

			observed, err := e.Compute(guess, target)
			require.NoError(t, err)
			n, err := Eliminate(e, answers, guesses, guess, observed, false)
			require.NoError(t, err)

			assert.True(t, answers.Contains(target), "guess %s removed target %s", guess, target)
			assert.Equal(t, before-n, answers.Len())
			assert.False(t, guesses.Contains(guess))
		}
	}
}

func TestSolverConvergesOnEveryTarget(t *testing.T) {
	e := engine(t)
	for _, target := range pool {
		s, err := New(e, pool, pool, WithWorkers(3))
		require.NoError(t, err)

		solved := false
		for turn := 0; turn < len(pool) && !solved; turn++ {
			before := s.Remaining()
			sug, err := s.BestGuess(context.Background())
			require.NoError(t, err)

			observed, err := e.Compute(sug.Guess, target)
			require.NoError(t, err)
			if observed.Solved() {
				solved = true
				break
			}
			_, err = s.Eliminate(sug.Guess, observed)
			require.NoError(t, err)
			require.LessOrEqual(t, s.Remaining(), before)
			require.Contains(t, s.Answers(), target)
		}
		assert.True(t, solved, "target %s not found", target)
	}
}

func TestNewRejectsWrongLength(t *testing.T) {
	_, err := New(engine(t), []pattern.Word{"apple", "kiwi"}, fruit)
	assert.ErrorIs(t, err, pattern.ErrLengthMismatch)
}

func TestPreviewDoesNotMutate(t *testing.T) {
	s, err := New(engine(t), fruit, fruit)
	require.NoError(t, err)

	n, err := s.Preview("table", "_*_oo")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 3, s.Remaining())
	assert.Equal(t, 3, s.GuessesLeft())
}
