package pattern

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(DefaultLength)
	require.NoError(t, err)
	return e
}

func TestComputeFixtures(t *testing.T) {
	e := newEngine(t)
	tests := []struct {
		guess, target string
		want          Pattern
	}{
		// no repeated letters
		{"table", "apple", "_*_oo"},
		{"grape", "apple", "__**o"},
		{"crane", "slate", "__o_o"},
		// repeated letters
		{"apple", "grape", "**__o"},
		{"abbey", "level", "___o_"},
		{"speed", "erase", "*_**_"},
		{"geese", "eerie", "_o*_o"},
		// three copies in the guess, two in the target
		{"eeeee", "level", "_o_o_"},
		{"level", "level", "ooooo"},
	}
	for _, tt := range tests {
		t.Run(tt.guess+"/"+tt.target, func(t *testing.T) {
			got, err := e.Compute(Word(tt.guess), Word(tt.target))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeLengthMismatch(t *testing.T) {
	e := newEngine(t)

	_, err := e.Compute("abc", "apple")
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = e.Compute("apple", "applesauce")
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestNewEngineRange(t *testing.T) {
	_, err := NewEngine(0)
	assert.Error(t, err)
	_, err = NewEngine(MaxLength + 1)
	assert.Error(t, err)

	e, err := NewEngine(3)
	require.NoError(t, err)
	p, err := e.Compute("aab", "aba")
	require.NoError(t, err)
	assert.Equal(t, Pattern("o**"), p)
}

var propertyWords = []Word{
	"apple", "grape", "table", "level", "eerie", "speed", "erase", "abbey",
	"geese", "crane", "slate", "mamma", "llama", "sassy", "fluff", "robot",
}

func TestComputeProperties(t *testing.T) {
	e := newEngine(t)
	for _, g := range propertyWords {
		for _, tgt := range propertyWords {
			p, err := e.Compute(g, tgt)
			require.NoError(t, err)
			require.Len(t, p, DefaultLength)

			same := 0
			for i := range g {
				if g[i] == tgt[i] {
					same++
				}
			}
			assert.Equal(t, same, p.Count(Correct), "%s vs %s", g, tgt)

			// Non-absent marks per letter never exceed occurrences in the target.
			marked := map[byte]int{}
			for i := range g {
				if p.At(i) != Absent {
					marked[g[i]]++
				}
			}
			for letter, n := range marked {
				assert.LessOrEqual(t, n, strings.Count(string(tgt), string(letter)),
					"%s vs %s letter %c", g, tgt, letter)
			}
		}
	}
}

func TestComputeIdentity(t *testing.T) {
	e := newEngine(t)
	for _, w := range propertyWords {
		p, err := e.Compute(w, w)
		require.NoError(t, err)
		assert.True(t, p.Solved())
		assert.Equal(t, AllCorrect(DefaultLength), p)
	}
}

func TestParse(t *testing.T) {
	p, err := Parse("_*o__", 5)
	require.NoError(t, err)
	assert.Equal(t, Pattern("_*o__"), p)

	p, err = Parse(" xyGgb ", 5)
	require.NoError(t, err)
	assert.Equal(t, Pattern("_*oo_"), p)

	_, err = Parse("_*o", 5)
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = Parse("_*o_z", 5)
	assert.ErrorIs(t, err, ErrInvalidSymbol)
}
