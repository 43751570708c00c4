package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/solver/internal/pattern"
)

func TestLoadEmbedded(t *testing.T) {
	l, err := Load(Source{})
	require.NoError(t, err)

	a, g := l.Stats()
	assert.Greater(t, a, 100)
	assert.Greater(t, g, a)
	assert.True(t, l.IsAnswer("apple"))
	assert.True(t, l.IsAllowed("APPLE"))
	assert.True(t, l.IsAllowed("soare"))
	assert.False(t, l.IsAnswer("soare"))
	for _, w := range l.Allowed() {
		assert.Len(t, w, pattern.DefaultLength)
	}
}

func TestFromStringsNormalizes(t *testing.T) {
	l, err := FromStrings(
		[]string{" Apple ", "grape", "kiwi", "gr4pe", "apple", "table"},
		[]string{"soare", "table", "toolong"},
		5,
	)
	require.NoError(t, err)
	assert.Equal(t, []pattern.Word{"apple", "grape", "table"}, l.Answers())
	assert.Equal(t, []pattern.Word{"apple", "grape", "table", "soare"}, l.Allowed())
}

func TestFromStringsEmpty(t *testing.T) {
	_, err := FromStrings([]string{"kiwi"}, nil, 5)
	assert.ErrorIs(t, err, ErrEmptyAnswers)
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	ans := filepath.Join(dir, "answers.txt")
	all := filepath.Join(dir, "allowed.txt")
	require.NoError(t, os.WriteFile(ans, []byte("# answers\nabc\nbcd\n\n"), 0o644))
	require.NoError(t, os.WriteFile(all, []byte("cde\nabc\n"), 0o644))

	l, err := Load(Source{AnswersFile: ans, AllowedFile: all, Length: 3})
	require.NoError(t, err)
	assert.Equal(t, []pattern.Word{"abc", "bcd"}, l.Answers())
	assert.Equal(t, []pattern.Word{"abc", "bcd", "cde"}, l.Allowed())

	l, err = Load(Source{AllowedFile: all, Length: 3})
	require.NoError(t, err)
	assert.Equal(t, []pattern.Word{"cde", "abc"}, l.Answers())

	_, err = Load(Source{AnswersFile: filepath.Join(dir, "missing.txt"), AllowedFile: all})
	assert.Error(t, err)
}
