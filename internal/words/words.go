// apps/solver/internal/words/words.go
//
// Word list loading for the solver and the simulated game.
//
// Word Lists:
//   - "answers": words that can be the hidden target.
//   - "allowed": words accepted as guesses (always includes answers).
//
// Load behavior:
//   1. If both AnswersFile and AllowedFile are set, load answers from the
//      first and extra guesses from the second.
//   2. If only AllowedFile is set, use that file for both.
//   3. If only AnswersFile is set, answers come from it and the embedded
//      extra guesses are added.
//   4. Otherwise fall back to the embedded lists in package assets.
//
// Constraints:
//   • Words must be exactly Length letters a–z; anything else is dropped.
//   • Lists are normalized to lowercase and de-duplicated, keeping the
//     first occurrence so file order decides solver tie-breaks.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/robalobadob/wordle/apps/solver/assets"
	"github.com/robalobadob/wordle/apps/solver/internal/pattern"
)

// ErrEmptyAnswers is returned when no valid answer survives loading.
var ErrEmptyAnswers = errors.New("words: answers list is empty")

// Source says where to read the lists from.
type Source struct {
	AnswersFile string // WORDS_ANSWERS_FILE
	AllowedFile string // WORDS_ALLOWED_FILE
	Length      int    // WORD_LENGTH
}

// Lists holds the loaded word lists.
type Lists struct {
	answers    []pattern.Word
	allowed    []pattern.Word // answers first, then extra guesses
	answersSet map[pattern.Word]struct{}
	allowedSet map[pattern.Word]struct{}
}

// Load reads the lists described by src.
func Load(src Source) (*Lists, error) {
	if src.Length <= 0 {
		src.Length = pattern.DefaultLength
	}

	var ansRaw, allowRaw []string
	var err error
	switch {
	case src.AnswersFile != "" && src.AllowedFile != "":
		if ansRaw, err = readWordFile(src.AnswersFile); err != nil {
			return nil, err
		}
		if allowRaw, err = readWordFile(src.AllowedFile); err != nil {
			return nil, err
		}

	case src.AnswersFile == "" && src.AllowedFile != "":
		if allowRaw, err = readWordFile(src.AllowedFile); err != nil {
			return nil, err
		}
		ansRaw = allowRaw

	case src.AnswersFile != "":
		if ansRaw, err = readWordFile(src.AnswersFile); err != nil {
			return nil, err
		}
		if allowRaw, err = assets.AllowedList(); err != nil {
			return nil, fmt.Errorf("embedded allowed list: %w", err)
		}

	default:
		if ansRaw, err = assets.AnswersList(); err != nil {
			return nil, fmt.Errorf("embedded answers list: %w", err)
		}
		if allowRaw, err = assets.AllowedList(); err != nil {
			return nil, fmt.Errorf("embedded allowed list: %w", err)
		}
	}

	return FromStrings(ansRaw, allowRaw, src.Length)
}

// FromStrings builds Lists from in-memory words, applying the same
// normalization as Load.
func FromStrings(answers, allowed []string, length int) (*Lists, error) {
	l := &Lists{}
	l.answers = normalize(answers, length)
	if len(l.answers) == 0 {
		return nil, ErrEmptyAnswers
	}
	l.answersSet = toSet(l.answers)

	// Ensure all answers are also allowed, and come first.
	l.allowed = append([]pattern.Word{}, l.answers...)
	l.allowedSet = toSet(l.answers)
	for _, w := range normalize(allowed, length) {
		if _, ok := l.allowedSet[w]; !ok {
			l.allowedSet[w] = struct{}{}
			l.allowed = append(l.allowed, w)
		}
	}
	return l, nil
}

// readWordFile loads one word per line, skipping blanks and # comments.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		out = append(out, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return out, nil
}

// normalize lowercases, validates and de-duplicates raw words.
func normalize(raw []string, length int) []pattern.Word {
	out := make([]pattern.Word, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, s := range raw {
		w := strings.TrimSpace(strings.ToLower(s))
		if len(w) != length || !IsAlpha(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, pattern.Word(w))
	}
	return out
}

// toSet converts a list of words into a lookup set.
func toSet(list []pattern.Word) map[pattern.Word]struct{} {
	m := make(map[pattern.Word]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// IsAlpha reports whether s is all lowercase ASCII letters.
func IsAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Answers returns the answer list in load order. Callers must not modify it.
func (l *Lists) Answers() []pattern.Word { return l.answers }

// Allowed returns every accepted guess: answers first, then the rest.
// Callers must not modify it.
func (l *Lists) Allowed() []pattern.Word { return l.allowed }

// IsAllowed reports whether w is a valid guess (answers ∪ guesses).
func (l *Lists) IsAllowed(w pattern.Word) bool {
	_, ok := l.allowedSet[pattern.Word(strings.ToLower(string(w)))]
	return ok
}

// IsAnswer reports whether w is an answer word.
func (l *Lists) IsAnswer(w pattern.Word) bool {
	_, ok := l.answersSet[pattern.Word(strings.ToLower(string(w)))]
	return ok
}

// Stats returns counts of loaded words: (answers, allowed).
func (l *Lists) Stats() (answersCount int, allowedCount int) {
	return len(l.answers), len(l.allowed)
}
