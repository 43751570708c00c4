// apps/solver/internal/candidates/list.go
//
// Ordered word collection backing the candidate answer and guess sets.
//
// Characteristics:
//   - Keeps insertion order; iteration and removal preserve it.
//   - RemoveIf filters in place and returns the matched count; with
//     dryRun it only counts.
//   - Not safe for concurrent mutation. Concurrent readers are fine as
//     long as nobody mutates (the evaluator relies on this).

package candidates

import "github.com/robalobadob/wordle/apps/solver/internal/pattern"

// Matcher selects words for removal. Implementations carry their
// comparison data as fields.
type Matcher interface {
	Match(w pattern.Word) bool
}

// Equals matches exactly one word.
type Equals pattern.Word

// Match reports whether w is the word carried by e.
func (e Equals) Match(w pattern.Word) bool { return w == pattern.Word(e) }

// List is an ordered, growable sequence of words.
type List struct {
	words []pattern.Word
}

// New returns a list holding a copy of words in the given order.
func New(words ...pattern.Word) *List {
	l := &List{words: make([]pattern.Word, 0, len(words))}
	l.Append(words...)
	return l
}

// Append adds words at the end.
func (l *List) Append(words ...pattern.Word) {
	l.words = append(l.words, words...)
}

// Len returns the number of words.
func (l *List) Len() int { return len(l.words) }

// At returns the word at index i.
func (l *List) At(i int) pattern.Word { return l.words[i] }

// Each calls fn for every word in stored order until fn returns false.
func (l *List) Each(fn func(i int, w pattern.Word) bool) {
	for i, w := range l.words {
		if !fn(i, w) {
			return
		}
	}
}

// Words returns a copy of the stored words.
func (l *List) Words() []pattern.Word {
	out := make([]pattern.Word, len(l.words))
	copy(out, l.words)
	return out
}

// Contains reports whether w is present.
func (l *List) Contains(w pattern.Word) bool {
	for _, x := range l.words {
		if x == w {
			return true
		}
	}
	return false
}

// RemoveIf removes every word m matches and returns how many matched.
// When dryRun is set the list is left untouched.
func (l *List) RemoveIf(m Matcher, dryRun bool) int {
	if dryRun {
		n := 0
		for _, w := range l.words {
			if m.Match(w) {
				n++
			}
		}
		return n
	}

	kept := l.words[:0]
	for _, w := range l.words {
		if !m.Match(w) {
			kept = append(kept, w)
		}
	}
	removed := len(l.words) - len(kept)
	// clear the tail so dropped strings can be collected
	for i := len(kept); i < len(l.words); i++ {
		l.words[i] = ""
	}
	l.words = kept
	return removed
}
