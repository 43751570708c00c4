// apps/solver/internal/pattern/pattern.go
//
// Value types shared by the whole solver.
// Defines:
//   - Word:    a fixed-length guess or answer (lowercase a–z).
//   - Symbol:  per-letter feedback (absent / present elsewhere / correct).
//   - Pattern: a feedback sequence, one Symbol per letter.
//
// Pattern is a string-backed value type so identical feedback always
// compares equal and can key a map regardless of which word produced it.

package pattern

import (
	"errors"
	"fmt"
	"strings"
)

// Symbol is the feedback for one letter of a guess.
type Symbol byte

const (
	Absent  Symbol = '_' // letter not in the target (or all copies used up)
	Present Symbol = '*' // letter in the target at another position
	Correct Symbol = 'o' // letter in the correct position
)

// Word is a fixed-length letter sequence, the unit of guesses and answers.
type Word string

// Pattern is the feedback sequence for a guess against a target.
type Pattern string

var (
	// ErrLengthMismatch is returned when a word or pattern does not have
	// the configured word length.
	ErrLengthMismatch = errors.New("length mismatch")
	// ErrInvalidSymbol is returned when parsing feedback containing a
	// character outside the symbol alphabet.
	ErrInvalidSymbol = errors.New("invalid pattern symbol")
)

// At returns the symbol at position i.
func (p Pattern) At(i int) Symbol { return Symbol(p[i]) }

// Count returns how many positions hold s.
func (p Pattern) Count(s Symbol) int {
	return strings.Count(string(p), string(rune(s)))
}

// Solved reports whether every position is Correct.
func (p Pattern) Solved() bool {
	return len(p) > 0 && p.Count(Correct) == len(p)
}

// Parse validates raw feedback of the given length.
//
// Besides the canonical '_', '*' and 'o' it accepts the common
// colour shorthands: 'x'/'b'/'-' for absent, 'y'/'?' for present and
// 'g'/'+' for correct (case-insensitive).
func Parse(raw string, length int) (Pattern, error) {
	raw = strings.TrimSpace(raw)
	if len(raw) != length {
		return "", fmt.Errorf("%w: pattern %q has %d symbols, want %d", ErrLengthMismatch, raw, len(raw), length)
	}
	out := make([]byte, length)
	for i := 0; i < length; i++ {
		switch raw[i] {
		case '_', 'x', 'X', 'b', 'B', '-':
			out[i] = byte(Absent)
		case '*', 'y', 'Y', '?':
			out[i] = byte(Present)
		case 'o', 'O', 'g', 'G', '+':
			out[i] = byte(Correct)
		default:
			return "", fmt.Errorf("%w: %q at position %d", ErrInvalidSymbol, raw[i], i)
		}
	}
	return Pattern(out), nil
}

// AllCorrect returns the winning pattern for the given length.
func AllCorrect(length int) Pattern {
	return Pattern(strings.Repeat(string(rune(Correct)), length))
}
