// apps/solver/internal/pattern/engine.go
//
// Feedback computation between a guess and a target word.
//
// Compute implements the classic two-pass Wordle rule:
//   Pass 1: positions where guess and target agree are Correct, and the
//           target letter there is consumed.
//   Pass 2: every other guess letter takes the leftmost unconsumed
//           matching target letter (Present) or is Absent.
//
// The number of non-Absent marks for a letter therefore never exceeds
// its number of occurrences in the target.

package pattern

import "fmt"

const (
	// DefaultLength is the classic Wordle word length.
	DefaultLength = 5
	// MaxLength bounds the configurable word length so the hot path can
	// use fixed-size stack buffers.
	MaxLength = 32
)

// Engine computes patterns for one configured word length.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	length int
}

// NewEngine returns an engine for words of exactly length letters.
func NewEngine(length int) (*Engine, error) {
	if length < 1 || length > MaxLength {
		return nil, fmt.Errorf("pattern: word length %d out of range 1..%d", length, MaxLength)
	}
	return &Engine{length: length}, nil
}

// Length returns the configured word length.
func (e *Engine) Length() int { return e.length }

// CheckWord returns ErrLengthMismatch if w is not of the configured length.
func (e *Engine) CheckWord(w Word) error {
	if len(w) != e.length {
		return fmt.Errorf("%w: word %q has %d letters, want %d", ErrLengthMismatch, w, len(w), e.length)
	}
	return nil
}

// CheckPattern returns ErrLengthMismatch if p is not of the configured
// length and ErrInvalidSymbol if it holds anything but '_', '*' and 'o'.
func (e *Engine) CheckPattern(p Pattern) error {
	if len(p) != e.length {
		return fmt.Errorf("%w: pattern %q has %d symbols, want %d", ErrLengthMismatch, p, len(p), e.length)
	}
	for i := 0; i < len(p); i++ {
		switch p.At(i) {
		case Absent, Present, Correct:
		default:
			return fmt.Errorf("%w: %q at position %d", ErrInvalidSymbol, p[i], i)
		}
	}
	return nil
}

// Compute returns the feedback for guess played against target.
func (e *Engine) Compute(guess, target Word) (Pattern, error) {
	if err := e.CheckWord(guess); err != nil {
		return "", err
	}
	if err := e.CheckWord(target); err != nil {
		return "", err
	}
	return e.compute(guess, target), nil
}

// compute assumes both words have already been length-checked.
func (e *Engine) compute(guess, target Word) Pattern {
	n := e.length
	var (
		res      [MaxLength]byte
		consumed [MaxLength]bool
	)

	// First pass: exact matches.
	for i := 0; i < n; i++ {
		if guess[i] == target[i] {
			res[i] = byte(Correct)
			consumed[i] = true
		}
	}

	// Second pass: leftmost unconsumed target letter, else absent.
	for i := 0; i < n; i++ {
		if res[i] == byte(Correct) {
			continue
		}
		res[i] = byte(Absent)
		for j := 0; j < n; j++ {
			if !consumed[j] && guess[i] == target[j] {
				res[i] = byte(Present)
				consumed[j] = true
				break
			}
		}
	}
	return Pattern(res[:n])
}
