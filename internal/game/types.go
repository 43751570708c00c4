// apps/solver/internal/game/types.go
//
// Core type definitions for the simulated round the solver plays against.
// Defines:
//   - Mark:  per-letter result of a guess (hit/present/miss) for JSON clients.
//   - State: coarse round state.
//   - Game:  state for a single in-progress or finished round.

package game

import "github.com/robalobadob/wordle/apps/solver/internal/pattern"

// Mark represents the evaluation result for a single letter in a guess.
type Mark string

const (
	MarkHit     Mark = "hit"
	MarkPresent Mark = "present"
	MarkMiss    Mark = "miss"
)

// State is the round state reported after each guess.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Game holds the state of a single round.
type Game struct {
	Target   pattern.Word      // The hidden word (always lowercase).
	Rows     int               // Maximum number of guesses allowed (typically 6).
	Guesses  []pattern.Word    // Guesses made so far.
	Patterns []pattern.Pattern // Feedback for each guess.
	Finished bool              // True once the round is over (won or lost).
	Won      bool              // True if the round was finished with a win.
}

// Marks converts feedback symbols to JSON-friendly marks.
func Marks(p pattern.Pattern) []Mark {
	out := make([]Mark, len(p))
	for i := range out {
		switch p.At(i) {
		case pattern.Correct:
			out[i] = MarkHit
		case pattern.Present:
			out[i] = MarkPresent
		default:
			out[i] = MarkMiss
		}
	}
	return out
}
