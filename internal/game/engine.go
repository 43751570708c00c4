// apps/solver/internal/game/engine.go
//
// Simulated Wordle round used as the solver's feedback source.
// Responsibilities:
//   - Create rounds with a fixed target (given, or picked from a seed).
//   - Validate guesses (length, alphabetic, allowed list).
//   - Score guesses with the pattern engine.
//   - Track state transitions: playing → won/lost.

package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/robalobadob/wordle/apps/solver/internal/daily"
	"github.com/robalobadob/wordle/apps/solver/internal/pattern"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// DefaultRows is the classic number of attempts.
const DefaultRows = 6

var (
	ErrFinished     = errors.New("game finished")
	ErrInvalidGuess = errors.New("invalid guess")
	ErrNotAllowed   = errors.New("not in word list")
	ErrUnknownWord  = errors.New("target is not an answer")
)

// Dictionary is the word lookup a round validates against.
type Dictionary interface {
	IsAllowed(w pattern.Word) bool
	IsAnswer(w pattern.Word) bool
	Answers() []pattern.Word
}

// Round is a Game bound to its engine and dictionary.
type Round struct {
	Game
	eng  *pattern.Engine
	dict Dictionary
}

var _ Dictionary = (*words.Lists)(nil)

// New starts a round against target. target must be an answer word.
func New(eng *pattern.Engine, dict Dictionary, target pattern.Word) (*Round, error) {
	target = pattern.Word(strings.ToLower(strings.TrimSpace(string(target))))
	if err := eng.CheckWord(target); err != nil {
		return nil, err
	}
	if !dict.IsAnswer(target) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWord, target)
	}
	return &Round{
		Game: Game{
			Target: target,
			Rows:   DefaultRows,
		},
		eng:  eng,
		dict: dict,
	}, nil
}

// NewSeeded starts a round whose target is chosen deterministically from
// seed and salt.
func NewSeeded(eng *pattern.Engine, dict Dictionary, seed, salt string) (*Round, error) {
	answers := dict.Answers()
	if len(answers) == 0 {
		return nil, words.ErrEmptyAnswers
	}
	return New(eng, dict, answers[daily.SeedIndex(seed, salt, len(answers))])
}

// ApplyGuess validates and scores a guess, mutating the round.
//
// Validation rules:
//   - Round must not be finished.
//   - Guess must have the engine's length and be alphabetic a–z.
//   - Guess must be present in the allowed list.
//
// State transitions:
//   - If every symbol is Correct → Finished = true, Won = true.
//   - Else if the number of guesses reaches Rows → Finished = true (loss).
func (r *Round) ApplyGuess(guess pattern.Word) (pattern.Pattern, State, error) {
	if r.Finished {
		return "", r.State(), ErrFinished
	}
	guess = pattern.Word(strings.ToLower(strings.TrimSpace(string(guess))))
	if r.eng.CheckWord(guess) != nil || !words.IsAlpha(string(guess)) {
		return "", r.State(), fmt.Errorf("%w: %q", ErrInvalidGuess, guess)
	}
	if !r.dict.IsAllowed(guess) {
		return "", r.State(), fmt.Errorf("%w: %q", ErrNotAllowed, guess)
	}

	p, err := r.eng.Compute(guess, r.Target)
	if err != nil {
		return "", r.State(), err
	}
	r.Guesses = append(r.Guesses, guess)
	r.Patterns = append(r.Patterns, p)

	if p.Solved() {
		r.Finished, r.Won = true, true
	} else if len(r.Guesses) >= r.Rows {
		r.Finished = true
	}
	return p, r.State(), nil
}

// State reports the current round state.
func (g *Game) State() State {
	if g.Finished {
		if g.Won {
			return StateWon
		}
		return StateLost
	}
	return StatePlaying
}
