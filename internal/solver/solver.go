// apps/solver/internal/solver/solver.go
//
// A solving session: the candidate answer set, the candidate guess set
// and the operations a driver calls each turn.
//
// Lifecycle:
//   - New copies the initial word lists (answers shrink, guesses lose
//     played words).
//   - BestGuess suggests the next guess without touching either set.
//   - Eliminate applies real feedback.
//
// A Solver is owned by one session and is not safe for concurrent use.

package solver

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/apps/solver/internal/candidates"
	"github.com/robalobadob/wordle/apps/solver/internal/pattern"
)

// Suggestion is the outcome of one evaluation.
type Suggestion struct {
	Guess pattern.Word `json:"guess"`
	Score float64      `json:"score"`
}

// Option configures a Solver.
type Option func(*Solver)

// WithWorkers bounds the evaluation worker pool (<= 0 means NumCPU).
func WithWorkers(n int) Option { return func(s *Solver) { s.workers = n } }

// WithLogger attaches a logger; the default discards everything.
func WithLogger(l zerolog.Logger) Option { return func(s *Solver) { s.log = l } }

// Solver holds the mutable state of one solving session.
type Solver struct {
	eng     *pattern.Engine
	answers *candidates.List
	guesses *candidates.List
	workers int
	log     zerolog.Logger
}

// New validates every word against the engine length and builds a
// session over copies of answers and guesses.
func New(eng *pattern.Engine, answers, guesses []pattern.Word, opts ...Option) (*Solver, error) {
	for _, w := range answers {
		if err := eng.CheckWord(w); err != nil {
			return nil, err
		}
	}
	for _, w := range guesses {
		if err := eng.CheckWord(w); err != nil {
			return nil, err
		}
	}
	s := &Solver{
		eng:     eng,
		answers: candidates.New(answers...),
		guesses: candidates.New(guesses...),
		log:     zerolog.Nop(),
	}
	for _, o := range opts {
		o(s)
	}
	return s, nil
}

// Engine returns the pattern engine the session was built with.
func (s *Solver) Engine() *pattern.Engine { return s.eng }

// Remaining returns the number of candidate answers left.
func (s *Solver) Remaining() int { return s.answers.Len() }

// GuessesLeft returns the number of guesses that may still be suggested.
func (s *Solver) GuessesLeft() int { return s.guesses.Len() }

// Answers returns a copy of the remaining candidate answers.
func (s *Solver) Answers() []pattern.Word { return s.answers.Words() }

// BestGuess returns the guess expected to eliminate the most answers.
func (s *Solver) BestGuess(ctx context.Context) (Suggestion, error) {
	start := time.Now()
	w, score, err := BestGuess(ctx, s.eng, s.guesses, s.answers, s.workers)
	if err != nil {
		return Suggestion{}, err
	}
	s.log.Debug().
		Int("guesses", s.guesses.Len()).
		Int("answers", s.answers.Len()).
		Str("best", string(w)).
		Float64("score", score).
		Dur("took", time.Since(start)).
		Msg("evaluated guesses")
	return Suggestion{Guess: w, Score: score}, nil
}

// Score returns the score guess would get against the remaining answers.
func (s *Solver) Score(guess pattern.Word) (float64, error) {
	return ScoreGuess(s.eng, guess, s.answers)
}

// Eliminate applies the feedback observed for played.
func (s *Solver) Eliminate(played pattern.Word, observed pattern.Pattern) (int, error) {
	n, err := Eliminate(s.eng, s.answers, s.guesses, played, observed, false)
	if err != nil {
		return 0, err
	}
	s.log.Debug().
		Str("guess", string(played)).
		Str("pattern", string(observed)).
		Int("removed", n).
		Int("remaining", s.answers.Len()).
		Msg("eliminated answers")
	return n, nil
}

// Preview reports how many answers Eliminate would remove without
// changing the session.
func (s *Solver) Preview(played pattern.Word, observed pattern.Pattern) (int, error) {
	return Eliminate(s.eng, s.answers, s.guesses, played, observed, true)
}
