// apps/solver/internal/driver/driver.go
//
// Autoplay: the solver plays a simulated round turn by turn.
//
// Each turn:
//   1. Suggest a guess (or use the forced first guess).
//   2. Play it and read the feedback.
//   3. Eliminate answers inconsistent with the feedback.
// The loop stops when the round is won or lost.

package driver

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/pattern"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

// Turn records one played guess.
type Turn struct {
	Guess     pattern.Word    `json:"guess"`
	Pattern   pattern.Pattern `json:"pattern"`
	Score     float64         `json:"score"`
	Remaining int             `json:"remaining"` // answers left after elimination
	Removed   int             `json:"removed"`
}

// Transcript is the full record of an autoplay run.
type Transcript struct {
	Target    pattern.Word `json:"target"`
	Turns     []Turn       `json:"turns"`
	State     game.State   `json:"state"`
	ElapsedMs int64        `json:"elapsedMs"`
}

// Solved reports whether the run ended in a win.
func (t *Transcript) Solved() bool { return t.State == game.StateWon }

// Options tune a run.
type Options struct {
	FirstGuess pattern.Word // optional forced opening guess
	Logger     zerolog.Logger
	// OnTurn, if set, is called after every turn.
	OnTurn func(Turn)
}

// Run plays round to completion with sv. sv and round must share the same
// word length.
func Run(ctx context.Context, sv *solver.Solver, round *game.Round, opts Options) (*Transcript, error) {
	start := time.Now()
	tr := &Transcript{Target: round.Target}

	for !round.Finished {
		var sug solver.Suggestion
		if first := normalize(opts.FirstGuess); len(tr.Turns) == 0 && first != "" {
			score, err := sv.Score(first)
			if err != nil {
				return nil, fmt.Errorf("first guess: %w", err)
			}
			sug = solver.Suggestion{Guess: first, Score: score}
		} else {
			var err error
			if sug, err = sv.BestGuess(ctx); err != nil {
				return nil, fmt.Errorf("turn %d: %w", len(tr.Turns)+1, err)
			}
		}

		// The round lowercases what it is given; scoring and elimination
		// must see the same word.
		sug.Guess = normalize(sug.Guess)
		p, _, err := round.ApplyGuess(sug.Guess)
		if err != nil {
			return nil, fmt.Errorf("turn %d: play %q: %w", len(tr.Turns)+1, sug.Guess, err)
		}

		turn := Turn{Guess: sug.Guess, Pattern: p, Score: sug.Score}
		if p.Solved() {
			turn.Remaining = 1
		} else {
			if turn.Removed, err = sv.Eliminate(sug.Guess, p); err != nil {
				return nil, fmt.Errorf("turn %d: %w", len(tr.Turns)+1, err)
			}
			turn.Remaining = sv.Remaining()
		}
		tr.Turns = append(tr.Turns, turn)

		opts.Logger.Debug().
			Int("turn", len(tr.Turns)).
			Str("guess", string(turn.Guess)).
			Str("pattern", string(turn.Pattern)).
			Int("remaining", turn.Remaining).
			Msg("turn played")
		if opts.OnTurn != nil {
			opts.OnTurn(turn)
		}
	}

	tr.State = round.State()
	tr.ElapsedMs = time.Since(start).Milliseconds()
	return tr, nil
}

func normalize(w pattern.Word) pattern.Word {
	return pattern.Word(strings.ToLower(strings.TrimSpace(string(w))))
}
