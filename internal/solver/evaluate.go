// apps/solver/internal/solver/evaluate.go
//
// Guess evaluation: pick the guess expected to eliminate the most
// remaining answers.
//
// For a guess g, every remaining answer a yields pattern(g, a). The
// answers are partitioned by that pattern; observing pattern p would
// eliminate N - |partition(p)| answers. The score of g is the average
// of that count over all answers:
//
//   score(g) = Σ_a (N - |partition(pattern(g, a))|) / N
//
// Ties keep the guess that comes first in the guess list's stored order.
// Guesses are scored in parallel but reduced in that order, so the
// result does not depend on the worker count.

package solver

import (
	"context"
	"errors"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle/apps/solver/internal/candidates"
	"github.com/robalobadob/wordle/apps/solver/internal/pattern"
)

// ErrEmptyCandidateSet is returned when a best guess is requested with
// no remaining guesses or answers.
var ErrEmptyCandidateSet = errors.New("empty candidate set")

// partition maps a pattern to the number of answers producing it.
// Scoped to a single guess evaluation.
type partition map[pattern.Pattern]int

// BestGuess scores every word in guesses against answers and returns the
// highest scoring one. workers <= 0 means runtime.NumCPU().
//
// Neither list is modified. When a single answer remains it is returned
// with score 0 without scoring any guess.
func BestGuess(ctx context.Context, eng *pattern.Engine, guesses, answers *candidates.List, workers int) (pattern.Word, float64, error) {
	if answers.Len() == 0 || guesses.Len() == 0 {
		evaluationsTotal.WithLabelValues("empty").Inc()
		return "", 0, ErrEmptyCandidateSet
	}
	if answers.Len() == 1 {
		evaluationsTotal.WithLabelValues("single").Inc()
		return answers.At(0), 0, nil
	}

	if err := checkLengths(eng, guesses, answers); err != nil {
		return "", 0, err
	}

	start := time.Now()
	scores, err := scoreAll(ctx, eng, guesses, answers, workers)
	if err != nil {
		evaluationsTotal.WithLabelValues("canceled").Inc()
		return "", 0, err
	}
	evaluationDuration.Observe(time.Since(start).Seconds())
	evaluationsTotal.WithLabelValues("ok").Inc()

	best, bestScore := 0, -1.0
	for i, s := range scores {
		if s > bestScore {
			best, bestScore = i, s
		}
	}
	return guesses.At(best), bestScore, nil
}

// ScoreGuess returns the score of a single guess against answers.
func ScoreGuess(eng *pattern.Engine, guess pattern.Word, answers *candidates.List) (float64, error) {
	if err := eng.CheckWord(guess); err != nil {
		return 0, err
	}
	if answers.Len() == 0 {
		return 0, ErrEmptyCandidateSet
	}
	if err := checkLengths(eng, answers); err != nil {
		return 0, err
	}
	return score(eng, guess, answers, make(partition, 64)), nil
}

// scoreAll fills one score slot per guess using a bounded worker pool.
// Each worker owns a contiguous range of slots.
func scoreAll(ctx context.Context, eng *pattern.Engine, guesses, answers *candidates.List, workers int) ([]float64, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	n := guesses.Len()
	if workers > n {
		workers = n
	}
	scores := make([]float64, n)
	chunk := (n + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			part := make(partition, 64)
			for i := lo; i < hi; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				scores[i] = score(eng, guesses.At(i), answers, part)
				clear(part)
			}
			guessesScored.Add(float64(hi - lo))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return scores, nil
}

// checkLengths rejects any word of the wrong length before scoring starts.
func checkLengths(eng *pattern.Engine, lists ...*candidates.List) error {
	var err error
	for _, l := range lists {
		l.Each(func(_ int, w pattern.Word) bool {
			err = eng.CheckWord(w)
			return err == nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// score assumes guess and every answer have the engine's length
// (see checkLengths). part must be empty on entry.
func score(eng *pattern.Engine, guess pattern.Word, answers *candidates.List, part partition) float64 {
	total := answers.Len()
	answers.Each(func(_ int, a pattern.Word) bool {
		p, _ := eng.Compute(guess, a)
		part[p]++
		return true
	})

	// Each distinct pattern is scored once and weighted by how many
	// answers produce it.
	var eliminated int
	for _, count := range part {
		eliminated += count * (total - count)
	}
	return float64(eliminated) / float64(total)
}
