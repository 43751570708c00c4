package solver

import (
	"github.com/robalobadob/wordle/apps/solver/internal/candidates"
	"github.com/robalobadob/wordle/apps/solver/internal/pattern"
)

// inconsistent matches answers that would not have produced observed
// had they been the target of played. Lengths are checked by Eliminate.
type inconsistent struct {
	eng      *pattern.Engine
	played   pattern.Word
	observed pattern.Pattern
}

func (m inconsistent) Match(a pattern.Word) bool {
	p, _ := m.eng.Compute(m.played, a)
	return p != m.observed
}

// Eliminate removes every answer inconsistent with observing observed
// after playing played, removes played from guesses, and returns the
// number of answers removed. With dryRun nothing is mutated and the
// count is what a real call would remove.
//
// Inputs are validated before any list is touched.
func Eliminate(eng *pattern.Engine, answers, guesses *candidates.List, played pattern.Word, observed pattern.Pattern, dryRun bool) (int, error) {
	if err := eng.CheckWord(played); err != nil {
		return 0, err
	}
	if err := eng.CheckPattern(observed); err != nil {
		return 0, err
	}
	if err := checkLengths(eng, answers); err != nil {
		return 0, err
	}

	removed := answers.RemoveIf(inconsistent{eng: eng, played: played, observed: observed}, dryRun)
	if !dryRun {
		guesses.RemoveIf(candidates.Equals(played), false)
		answersEliminated.Add(float64(removed))
	}
	return removed, nil
}
