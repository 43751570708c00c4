package solver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	evaluationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "wordle_solver_evaluation_duration_seconds",
		Help:    "Time spent selecting the best guess",
		Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
	})

	evaluationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wordle_solver_evaluations_total",
		Help: "Best-guess evaluations by outcome",
	}, []string{"outcome"})

	guessesScored = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wordle_solver_guesses_scored_total",
		Help: "Candidate guesses scored against the remaining answers",
	})

	answersEliminated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wordle_solver_answers_eliminated_total",
		Help: "Candidate answers removed by elimination",
	})
)
