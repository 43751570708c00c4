package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/internal/config"
	"github.com/robalobadob/wordle/apps/solver/internal/driver"
	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/pattern"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

const legend = ` _ : letter not in the word
 * : letter elsewhere in the word
 o : letter in the right place`

// load builds the engine and word lists from cfg.
func load(cfg *config.Config) (*pattern.Engine, *words.Lists, error) {
	eng, err := pattern.NewEngine(cfg.WordLength)
	if err != nil {
		return nil, nil, err
	}
	lists, err := words.Load(words.Source{
		AnswersFile: cfg.AnswersFile,
		AllowedFile: cfg.AllowedFile,
		Length:      cfg.WordLength,
	})
	if err != nil {
		return nil, nil, err
	}
	return eng, lists, nil
}

func newPlayCmd(cfg *config.Config, logger zerolog.Logger, lost *bool) *cobra.Command {
	var mode, answer, firstGuess, seed string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play one round, yourself (human) or by the solver",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if mode != "solver" && mode != "human" {
				return fmt.Errorf("invalid mode %q (want solver or human)", mode)
			}
			eng, lists, err := load(cfg)
			if err != nil {
				return err
			}
			firstGuess = strings.ToLower(strings.TrimSpace(firstGuess))
			if firstGuess != "" {
				if err := eng.CheckWord(pattern.Word(firstGuess)); err != nil {
					return fmt.Errorf("first guess: %w", err)
				}
			}

			var round *game.Round
			if answer != "" {
				round, err = game.New(eng, lists, pattern.Word(answer))
			} else {
				if seed == "" {
					seed = time.Now().UTC().Format(time.RFC3339Nano)
				}
				round, err = game.NewSeeded(eng, lists, seed, cfg.DailySalt)
			}
			if err != nil {
				return err
			}
			logger.Debug().Str("target", string(round.Target)).Msg("round started")

			sv, err := solver.New(eng, lists.Answers(), lists.Allowed(),
				solver.WithWorkers(cfg.Workers), solver.WithLogger(logger))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wordle: %d tries to find the hidden word.\n%s\n\n", round.Rows, legend)

			if mode == "solver" {
				err = playSolver(cmd.Context(), out, sv, round, pattern.Word(firstGuess), cfg.EvalTimeout, logger)
			} else {
				err = playHuman(out, cmd.InOrStdin(), sv, round)
			}
			if err != nil {
				return err
			}

			if round.Won {
				fmt.Fprintf(out, "Solved in %d tries.\n", len(round.Guesses))
			} else {
				fmt.Fprintf(out, "Out of tries. The word was: %s\n", round.Target)
				*lost = true
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "solver", "solver or human")
	cmd.Flags().StringVar(&answer, "answer", "", "hidden word (random from --seed when empty)")
	cmd.Flags().StringVar(&firstGuess, "first-guess", "", "opening guess (solver mode)")
	cmd.Flags().StringVar(&seed, "seed", "", "seed for picking the hidden word")
	return cmd
}

func playSolver(ctx context.Context, out io.Writer, sv *solver.Solver, round *game.Round, first pattern.Word, timeout time.Duration, logger zerolog.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, timeout*time.Duration(round.Rows))
	defer cancel()

	_, err := driver.Run(ctx, sv, round, driver.Options{
		FirstGuess: first,
		Logger:     logger,
		OnTurn: func(t driver.Turn) {
			fmt.Fprintf(out, "Try %d: %s\n        %s   (score %.2f, %d left)\n\n",
				len(round.Guesses), t.Guess, t.Pattern, t.Score, t.Remaining)
		},
	})
	return err
}

func playHuman(out io.Writer, in io.Reader, sv *solver.Solver, round *game.Round) error {
	sc := bufio.NewScanner(in)
	for !round.Finished {
		fmt.Fprintf(out, "Try %d: ", len(round.Guesses)+1)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return err
			}
			return errors.New("input closed before the round ended")
		}
		guess := pattern.Word(strings.ToLower(strings.TrimSpace(sc.Text())))
		p, _, err := round.ApplyGuess(guess)
		if err != nil {
			fmt.Fprintf(out, "Rejected: %v\n", err)
			continue
		}
		if !p.Solved() {
			if _, err := sv.Eliminate(guess, p); err != nil {
				return err
			}
		}
		fmt.Fprintf(out, "        %s   (%d possible answers)\n\n", p, sv.Remaining())
	}
	return nil
}

func newPatternCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "pattern GUESS TARGET",
		Short: "Print the feedback GUESS gets against TARGET",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := pattern.NewEngine(cfg.WordLength)
			if err != nil {
				return err
			}
			p, err := eng.Compute(
				pattern.Word(strings.ToLower(args[0])),
				pattern.Word(strings.ToLower(args[1])),
			)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), p)
			return nil
		},
	}
}

func newSuggestCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest",
		Short: "Print the best opening guess for the loaded lists",
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, lists, err := load(cfg)
			if err != nil {
				return err
			}
			sv, err := solver.New(eng, lists.Answers(), lists.Allowed(),
				solver.WithWorkers(cfg.Workers), solver.WithLogger(logger))
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx, cancel := context.WithTimeout(ctx, cfg.EvalTimeout)
			defer cancel()

			sug, err := sv.BestGuess(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %.4f\n", sug.Guess, sug.Score)
			return nil
		},
	}
}
