// apps/solver/cmd/wordle-solver/main.go
//
// Command-line driver for the solver.
//
//   wordle-solver play --mode solver|human [--answers-file F] [--guesses-file F]
//                      [--answer WORD] [--first-guess WORD] [--seed S]
//   wordle-solver pattern GUESS TARGET
//   wordle-solver suggest
//
// Feedback is printed as plain symbols: '_' absent, '*' elsewhere, 'o' correct.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/internal/config"
)

// Exit codes.
const (
	exitOK    = 0
	exitLost  = 1
	exitError = 2
)

func main() {
	_ = godotenv.Load()
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg := config.Load()
	var verbose bool

	root := &cobra.Command{
		Use:           "wordle-solver",
		Short:         "Play or solve Wordle rounds from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			lvl, err := zerolog.ParseLevel(cfg.LogLevel)
			if err != nil {
				lvl = zerolog.InfoLevel
			}
			if verbose {
				lvl = zerolog.DebugLevel
			}
			zerolog.SetGlobalLevel(lvl)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")
	root.PersistentFlags().StringVar(&cfg.AnswersFile, "answers-file", cfg.AnswersFile, "file with the possible answers")
	root.PersistentFlags().StringVar(&cfg.AllowedFile, "guesses-file", cfg.AllowedFile, "file with the accepted guesses")
	root.PersistentFlags().IntVar(&cfg.Workers, "workers", cfg.Workers, "evaluation workers")

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()

	lost := false
	root.AddCommand(
		newPlayCmd(&cfg, logger, &lost),
		newPatternCmd(&cfg),
		newSuggestCmd(&cfg, logger),
	)
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return exitError
	}
	if lost {
		return exitLost
	}
	return exitOK
}
