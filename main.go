package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/assets"
	"github.com/robalobadob/wordle/apps/solver/internal/config"
	"github.com/robalobadob/wordle/apps/solver/internal/daily"
	"github.com/robalobadob/wordle/apps/solver/internal/database"
	"github.com/robalobadob/wordle/apps/solver/internal/httpserver"
	"github.com/robalobadob/wordle/apps/solver/internal/pattern"
	"github.com/robalobadob/wordle/apps/solver/internal/store"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	eng, err := pattern.NewEngine(cfg.WordLength)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid word length")
	}
	lists, err := words.Load(words.Source{
		AnswersFile: cfg.AnswersFile,
		AllowedFile: cfg.AllowedFile,
		Length:      cfg.WordLength,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}
	a, g := lists.Stats()
	log.Info().Int("answers", a).Int("allowed", g).Int("length", cfg.WordLength).Msg("word lists loaded")

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("dsn", cfg.DBPath).Msg("open database")
	}
	defer db.Close()
	mig, err := assets.Migrations()
	if err != nil {
		log.Fatal().Err(err).Msg("load migrations")
	}
	if err := database.Migrate(db, mig); err != nil {
		log.Fatal().Err(err).Msg("migrate")
	}

	srv := httpserver.New(httpserver.Deps{
		Config: cfg,
		Engine: eng,
		Words:  lists,
		Store:  store.NewMemoryStore(),
		Runs:   daily.NewStore(db),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go srv.RunSweeper(ctx, 10*time.Minute)

	log.Info().Str("port", cfg.Port).Int("workers", cfg.Workers).Msg("starting solver server")
	if err := srv.Start(ctx, ":"+cfg.Port); err != nil {
		log.Error().Err(err).Msg("server exited")
		return
	}
	log.Info().Msg("server stopped")
}
