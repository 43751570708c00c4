package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/internal/daily"
	"github.com/robalobadob/wordle/apps/solver/internal/driver"
	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/pattern"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

// autoplayReq selects the target: an explicit answer, else a seed, else
// the request id as seed.
type autoplayReq struct {
	Answer     string `json:"answer"`
	Seed       string `json:"seed"`
	FirstGuess string `json:"firstGuess"`
}
type autoplayRes struct {
	RunID string `json:"runId"`
	*driver.Transcript
}

func (s *Server) handleAutoplay(w http.ResponseWriter, r *http.Request) {
	var req autoplayReq
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_json")
			return
		}
	}

	var (
		round *game.Round
		err   error
	)
	if req.Answer != "" {
		round, err = game.New(s.eng, s.words, normWord(req.Answer))
	} else {
		seed := req.Seed
		if seed == "" {
			seed = chimw.GetReqID(r.Context()) + time.Now().String()
		}
		round, err = game.NewSeeded(s.eng, s.words, seed, s.cfg.DailySalt)
	}
	if err != nil {
		writeErrorDetail(w, http.StatusBadRequest, "invalid_answer", err)
		return
	}

	runID, tr, err := s.autoplay(r.Context(), round, normWord(req.FirstGuess))
	if err != nil {
		s.writePlayError(w, err)
		return
	}
	writeJSON(w, autoplayRes{RunID: runID, Transcript: tr})
}

// autoplay runs the solver on round and records the run.
func (s *Server) autoplay(ctx context.Context, round *game.Round, first pattern.Word) (string, *driver.Transcript, error) {
	sv, err := s.newSolver()
	if err != nil {
		return "", nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.cfg.EvalTimeout)
	defer cancel()

	tr, err := driver.Run(ctx, sv, round, driver.Options{FirstGuess: first, Logger: log.Logger})
	if err != nil {
		return "", nil, err
	}

	runID := uuid.NewString()
	run := daily.Run{
		ID:         runID,
		Date:       daily.DateKey(time.Now()),
		Target:     string(tr.Target),
		FirstGuess: string(first),
		Guesses:    len(tr.Turns),
		Solved:     tr.Solved(),
		ElapsedMs:  tr.ElapsedMs,
	}
	// Recording is best effort; the transcript is still returned.
	if err := s.runs.InsertRun(context.WithoutCancel(ctx), run); err != nil {
		log.Warn().Err(err).Str("run", runID).Msg("record run")
	}
	log.Info().
		Str("run", runID).
		Str("target", run.Target).
		Int("guesses", run.Guesses).
		Bool("solved", run.Solved).
		Int64("elapsedMs", run.ElapsedMs).
		Msg("autoplay finished")
	return runID, tr, nil
}

// writePlayError maps driver errors to responses.
func (s *Server) writePlayError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		writeError(w, http.StatusServiceUnavailable, "timeout")
	case errors.Is(err, pattern.ErrLengthMismatch), errors.Is(err, game.ErrNotAllowed), errors.Is(err, game.ErrInvalidGuess):
		writeErrorDetail(w, http.StatusBadRequest, "invalid_first_guess", err)
	case errors.Is(err, solver.ErrEmptyCandidateSet):
		writeError(w, http.StatusConflict, "no_candidates")
	default:
		log.Error().Err(err).Msg("autoplay")
		writeError(w, http.StatusInternalServerError, "solver_failed")
	}
}

// ------------------------------ admin --------------------------------------

type sessionInfo struct {
	SessionID string    `json:"sessionId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (s *Server) mountAdmin(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(s.requireAdmin)
		r.Get("/sessions", func(w http.ResponseWriter, r *http.Request) {
			all, err := s.store.List(r.Context())
			if err != nil {
				writeError(w, http.StatusInternalServerError, "list_failed")
				return
			}
			out := make([]sessionInfo, 0, len(all))
			for _, sess := range all {
				out = append(out, sessionInfo{SessionID: sess.ID, CreatedAt: sess.CreatedAt})
			}
			writeJSON(w, out)
		})
		r.Delete("/sessions/{id}", func(w http.ResponseWriter, r *http.Request) {
			if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
				writeError(w, http.StatusNotFound, "session_not_found")
				return
			}
			writeJSON(w, map[string]bool{"ok": true})
		})
		r.Post("/sweep", func(w http.ResponseWriter, r *http.Request) {
			n := s.store.Sweep(r.Context(), time.Now().Add(-s.cfg.SessionTTL))
			writeJSON(w, map[string]int{"swept": n})
		})
	})
}
