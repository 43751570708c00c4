// apps/solver/internal/httpserver/routes_solver.go
//
// Interactive solver sessions. The client plays a real game elsewhere and
// reports feedback here:
//   - POST /solver/new           → create a session, returns id + token
//   - GET  /solver/{id}          → remaining answers and applied feedback
//   - GET  /solver/{id}/suggest  → best next guess
//   - POST /solver/{id}/feedback → apply (or preview) observed feedback
// plus the stateless POST /pattern helper.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/pattern"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/store"
)

// listLimit caps how many remaining answers a response spells out.
const listLimit = 50

func (s *Server) mountSolver(r chi.Router) {
	r.Post("/solver/new", s.handleNewSession)
	r.Route("/solver/{id}", func(r chi.Router) {
		r.Use(s.requireSession)
		r.Get("/", s.handleSessionState)
		r.Get("/suggest", s.handleSuggest)
		r.Post("/feedback", s.handleFeedback)
	})
}

// newSolver builds a solver over the full word lists.
func (s *Server) newSolver() (*solver.Solver, error) {
	return solver.New(s.eng, s.words.Answers(), s.words.Allowed(),
		solver.WithWorkers(s.cfg.Workers),
		solver.WithLogger(log.Logger),
	)
}

// ------------------------------ pattern ------------------------------------

type patternReq struct {
	Guess  string `json:"guess"`
	Target string `json:"target"`
}
type patternRes struct {
	Pattern pattern.Pattern `json:"pattern"`
	Marks   []game.Mark     `json:"marks"`
}

func (s *Server) handlePattern(w http.ResponseWriter, r *http.Request) {
	var req patternReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	p, err := s.eng.Compute(normWord(req.Guess), normWord(req.Target))
	if err != nil {
		writeErrorDetail(w, http.StatusBadRequest, "length_mismatch", err)
		return
	}
	writeJSON(w, patternRes{Pattern: p, Marks: game.Marks(p)})
}

// ------------------------------ sessions -----------------------------------

type newSessionRes struct {
	SessionID   string `json:"sessionId"`
	Token       string `json:"token"`
	ExpiresAt   int64  `json:"expiresAt"`
	Remaining   int    `json:"remaining"`
	GuessesLeft int    `json:"guessesLeft"`
}

func (s *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	sv, err := s.newSolver()
	if err != nil {
		log.Error().Err(err).Msg("build solver")
		writeError(w, http.StatusInternalServerError, "solver_failed")
		return
	}
	sess := store.NewSession(sv)
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	tok, exp, err := s.signSessionToken(sess.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	log.Info().Str("session", sess.ID).Msg("session created")

	w.WriteHeader(http.StatusCreated)
	writeJSON(w, newSessionRes{
		SessionID:   sess.ID,
		Token:       tok,
		ExpiresAt:   exp.Unix(),
		Remaining:   sv.Remaining(),
		GuessesLeft: sv.GuessesLeft(),
	})
}

type sessionStateRes struct {
	SessionID   string           `json:"sessionId"`
	Remaining   int              `json:"remaining"`
	GuessesLeft int              `json:"guessesLeft"`
	Answers     []pattern.Word   `json:"answers,omitempty"` // only when few remain
	History     []store.Feedback `json:"history"`
}

func (s *Server) handleSessionState(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())
	var res sessionStateRes
	_ = sess.Do(func(sv *solver.Solver) error {
		res = sessionStateRes{
			SessionID:   sess.ID,
			Remaining:   sv.Remaining(),
			GuessesLeft: sv.GuessesLeft(),
			History:     sess.History(),
		}
		if sv.Remaining() <= listLimit {
			res.Answers = sv.Answers()
		}
		return nil
	})
	writeJSON(w, res)
}

type suggestRes struct {
	Guess     pattern.Word `json:"guess"`
	Score     float64      `json:"score"`
	Remaining int          `json:"remaining"`
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.EvalTimeout)
	defer cancel()

	var res suggestRes
	err := sess.Do(func(sv *solver.Solver) error {
		sug, err := sv.BestGuess(ctx)
		if err != nil {
			return err
		}
		res = suggestRes{Guess: sug.Guess, Score: sug.Score, Remaining: sv.Remaining()}
		return nil
	})
	switch {
	case err == nil:
		writeJSON(w, res)
	case errors.Is(err, solver.ErrEmptyCandidateSet):
		writeError(w, http.StatusConflict, "no_candidates")
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		writeError(w, http.StatusServiceUnavailable, "timeout")
	default:
		log.Error().Err(err).Str("session", sess.ID).Msg("suggest")
		writeError(w, http.StatusInternalServerError, "solver_failed")
	}
}

type feedbackReq struct {
	Guess   string `json:"guess"`
	Pattern string `json:"pattern"`
	DryRun  bool   `json:"dryRun"`
}
type feedbackRes struct {
	Removed   int            `json:"removed"`
	Remaining int            `json:"remaining"`
	Solved    bool           `json:"solved"`
	DryRun    bool           `json:"dryRun,omitempty"`
	Answers   []pattern.Word `json:"answers,omitempty"`
}

func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())
	var req feedbackReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	guess := normWord(req.Guess)
	if err := s.eng.CheckWord(guess); err != nil {
		writeErrorDetail(w, http.StatusBadRequest, "invalid_guess", err)
		return
	}
	observed, err := pattern.Parse(req.Pattern, s.eng.Length())
	if err != nil {
		writeErrorDetail(w, http.StatusBadRequest, "invalid_pattern", err)
		return
	}

	var res feedbackRes
	err = sess.Do(func(sv *solver.Solver) error {
		var n int
		var err error
		if req.DryRun {
			n, err = sv.Preview(guess, observed)
		} else {
			n, err = sv.Eliminate(guess, observed)
		}
		if err != nil {
			return err
		}
		if !req.DryRun {
			sess.Record(store.Feedback{Guess: guess, Pattern: observed, Removed: n})
		}
		res = feedbackRes{
			Removed:   n,
			Remaining: sv.Remaining(),
			Solved:    observed.Solved(),
			DryRun:    req.DryRun,
		}
		if !req.DryRun && sv.Remaining() <= listLimit {
			res.Answers = sv.Answers()
		}
		return nil
	})
	if err != nil {
		writeErrorDetail(w, http.StatusBadRequest, "feedback_rejected", err)
		return
	}
	if res.Remaining == 0 {
		log.Warn().Str("session", sess.ID).Msg("feedback eliminated every answer")
	}
	writeJSON(w, res)
}

// normWord lowercases and trims raw client input.
func normWord(s string) pattern.Word {
	return pattern.Word(strings.ToLower(strings.TrimSpace(s)))
}
