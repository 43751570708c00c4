// apps/solver/internal/httpserver/routes_daily.go
//
// HTTP routes for the daily word:
//   - GET /daily/solve   → the solver's transcript on today's word
//   - GET /daily/summary → run statistics for today (or ?date=YYYY-MM-DD)
//
// The daily word is HMAC(DAILY_SALT, date) over the answer list, so the
// transcript for a date never changes and is computed once per process.

package httpserver

import (
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/internal/daily"
	"github.com/robalobadob/wordle/apps/solver/internal/driver"
	"github.com/robalobadob/wordle/apps/solver/internal/game"
)

// dailyServer caches one transcript per date.
type dailyServer struct {
	srv   *Server
	mu    sync.Mutex // guards cache
	cache map[string]dailySolve
}

type dailySolve struct {
	Date      string             `json:"date"`
	WordIndex int                `json:"wordIndex"`
	RunID     string             `json:"runId"`
	Result    *driver.Transcript `json:"result"`
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	dd := &dailyServer{srv: s, cache: make(map[string]dailySolve)}
	r.Route("/daily", func(r chi.Router) {
		r.Get("/solve", dd.handleSolve)
		r.Get("/summary", dd.handleSummary)
	})
}

func (d *dailyServer) handleSolve(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()
	date := daily.DateKey(now)

	// Holding the lock across the solve keeps concurrent first requests
	// from solving the same word twice.
	d.mu.Lock()
	defer d.mu.Unlock()
	if ds, ok := d.cache[date]; ok {
		writeJSON(w, ds)
		return
	}

	answers := d.srv.words.Answers()
	idx := daily.WordIndex(now, d.srv.cfg.DailySalt, len(answers))
	round, err := game.New(d.srv.eng, d.srv.words, answers[idx])
	if err != nil {
		log.Error().Err(err).Msg("daily round")
		writeError(w, http.StatusInternalServerError, "daily_failed")
		return
	}
	runID, tr, err := d.srv.autoplay(r.Context(), round, "")
	if err != nil {
		d.srv.writePlayError(w, err)
		return
	}
	ds := dailySolve{Date: date, WordIndex: idx, RunID: runID, Result: tr}
	d.cache[date] = ds
	writeJSON(w, ds)
}

type summaryRes struct {
	daily.Summary
	Recent []daily.Run `json:"recent"`
}

func (d *dailyServer) handleSummary(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = daily.DateKey(time.Now())
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		writeError(w, http.StatusBadRequest, "bad_date")
		return
	}

	sum, err := d.srv.runs.Summarize(r.Context(), date)
	if err != nil {
		log.Error().Err(err).Msg("daily summary")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	recent, err := d.srv.runs.Recent(r.Context(), date, 20)
	if err != nil {
		log.Error().Err(err).Msg("daily recent")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	writeJSON(w, summaryRes{Summary: sum, Recent: recent})
}
