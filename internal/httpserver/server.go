// apps/solver/internal/httpserver/server.go
//
// HTTP server wiring for the solver service.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, access log).
//   - Public endpoints: "/", "/health", "/metrics", POST /pattern, POST /autoplay.
//   - Interactive sessions under /solver (token required per session).
//   - Daily solve + run summaries under /daily.
//   - Admin endpoints under /admin (bcrypt-checked key).
//
// Notes:
//   - Session tokens are HS256 JWTs whose "sid" claim must match the
//     session id in the URL.
//   - Admin routes answer 404 when ADMIN_KEY_HASH is unset.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/internal/config"
	"github.com/robalobadob/wordle/apps/solver/internal/daily"
	"github.com/robalobadob/wordle/apps/solver/internal/pattern"
	"github.com/robalobadob/wordle/apps/solver/internal/store"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// Deps are the collaborators a Server needs.
type Deps struct {
	Config config.Config
	Engine *pattern.Engine
	Words  *words.Lists
	Store  store.Store
	Runs   *daily.Store
}

// Server bundles router, session store and run log.
type Server struct {
	r     *chi.Mux
	cfg   config.Config
	eng   *pattern.Engine
	words *words.Lists
	store store.Store
	runs  *daily.Store
}

// New constructs a Server, installs middleware, and registers routes.
func New(d Deps) *Server {
	s := &Server{
		r:     chi.NewRouter(),
		cfg:   d.Config,
		eng:   d.Engine,
		words: d.Words,
		store: d.Store,
		runs:  d.Runs,
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(accessLog)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(s.cfg.EvalTimeout + 5*time.Second)) // evaluation has its own, shorter deadline
	s.r.Use(jsonContentType)
	s.r.Use(cors(s.cfg.ClientOrigin))

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"wordle-solver","endpoints":["/health","/metrics","POST /pattern","POST /solver/new","POST /autoplay","/daily/*"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Handle("/metrics", promhttp.Handler())
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		a, g := s.words.Stats()
		writeJSON(w, map[string]int{"answers": a, "allowed": g, "length": s.eng.Length()})
	})

	s.r.Post("/pattern", s.handlePattern)
	s.r.Post("/autoplay", s.handleAutoplay)
	s.mountSolver(s.r)
	s.mountDaily(s.r)
	s.mountAdmin(s.r)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})
	return s
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// Start serves HTTP on addr until ctx is done, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// RunSweeper drops expired sessions every interval until ctx is done.
func (s *Server) RunSweeper(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := s.store.Sweep(ctx, time.Now().Add(-s.cfg.SessionTTL)); n > 0 {
				log.Info().Int("sessions", n).Msg("swept expired sessions")
			}
		}
	}
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,DELETE,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Admin-Key")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// accessLog writes one structured line per request.
func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("took", time.Since(start)).
			Str("requestId", chimw.GetReqID(r.Context())).
			Msg("request")
	})
}

// ------------------------------- helpers ----------------------------------

// writeJSON encodes v as the response body.
func writeJSON(w http.ResponseWriter, v any) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

// writeError writes {"error": code} with status.
func writeError(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}

// writeErrorDetail is writeError with a human-readable detail.
func writeErrorDetail(w http.ResponseWriter, status int, code string, err error) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code, "detail": err.Error()})
}
