package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/robalobadob/wordle/apps/solver/internal/store"
)

// ctxSessionKey is the context key for the authorized *store.Session.
type ctxSessionKey struct{}

// signSessionToken creates an HS256 JWT bound to one session id.
func (s *Server) signSessionToken(id string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(s.cfg.SessionTTL)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": id,
		"exp": exp.Unix(),
		"iat": now.Unix(),
	})
	ss, err := t.SignedString([]byte(s.cfg.JWTSecret))
	return ss, exp, err
}

// parseSessionToken verifies tok and returns its session id.
func (s *Server) parseSessionToken(tok string) (string, error) {
	claims := jwt.MapClaims{}
	t, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !t.Valid {
		return "", errors.New("invalid token")
	}
	sid, _ := claims["sid"].(string)
	if sid == "" {
		return "", errors.New("invalid token")
	}
	return sid, nil
}

// requireSession loads the session named by {id} after checking that the
// bearer token was issued for it.
func (s *Server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tok := bearer(r)
		if tok == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		sid, err := s.parseSessionToken(tok)
		if err != nil || sid != chi.URLParam(r, "id") {
			writeError(w, http.StatusUnauthorized, "invalid_token")
			return
		}
		sess, err := s.store.Get(r.Context(), sid)
		if err != nil {
			writeError(w, http.StatusNotFound, "session_not_found")
			return
		}
		ctx := context.WithValue(r.Context(), ctxSessionKey{}, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionFrom returns the session placed in ctx by requireSession.
func sessionFrom(ctx context.Context) *store.Session {
	sess, _ := ctx.Value(ctxSessionKey{}).(*store.Session)
	return sess
}

// requireAdmin checks X-Admin-Key against the configured bcrypt hash.
// Without a configured hash the admin surface does not exist.
func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.cfg.AdminKeyHash == "" {
			writeError(w, http.StatusNotFound, "not_found")
			return
		}
		key := r.Header.Get("X-Admin-Key")
		if key == "" || bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminKeyHash), []byte(key)) != nil {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// bearer extracts the token from "Authorization: Bearer <token>".
func bearer(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	return ""
}
