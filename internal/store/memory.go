// apps/solver/internal/store/memory.go
//
// In-memory store of interactive solver sessions.
//
// Characteristics:
//   - Sessions keyed by uuid in a map guarded by an RWMutex.
//   - Each Session carries its own mutex: a solver is owned by one
//     session and its operations run one at a time.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/robalobadob/wordle/apps/solver/internal/pattern"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

// ErrNotFound is returned for unknown session ids.
var ErrNotFound = errors.New("not found")

// Feedback is one observation applied to a session.
type Feedback struct {
	Guess   pattern.Word    `json:"guess"`
	Pattern pattern.Pattern `json:"pattern"`
	Removed int             `json:"removed"`
}

// Session is one interactive solving session.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu      sync.Mutex
	solver  *solver.Solver
	history []Feedback
}

// NewSession wraps sv in a session with a fresh id.
func NewSession(sv *solver.Solver) *Session {
	return &Session{ID: uuid.NewString(), CreatedAt: time.Now().UTC(), solver: sv}
}

// Do runs fn with exclusive access to the session's solver.
func (s *Session) Do(fn func(sv *solver.Solver) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.solver)
}

// Record appends applied feedback. Callers must hold the session via Do.
func (s *Session) Record(f Feedback) { s.history = append(s.history, f) }

// History returns a copy of the applied feedback. Callers must hold the
// session via Do.
func (s *Session) History() []Feedback {
	return append([]Feedback(nil), s.history...)
}

// Store defines the session registry.
type Store interface {
	Save(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*Session, error)
	// Sweep drops sessions created before cutoff and returns how many.
	Sweep(ctx context.Context, cutoff time.Time) int
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex        // guards sessions map
	sessions map[string]*Session // keyed by Session.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*Session)}
}

func (m *memory) Save(ctx context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(m.sessions, id)
	return nil
}

// List returns every session, oldest first.
func (m *memory) List(ctx context.Context) ([]*Session, error) {
	m.mu.RLock()
	out := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		out = append(out, s)
	}
	m.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *memory) Sweep(ctx context.Context, cutoff time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, s := range m.sessions {
		if s.CreatedAt.Before(cutoff) {
			delete(m.sessions, id)
			n++
		}
	}
	return n
}
