package daily

import (
	"context"
	"database/sql"
)

// Run is one finished autoplay run.
type Run struct {
	ID         string `json:"id"`
	Date       string `json:"date"`
	Target     string `json:"target"`
	FirstGuess string `json:"firstGuess,omitempty"`
	Guesses    int    `json:"guesses"`
	Solved     bool   `json:"solved"`
	ElapsedMs  int64  `json:"elapsedMs"`
}

// Summary aggregates the runs of one date.
type Summary struct {
	Date       string  `json:"date"`
	Runs       int     `json:"runs"`
	Solved     int     `json:"solved"`
	AvgGuesses float64 `json:"avgGuesses"`
}

// Store records solver runs in the solver_runs table.
type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// InsertRun stores r. Re-inserting the same id is ignored.
func (s *Store) InsertRun(ctx context.Context, r Run) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO solver_runs(id, date, target, first_guess, guesses, solved, elapsed_ms)
		 VALUES(?,?,?,?,?,?,?)`,
		r.ID, r.Date, r.Target, r.FirstGuess, r.Guesses, r.Solved, r.ElapsedMs,
	)
	return err
}

// Recent returns the latest runs for date, newest first.
func (s *Store) Recent(ctx context.Context, date string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, date, target, first_guess, guesses, solved, elapsed_ms
		 FROM solver_runs
		 WHERE date=?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`, date, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Run, 0, limit)
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Date, &r.Target, &r.FirstGuess, &r.Guesses, &r.Solved, &r.ElapsedMs); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Summarize aggregates the runs of date. A date without runs yields a
// zero Summary.
func (s *Store) Summarize(ctx context.Context, date string) (Summary, error) {
	sum := Summary{Date: date}
	var avg sql.NullFloat64
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1), COALESCE(SUM(solved), 0), AVG(CASE WHEN solved THEN guesses END)
		 FROM solver_runs WHERE date=?`, date,
	).Scan(&sum.Runs, &sum.Solved, &avg)
	if err != nil {
		return Summary{}, err
	}
	sum.AvgGuesses = avg.Float64
	return sum, nil
}
