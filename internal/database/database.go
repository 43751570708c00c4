// apps/solver/internal/database/database.go
//
// SQLite helpers for the solver run log.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout, foreign keys).
//   - Applying migrations from an fs.FS of *.sql files (idempotent, recorded in _migrations).
//
// The default DSN is ":memory:", so the log lives only as long as the process.

package database

import (
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

// Open opens (and creates if missing) a SQLite database.
//
// An in-memory DSN is pinned to a single connection, otherwise every
// pooled connection would see its own empty database.
func Open(dsn string) (*sql.DB, error) {
	memory := dsn == ":memory:" || strings.Contains(dsn, "mode=memory")

	if !memory {
		// Ensure directory exists for ./data/solver.db, etc.
		dir := filepath.Dir(strings.TrimPrefix(dsn, "file:"))
		if dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("mkdir %s: %w", dir, err)
			}
		}
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	db, err := sql.Open("sqlite3", dsn+sep+"_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, err
	}
	if memory {
		db.SetMaxOpenConns(1)
	} else if _, err := db.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	return db, nil
}

// Migrate applies every *.sql file in migrations, in lexical order, each
// inside its own transaction. Applied names are kept in _migrations so
// reruns skip them.
func Migrate(db *sql.DB, migrations fs.FS) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	files, err := fs.Glob(migrations, "*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(files)

	for _, name := range files {
		var applied bool
		err := db.QueryRow(`SELECT EXISTS(SELECT 1 FROM _migrations WHERE name=?)`, name).Scan(&applied)
		if err != nil {
			return fmt.Errorf("query _migrations: %w", err)
		}
		if applied {
			log.Debug().Str("migration", name).Msg("already applied")
			continue
		}
		body, err := fs.ReadFile(migrations, name)
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		if err := applyMigration(db, name, string(body)); err != nil {
			return err
		}
		log.Info().Str("migration", name).Msg("applied")
	}
	return nil
}

func applyMigration(db *sql.DB, name, body string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(body); err != nil {
		return fmt.Errorf("apply %s: %w", name, err)
	}
	if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, name); err != nil {
		return fmt.Errorf("record %s: %w", name, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit %s: %w", name, err)
	}
	return nil
}
