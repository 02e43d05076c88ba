// internal/store/sqlite.go
//
// SQLite implementation of the Store interface.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout, immediate tx locks).
//   - Applying embedded migrations from sql/*.sql (idempotent, recorded in _migrations).
//   - Persisting rounds as rows; matches and words are JSON arrays.
//
// Update runs inside an immediate transaction, so two submissions on the
// same round are serialised by SQLite's write lock.

package store

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/vocab-jumble/internal/game"
)

//go:embed sql/*.sql
var migrations embed.FS

// SQLite is a Store backed by a SQLite database file.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (creating if missing) the database at path and applies
// pending migrations.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := openDB(path)
	if err != nil {
		return nil, err
	}
	if err := migrate(db, migrations); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLite{db: db}, nil
}

// Close releases the database handle.
func (s *SQLite) Close() error { return s.db.Close() }

// openDB opens a SQLite file, creating its parent directory if needed.
func openDB(dsn string) (*sql.DB, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL&_txlock=immediate")
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", dsn, err)
	}
	return db, nil
}

// migrate applies every sql/*.sql file in fsys in lexical order, skipping
// files already recorded in _migrations.
func migrate(db *sql.DB, fsys fs.FS) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	files, err := fs.Glob(fsys, "sql/*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		sqlBytes, err := fs.ReadFile(fsys, f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(sqlBytes)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Info().Str("migration", f).Msg("applied")
	}
	return nil
}

// Save inserts or replaces the round row.
func (s *SQLite) Save(ctx context.Context, r *game.Round) error {
	return saveRound(ctx, s.db, r)
}

// Get loads a round by ID.
func (s *SQLite) Get(ctx context.Context, id string) (*game.Round, error) {
	return loadRound(ctx, s.db, id)
}

// Update loads, mutates, and saves a round inside one transaction.
func (s *SQLite) Update(ctx context.Context, id string, fn func(r *game.Round) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	r, err := loadRound(ctx, tx, id)
	if err != nil {
		return err
	}
	if err := fn(r); err != nil {
		return err
	}
	if err := saveRound(ctx, tx, r); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Delete removes a round row.
func (s *SQLite) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM rounds WHERE id=?`, id); err != nil {
		return fmt.Errorf("delete round: %w", err)
	}
	return nil
}

// DeleteBefore removes rounds created before t and reports how many went.
func (s *SQLite) DeleteBefore(ctx context.Context, t time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM rounds WHERE created_at < ?`, t.UTC().Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("prune rounds: %w", err)
	}
	return res.RowsAffected()
}

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func saveRound(ctx context.Context, q querier, r *game.Round) error {
	matches, err := json.Marshal(nonNil(r.Matches))
	if err != nil {
		return fmt.Errorf("encode matches: %w", err)
	}
	words, err := json.Marshal(nonNil(r.Words))
	if err != nil {
		return fmt.Errorf("encode words: %w", err)
	}
	_, err = q.ExecContext(ctx, `
        INSERT INTO rounds (id, jumble, target, matches, words, created_at)
        VALUES (?, ?, ?, ?, ?, ?)
        ON CONFLICT(id) DO UPDATE SET
            jumble=excluded.jumble,
            target=excluded.target,
            matches=excluded.matches,
            words=excluded.words`,
		r.ID, r.Jumble, r.Target, string(matches), string(words), r.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save round: %w", err)
	}
	return nil
}

func loadRound(ctx context.Context, q querier, id string) (*game.Round, error) {
	var (
		r                       game.Round
		matches, words, created string
	)
	err := q.QueryRowContext(ctx,
		`SELECT id, jumble, target, matches, words, created_at FROM rounds WHERE id=?`, id,
	).Scan(&r.ID, &r.Jumble, &r.Target, &matches, &words, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load round: %w", err)
	}
	if err := json.Unmarshal([]byte(matches), &r.Matches); err != nil {
		return nil, fmt.Errorf("decode matches: %w", err)
	}
	if err := json.Unmarshal([]byte(words), &r.Words); err != nil {
		return nil, fmt.Errorf("decode words: %w", err)
	}
	if r.CreatedAt, err = time.Parse(time.RFC3339, created); err != nil {
		return nil, fmt.Errorf("decode created_at: %w", err)
	}
	return &r, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
