// internal/store/sqlite.go
//
// SQLite-backed Store.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout, foreign keys).
//   - Applying embedded migrations from sql/*.sql (idempotent, recorded in _migrations).
//   - Saving and loading game snapshots, one row per game.

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

	"github.com/robalobadob/wordle/apps/wordle-go/internal/game"
)

//go:embed sql/*.sql
var migrations embed.FS

// SQLiteStore persists snapshots in a games table.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if missing) the database at dsn and migrates it.
func OpenSQLite(dsn string) (*SQLiteStore, error) {
	db, err := openDB(dsn)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

// openDB ensures the parent directory exists for file DSNs, then opens the
// database with a busy timeout, WAL journaling and foreign keys enforced.
func openDB(dsn string) (*sql.DB, error) {
	if dsn != ":memory:" {
		dir := filepath.Dir(dsn)
		if dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("mkdir %s: %w", dir, err)
			}
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	// A single connection keeps ":memory:" databases shared across calls.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	return db, nil
}

// migrate applies embedded migrations in lexical order, each in its own
// transaction, skipping files already recorded in _migrations.
func migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	files, err := fs.Glob(migrations, "sql/*.sql")
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

		sqlBytes, err := migrations.ReadFile(f)
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

func (s *SQLiteStore) Save(ctx context.Context, snap game.Snapshot) error {
	guesses, err := json.Marshal(snap.Guesses)
	if err != nil {
		return fmt.Errorf("marshal guesses: %w", err)
	}
	if snap.Guesses == nil {
		guesses = []byte("[]")
	}
	_, err = s.db.ExecContext(ctx, `
        INSERT INTO games (id, mode, target, guesses, started_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?)
        ON CONFLICT(id) DO UPDATE SET guesses=excluded.guesses, updated_at=excluded.updated_at`,
		snap.ID, string(snap.Mode), snap.Target, string(guesses),
		snap.StartedAt.UTC().Format(time.RFC3339Nano), time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save game %s: %w", snap.ID, err)
	}
	return nil
}

func (s *SQLiteStore) Get(ctx context.Context, id string) (game.Snapshot, error) {
	var (
		snap    game.Snapshot
		mode    string
		guesses string
		started string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, mode, target, guesses, started_at FROM games WHERE id=?`, id,
	).Scan(&snap.ID, &mode, &snap.Target, &guesses, &started)
	if errors.Is(err, sql.ErrNoRows) {
		return game.Snapshot{}, ErrNotFound
	}
	if err != nil {
		return game.Snapshot{}, fmt.Errorf("get game %s: %w", id, err)
	}
	snap.Mode = game.Mode(mode)
	if err := json.Unmarshal([]byte(guesses), &snap.Guesses); err != nil {
		return game.Snapshot{}, fmt.Errorf("decode guesses for %s: %w", id, err)
	}
	if snap.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
		return game.Snapshot{}, fmt.Errorf("decode started_at for %s: %w", id, err)
	}
	return snap, nil
}

func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM games WHERE id=?`, id)
	return err
}

// Close closes the database.
func (s *SQLiteStore) Close() error { return s.db.Close() }
