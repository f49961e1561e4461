// Package storage persists the whole training document as a single
// versioned snapshot row in a local SQLite database. Every engine mutation
// rewrites the row; a short history of previous snapshots is kept for
// recovery.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "modernc.org/sqlite"

	"github.com/meltforce/liftlog/internal/models"
)

// historyKeep is how many previous snapshots are retained.
const historyKeep = 10

// DB wraps the local snapshot database.
type DB struct {
	db *sql.DB
}

// Open opens (or creates) the snapshot database at the given path, creating
// parent directories as needed.
func Open(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data dir %s: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging snapshot db: %w", err)
	}
	return &DB{db: db}, nil
}

// Close closes the database.
func (d *DB) Close() error {
	return d.db.Close()
}

// RunMigrations applies all pending migrations from the given directory.
func RunMigrations(path, migrationsPath string) error {
	m, err := migrate.New("file://"+migrationsPath, "sqlite://"+path)
	if err != nil {
		return fmt.Errorf("creating migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}

// envelope is the persisted document shape: the state payload plus a schema
// version for forward migrations.
type envelope struct {
	State   *models.Document `json:"state"`
	Version int              `json:"version"`
}

// Load reads the current document. A database without a snapshot yet yields
// a fresh empty document.
func (d *DB) Load() (*models.Document, error) {
	var state string
	err := d.db.QueryRow(`SELECT state FROM document WHERE id = 1`).Scan(&state)
	if errors.Is(err, sql.ErrNoRows) {
		return models.NewDocument(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var env envelope
	if err := json.Unmarshal([]byte(state), &env); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	if env.State == nil {
		return models.NewDocument(), nil
	}
	if env.State.Settings.Units == "" {
		env.State.Settings = models.DefaultSettings()
	}
	return env.State, nil
}

// Save writes the document as the current snapshot and appends it to the
// history, pruning old entries.
func (d *DB) Save(doc *models.Document) error {
	data, err := json.Marshal(envelope{State: doc, Version: models.DocumentVersion})
	if err != nil {
		return fmt.Errorf("serializing snapshot: %w", err)
	}
	now := time.Now().UTC()

	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning snapshot tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	_, err = tx.Exec(
		`INSERT INTO document (id, version, state, updated_at) VALUES (1, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET version = excluded.version, state = excluded.state, updated_at = excluded.updated_at`,
		models.DocumentVersion, string(data), now)
	if err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}

	_, err = tx.Exec(
		`INSERT INTO snapshot_history (version, state, created_at) VALUES (?, ?, ?)`,
		models.DocumentVersion, string(data), now)
	if err != nil {
		return fmt.Errorf("writing snapshot history: %w", err)
	}
	_, err = tx.Exec(
		`DELETE FROM snapshot_history WHERE id NOT IN
		 (SELECT id FROM snapshot_history ORDER BY id DESC LIMIT ?)`, historyKeep)
	if err != nil {
		return fmt.Errorf("pruning snapshot history: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing snapshot: %w", err)
	}
	return nil
}

// HistoryEntry is one retained prior snapshot.
type HistoryEntry struct {
	ID        int64     `json:"id"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
}

// History lists retained snapshots, newest first.
func (d *DB) History() ([]HistoryEntry, error) {
	rows, err := d.db.Query(
		`SELECT id, version, created_at FROM snapshot_history ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var out []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		if err := rows.Scan(&e.ID, &e.Version, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning history: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// LoadHistory reads one retained snapshot by id.
func (d *DB) LoadHistory(id int64) (*models.Document, error) {
	var state string
	err := d.db.QueryRow(`SELECT state FROM snapshot_history WHERE id = ?`, id).Scan(&state)
	if err != nil {
		return nil, fmt.Errorf("reading history snapshot %d: %w", id, err)
	}
	var env envelope
	if err := json.Unmarshal([]byte(state), &env); err != nil {
		return nil, fmt.Errorf("parsing history snapshot %d: %w", id, err)
	}
	if env.State == nil {
		return models.NewDocument(), nil
	}
	return env.State, nil
}
