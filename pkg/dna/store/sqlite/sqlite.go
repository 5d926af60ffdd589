// Package sqlite implements store.Store on SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/brandlens/dna/pkg/dna"
	"github.com/brandlens/dna/pkg/dna/internalerr"
	"github.com/brandlens/dna/pkg/dna/store"
)

type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite database with WAL mode enabled and initializes the
// schema.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection.
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS profiles (
	id TEXT PRIMARY KEY,
	source TEXT UNIQUE NOT NULL,
	created_at TEXT NOT NULL,
	dna_json TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_profiles_created ON profiles(created_at);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveProfile inserts or replaces the profile for its source.
func (s *sqliteStore) SaveProfile(ctx context.Context, p store.Profile) error {
	if p.ID == "" {
		return fmt.Errorf("save profile: empty id: %w", internalerr.ErrInvalidInput)
	}
	payload, err := json.Marshal(p.DNA)
	if err != nil {
		return fmt.Errorf("encode profile %s: %w", p.ID, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO profiles (id, source, created_at, dna_json)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(source) DO UPDATE SET
			id = excluded.id,
			created_at = excluded.created_at,
			dna_json = excluded.dna_json`,
		p.ID, p.Source, p.CreatedAt.UTC().Format(time.RFC3339Nano), payload)
	if err != nil {
		return fmt.Errorf("save profile %s: %w", p.ID, err)
	}
	return nil
}

// GetProfile returns a profile by ID.
func (s *sqliteStore) GetProfile(ctx context.Context, id string) (store.Profile, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, source, created_at, dna_json FROM profiles WHERE id = ?", id)
	p, err := scanProfile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Profile{}, fmt.Errorf("profile %s: %w", id, internalerr.ErrNotFound)
	}
	return p, err
}

// GetProfileBySource returns the profile stored for a source.
func (s *sqliteStore) GetProfileBySource(ctx context.Context, source string) (store.Profile, bool, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, source, created_at, dna_json FROM profiles WHERE source = ?", source)
	p, err := scanProfile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Profile{}, false, nil
	}
	if err != nil {
		return store.Profile{}, false, err
	}
	return p, true, nil
}

// ListProfiles returns up to limit profiles, newest first.
func (s *sqliteStore) ListProfiles(ctx context.Context, limit int) ([]store.Profile, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, source, created_at, dna_json FROM profiles ORDER BY created_at DESC, id DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProfile(row scanner) (store.Profile, error) {
	var p store.Profile
	var created string
	var payload []byte
	if err := row.Scan(&p.ID, &p.Source, &created, &payload); err != nil {
		return store.Profile{}, err
	}

	ts, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return store.Profile{}, fmt.Errorf("parse created_at for %s: %w", p.ID, err)
	}
	p.CreatedAt = ts

	var decoded dna.BrandDNA
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return store.Profile{}, fmt.Errorf("decode profile %s: %w", p.ID, err)
	}
	p.DNA = decoded
	return p, nil
}
