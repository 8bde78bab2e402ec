// Package snapshot keeps a local sqlite copy of the records last fetched
// from the backend, plus small bits of session metadata (the refresh token).
// The copy is a read-only projection for offline viewing and export; it is
// never pushed back to the server.
package snapshot

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/storyline-app/storyline-cli/internal/client/snapshot/migrations"

	_ "modernc.org/sqlite"
)

// Store owns the snapshot database and its repositories.
type Store struct {
	db       *sql.DB
	Metadata *MetadataRepository
	Records  *RecordRepository
}

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating if needed) the snapshot database at dsn and brings
// its schema up to date.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot db: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{
		db:       db,
		Metadata: NewMetadataRepository(db),
		Records:  NewRecordRepository(db),
	}, nil
}

// DB exposes the underlying handle for transactional helpers.
func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) Close() error { return s.db.Close() }
