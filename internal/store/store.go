// Package store manages the embedded FleetDesk database: a local
// SQLite file whose schema is declared through versioned, additive
// goose migrations. The returned handle is injected into the data
// source; there is no module-level singleton, so tests run against
// independent in-memory instances.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/dmitrijs2005/fleetdesk/internal/common"
	"github.com/dmitrijs2005/fleetdesk/internal/store/migrations"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// Store owns the database connection for one FleetDesk instance.
type Store struct {
	db *sql.DB
}

// Open initializes (or upgrades) the database at dsn and returns a
// ready handle. It is idempotent: opening an already-migrated database
// applies nothing. Any failure wraps common.ErrStorageUnavailable;
// callers must treat it as fatal for the dependent screen, not retry
// silently.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}

	// Writes execute logically one at a time on a single connection;
	// this also keeps :memory: databases coherent across the pool.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}

	return &Store{db: db}, nil
}

// DB exposes the underlying connection for the data source and the
// session storage repositories.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close releases the connection. Normal operation never closes the
// store; this exists for tests and orderly shutdown.
func (s *Store) Close() error {
	return s.db.Close()
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		log.Fatal("failed to set goose dialect:", err)
	}

	return goose.UpContext(ctx, db, ".")
}
