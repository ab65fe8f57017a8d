// Package league is the embedded relational store for players, contracts,
// performance stats, injuries, and teams.
package league

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/courtside-labs/courtside/pkg/logger"
	"github.com/courtside-labs/courtside/pkg/metrics"
)

// storeName labels this backend in metrics.
const storeName = "league"

// Store wraps the SQLite database file. A single *sql.DB pool is shared by
// all operations; the pool serializes access safely, so no same-thread
// enforcement is disabled anywhere.
type Store struct {
	db  *sql.DB
	log logger.Logger
}

// Option applies a configuration option to the Store.
type Option func(*Store)

// WithLogger sets a custom logger for the store.
func WithLogger(log logger.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// Open opens (creating if needed) the database file, verifies the
// connection, and bootstraps the schema.
func Open(ctx context.Context, path string, opts ...Option) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &Store{db: db}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logger.Named("league")
	}

	if err := s.bootstrap(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	s.log.Info(ctx, "league store opened", logger.String("path", path))
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// observe records query latency for an operation; on error it also bumps
// the store error counter.
func observe(op string, start time.Time, err error) {
	metrics.RecordStoreQueryLatency(storeName, op, float64(time.Since(start).Milliseconds()))
	if err != nil {
		metrics.RecordStoreError(storeName, op)
	}
}
