// Package eats provides read access to the externally managed
// business_location table, on PostgreSQL or MySQL.
package eats

import (
	"context"
	"fmt"
	"time"

	"github.com/courtside-labs/courtside/internal/domain/model"
	"github.com/courtside-labs/courtside/pkg/metrics"
)

// storeName labels this backend in metrics.
const storeName = "eats"

// Store is the read-only surface over business_location. One implementation
// per backend; queries differ only in placeholder and LIKE dialect.
type Store interface {
	// Search returns restaurants whose name contains namePattern
	// (case-insensitive) with a vote count in [minVotes, maxVotes],
	// ordered by votes descending. An empty pattern matches every row.
	Search(ctx context.Context, namePattern string, minVotes, maxVotes int) ([]model.Restaurant, error)

	// VoteRange returns the minimum and maximum vote counts, or ErrNoData
	// when the table is empty.
	VoteRange(ctx context.Context) (minVotes, maxVotes int, err error)

	// Locations returns the rows with non-NULL coordinates.
	Locations(ctx context.Context) ([]model.RestaurantLocation, error)

	// Close releases the connection pool.
	Close(ctx context.Context) error
}

// Open connects to the configured backend. Credentials travel only inside
// the DSN supplied by configuration.
func Open(ctx context.Context, driver, dsn string) (Store, error) {
	switch driver {
	case "postgres":
		return openPostgres(ctx, dsn)
	case "mysql":
		return openMySQL(ctx, dsn)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, driver)
	}
}

// observe records query latency for an operation; on error it also bumps
// the store error counter.
func observe(op string, start time.Time, err error) {
	metrics.RecordStoreQueryLatency(storeName, op, float64(time.Since(start).Milliseconds()))
	if err != nil {
		metrics.RecordStoreError(storeName, op)
	}
}
