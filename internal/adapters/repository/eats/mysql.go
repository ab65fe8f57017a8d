package eats

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/courtside-labs/courtside/internal/domain/model"
)

// mysqlStore implements Store over database/sql with the MySQL driver.
type mysqlStore struct {
	db *sql.DB
}

// openMySQL connects to MySQL and verifies the connection.
func openMySQL(ctx context.Context, dsn string) (*mysqlStore, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &mysqlStore{db: db}, nil
}

func (s *mysqlStore) Search(ctx context.Context, namePattern string, minVotes, maxVotes int) (out []model.Restaurant, err error) {
	start := time.Now()
	defer func() { observe("search", start, err) }()

	const q = `
		SELECT name, votes, city
		FROM business_location
		WHERE name LIKE CONCAT('%', ?, '%')
		AND votes BETWEEN ? AND ?
		ORDER BY votes DESC`

	rows, err := s.db.QueryContext(ctx, q, namePattern, minVotes, maxVotes)
	if err != nil {
		return nil, fmt.Errorf("failed to search restaurants: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var r model.Restaurant
		if err := rows.Scan(&r.Name, &r.Votes, &r.City); err != nil {
			return nil, fmt.Errorf("failed to scan restaurant row: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate restaurant rows: %w", err)
	}
	return out, nil
}

func (s *mysqlStore) VoteRange(ctx context.Context) (minVotes, maxVotes int, err error) {
	start := time.Now()
	defer func() { observe("vote_range", start, err) }()

	const q = `SELECT MIN(votes), MAX(votes) FROM business_location`

	var lo, hi sql.NullInt64
	if err = s.db.QueryRowContext(ctx, q).Scan(&lo, &hi); err != nil {
		return 0, 0, fmt.Errorf("failed to get vote range: %w", err)
	}
	if !lo.Valid || !hi.Valid {
		return 0, 0, ErrNoData
	}
	return int(lo.Int64), int(hi.Int64), nil
}

func (s *mysqlStore) Locations(ctx context.Context) (out []model.RestaurantLocation, err error) {
	start := time.Now()
	defer func() { observe("locations", start, err) }()

	const q = `
		SELECT name, latitude, longitude
		FROM business_location
		WHERE latitude IS NOT NULL
		AND longitude IS NOT NULL`

	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to load locations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var loc model.RestaurantLocation
		if err := rows.Scan(&loc.Name, &loc.Latitude, &loc.Longitude); err != nil {
			return nil, fmt.Errorf("failed to scan location row: %w", err)
		}
		out = append(out, loc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate location rows: %w", err)
	}
	return out, nil
}

func (s *mysqlStore) Close(_ context.Context) error {
	return s.db.Close()
}
