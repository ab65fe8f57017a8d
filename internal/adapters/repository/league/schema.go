package league

import (
	"context"
	"fmt"
)

// Schema statements, applied in order on every open. CREATE TABLE IF NOT
// EXISTS keeps the bootstrap idempotent. Nothing prevents duplicate season
// stats or overlapping contracts; reads resolve latest-insert-wins.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS players (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		position TEXT NOT NULL,
		team TEXT NOT NULL,
		height_cm INTEGER NOT NULL DEFAULT 0,
		weight_kg INTEGER NOT NULL DEFAULT 0,
		draft_year INTEGER NOT NULL DEFAULT 0,
		draft_pick INTEGER NOT NULL DEFAULT 0,
		drafted_team TEXT NOT NULL DEFAULT '',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS contracts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		player_id INTEGER NOT NULL REFERENCES players(id),
		annual_salary_millions REAL NOT NULL,
		years INTEGER NOT NULL,
		type TEXT NOT NULL,
		start_season TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS performance_stats (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		player_id INTEGER NOT NULL REFERENCES players(id),
		season TEXT NOT NULL,
		points_per_game REAL NOT NULL,
		per REAL NOT NULL,
		win_shares REAL NOT NULL,
		field_goal_pct REAL NOT NULL,
		games_played INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS injuries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		player_id INTEGER NOT NULL REFERENCES players(id),
		type TEXT NOT NULL,
		start_date TEXT NOT NULL,
		end_date TEXT NOT NULL DEFAULT '',
		games_missed INTEGER NOT NULL DEFAULT 0,
		recurring INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS teams (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		payroll_millions REAL NOT NULL,
		cap_space_millions REAL NOT NULL,
		luxury_tax INTEGER NOT NULL DEFAULT 0,
		conference TEXT NOT NULL DEFAULT ''
	)`,
}

// bootstrap creates any missing tables.
func (s *Store) bootstrap(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to bootstrap schema: %w", err)
		}
	}
	return nil
}
