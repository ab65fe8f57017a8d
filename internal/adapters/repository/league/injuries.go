package league

import (
	"context"
	"fmt"
	"time"

	"github.com/courtside-labs/courtside/internal/domain/model"
)

// InsertInjury appends an injury row and returns its id.
func (s *Store) InsertInjury(ctx context.Context, in model.Injury) (id int64, err error) {
	start := time.Now()
	defer func() { observe("insert_injury", start, err) }()

	const q = `
		INSERT INTO injuries (player_id, type, start_date, end_date, games_missed, recurring)
		VALUES (?, ?, ?, ?, ?, ?)`

	res, err := s.db.ExecContext(ctx, q,
		in.PlayerID, in.Type, in.StartDate, in.EndDate, in.GamesMissed, boolToInt(in.Recurring))
	if err != nil {
		return 0, fmt.Errorf("failed to insert injury: %w", err)
	}
	return res.LastInsertId()
}

// ListInjuries returns all injury rows for a player, newest first.
func (s *Store) ListInjuries(ctx context.Context, playerID int64) (out []model.Injury, err error) {
	start := time.Now()
	defer func() { observe("list_injuries", start, err) }()

	const q = `
		SELECT id, player_id, type, start_date, end_date, games_missed, recurring
		FROM injuries
		WHERE player_id = ?
		ORDER BY id DESC`

	rows, err := s.db.QueryContext(ctx, q, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list injuries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var in model.Injury
		var recurring int
		if err := rows.Scan(&in.ID, &in.PlayerID, &in.Type, &in.StartDate, &in.EndDate, &in.GamesMissed, &recurring); err != nil {
			return nil, fmt.Errorf("failed to scan injury row: %w", err)
		}
		in.Recurring = recurring != 0
		out = append(out, in)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate injury rows: %w", err)
	}
	return out, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
