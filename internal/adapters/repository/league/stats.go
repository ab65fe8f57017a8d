package league

import (
	"context"
	"fmt"
	"time"

	"github.com/courtside-labs/courtside/internal/domain/model"
)

// InsertStat appends a player-season stat row and returns its id. Nothing
// prevents a second row for the same season; reads pick the newest insert.
func (s *Store) InsertStat(ctx context.Context, st model.PerformanceStat) (id int64, err error) {
	start := time.Now()
	defer func() { observe("insert_stat", start, err) }()

	const q = `
		INSERT INTO performance_stats (player_id, season, points_per_game, per, win_shares, field_goal_pct, games_played)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	res, err := s.db.ExecContext(ctx, q,
		st.PlayerID, st.Season, st.PointsPerGame, st.PER, st.WinShares, st.FieldGoalPct, st.GamesPlayed)
	if err != nil {
		return 0, fmt.Errorf("failed to insert stat: %w", err)
	}
	return res.LastInsertId()
}

// ListStats returns all stat rows for a player, newest season first.
func (s *Store) ListStats(ctx context.Context, playerID int64) (out []model.PerformanceStat, err error) {
	start := time.Now()
	defer func() { observe("list_stats", start, err) }()

	const q = `
		SELECT id, player_id, season, points_per_game, per, win_shares, field_goal_pct, games_played
		FROM performance_stats
		WHERE player_id = ?
		ORDER BY season DESC, id DESC`

	rows, err := s.db.QueryContext(ctx, q, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var st model.PerformanceStat
		if err := rows.Scan(&st.ID, &st.PlayerID, &st.Season, &st.PointsPerGame, &st.PER, &st.WinShares, &st.FieldGoalPct, &st.GamesPlayed); err != nil {
			return nil, fmt.Errorf("failed to scan stat row: %w", err)
		}
		out = append(out, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate stat rows: %w", err)
	}
	return out, nil
}
