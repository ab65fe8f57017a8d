package league

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/courtside-labs/courtside/internal/domain/model"
)

// ListPlayers returns all players joined with their latest season stat
// line. Players without stats carry a nil Latest. Duplicate season rows
// resolve to the newest insert.
func (s *Store) ListPlayers(ctx context.Context) (out []model.PlayerSeason, err error) {
	start := time.Now()
	defer func() { observe("list_players", start, err) }()

	const q = `
		SELECT p.id, p.name, p.position, p.team,
		       p.height_cm, p.weight_kg, p.draft_year, p.draft_pick, p.drafted_team,
		       s.id, s.season, s.points_per_game, s.per, s.win_shares, s.field_goal_pct, s.games_played
		FROM players p
		LEFT JOIN performance_stats s ON s.id = (
			SELECT s2.id FROM performance_stats s2
			WHERE s2.player_id = p.id
			ORDER BY s2.season DESC, s2.id DESC
			LIMIT 1
		)
		ORDER BY p.id`

	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ps model.PlayerSeason
		var (
			statID  sql.NullInt64
			season  sql.NullString
			ppg     sql.NullFloat64
			per     sql.NullFloat64
			ws      sql.NullFloat64
			fgPct   sql.NullFloat64
			gamesPl sql.NullInt64
		)
		if err := rows.Scan(
			&ps.Player.ID, &ps.Player.Name, &ps.Player.Position, &ps.Player.Team,
			&ps.Player.HeightCM, &ps.Player.WeightKG, &ps.Player.DraftYear, &ps.Player.DraftPick, &ps.Player.DraftedTeam,
			&statID, &season, &ppg, &per, &ws, &fgPct, &gamesPl,
		); err != nil {
			return nil, fmt.Errorf("failed to scan player row: %w", err)
		}
		if statID.Valid {
			ps.Latest = &model.PerformanceStat{
				ID:            statID.Int64,
				PlayerID:      ps.Player.ID,
				Season:        season.String,
				PointsPerGame: nullFloat(ppg),
				PER:           nullFloat(per),
				WinShares:     nullFloat(ws),
				FieldGoalPct:  nullFloat(fgPct),
				GamesPlayed:   int(gamesPl.Int64),
			}
		}
		out = append(out, ps)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate player rows: %w", err)
	}
	return out, nil
}

// GetPlayer returns one player by id.
func (s *Store) GetPlayer(ctx context.Context, id int64) (p model.Player, err error) {
	start := time.Now()
	defer func() { observe("get_player", start, err) }()

	const q = `
		SELECT id, name, position, team, height_cm, weight_kg, draft_year, draft_pick, drafted_team
		FROM players WHERE id = ?`

	err = s.db.QueryRowContext(ctx, q, id).Scan(
		&p.ID, &p.Name, &p.Position, &p.Team,
		&p.HeightCM, &p.WeightKG, &p.DraftYear, &p.DraftPick, &p.DraftedTeam,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Player{}, ErrNotFound
	}
	if err != nil {
		return model.Player{}, fmt.Errorf("failed to get player %d: %w", id, err)
	}
	return p, nil
}

// InsertPlayer appends a player row and returns its id.
func (s *Store) InsertPlayer(ctx context.Context, p model.Player) (id int64, err error) {
	start := time.Now()
	defer func() { observe("insert_player", start, err) }()

	const q = `
		INSERT INTO players (name, position, team, height_cm, weight_kg, draft_year, draft_pick, drafted_team)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	res, err := s.db.ExecContext(ctx, q,
		p.Name, p.Position, p.Team, p.HeightCM, p.WeightKG, p.DraftYear, p.DraftPick, p.DraftedTeam)
	if err != nil {
		return 0, fmt.Errorf("failed to insert player: %w", err)
	}
	return res.LastInsertId()
}

// CountPlayers returns the number of player rows.
func (s *Store) CountPlayers(ctx context.Context) (n int, err error) {
	start := time.Now()
	defer func() { observe("count_players", start, err) }()

	err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM players`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count players: %w", err)
	}
	return n, nil
}

// nullFloat maps NULL to -1 so the valuation layer rejects it as a missing
// stat instead of treating it as a zero.
func nullFloat(v sql.NullFloat64) float64 {
	if !v.Valid {
		return -1
	}
	return v.Float64
}
