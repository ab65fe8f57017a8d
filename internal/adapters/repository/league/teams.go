package league

import (
	"context"
	"fmt"
	"time"

	"github.com/courtside-labs/courtside/internal/domain/model"
)

// InsertTeam appends a team payroll row.
func (s *Store) InsertTeam(ctx context.Context, t model.Team) (id int64, err error) {
	start := time.Now()
	defer func() { observe("insert_team", start, err) }()

	const q = `
		INSERT INTO teams (name, payroll_millions, cap_space_millions, luxury_tax, conference)
		VALUES (?, ?, ?, ?, ?)`

	res, err := s.db.ExecContext(ctx, q, t.Name, t.PayrollM, t.CapSpaceM, boolToInt(t.LuxuryTax), t.Conference)
	if err != nil {
		return 0, fmt.Errorf("failed to insert team: %w", err)
	}
	return res.LastInsertId()
}

// ListTeams returns all team payroll rows ordered by payroll descending.
func (s *Store) ListTeams(ctx context.Context) (out []model.Team, err error) {
	start := time.Now()
	defer func() { observe("list_teams", start, err) }()

	const q = `
		SELECT id, name, payroll_millions, cap_space_millions, luxury_tax, conference
		FROM teams
		ORDER BY payroll_millions DESC`

	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var t model.Team
		var luxuryTax int
		if err := rows.Scan(&t.ID, &t.Name, &t.PayrollM, &t.CapSpaceM, &luxuryTax, &t.Conference); err != nil {
			return nil, fmt.Errorf("failed to scan team row: %w", err)
		}
		t.LuxuryTax = luxuryTax != 0
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate team rows: %w", err)
	}
	return out, nil
}
