package league

import (
	"context"
	"fmt"
	"time"

	"github.com/courtside-labs/courtside/internal/domain/model"
)

// InsertContract appends a contract row and returns its id. Edits are new
// inserts; prior rows are never rewritten.
func (s *Store) InsertContract(ctx context.Context, c model.Contract) (id int64, err error) {
	start := time.Now()
	defer func() { observe("insert_contract", start, err) }()

	const q = `
		INSERT INTO contracts (player_id, annual_salary_millions, years, type, start_season)
		VALUES (?, ?, ?, ?, ?)`

	res, err := s.db.ExecContext(ctx, q, c.PlayerID, c.AnnualSalaryM, c.Years, c.Type, c.StartSeason)
	if err != nil {
		return 0, fmt.Errorf("failed to insert contract: %w", err)
	}
	return res.LastInsertId()
}

// ListContracts returns all contract rows for a player, newest first.
func (s *Store) ListContracts(ctx context.Context, playerID int64) (out []model.Contract, err error) {
	start := time.Now()
	defer func() { observe("list_contracts", start, err) }()

	const q = `
		SELECT id, player_id, annual_salary_millions, years, type, start_season
		FROM contracts
		WHERE player_id = ?
		ORDER BY id DESC`

	rows, err := s.db.QueryContext(ctx, q, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c model.Contract
		if err := rows.Scan(&c.ID, &c.PlayerID, &c.AnnualSalaryM, &c.Years, &c.Type, &c.StartSeason); err != nil {
			return nil, fmt.Errorf("failed to scan contract row: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contract rows: %w", err)
	}
	return out, nil
}

// LatestContract returns the most recently inserted contract for a player,
// or ErrNotFound when none exists.
func (s *Store) LatestContract(ctx context.Context, playerID int64) (model.Contract, error) {
	contracts, err := s.ListContracts(ctx, playerID)
	if err != nil {
		return model.Contract{}, err
	}
	if len(contracts) == 0 {
		return model.Contract{}, ErrNotFound
	}
	return contracts[0], nil
}
