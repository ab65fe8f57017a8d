// Package model holds the shared domain entities for the dashboard services.
package model

// Player identifies an NBA player and their roster attributes.
type Player struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Position    string `json:"position"`
	Team        string `json:"team"`
	HeightCM    int    `json:"height_cm"`
	WeightKG    int    `json:"weight_kg"`
	DraftYear   int    `json:"draft_year"`
	DraftPick   int    `json:"draft_pick"`
	DraftedTeam string `json:"drafted_team"`
}

// Contract is a salary agreement belonging to one player. Contracts are
// append-only; an edit is a new row, no history is rewritten.
type Contract struct {
	ID            int64   `json:"id"`
	PlayerID      int64   `json:"player_id"`
	AnnualSalaryM float64 `json:"annual_salary_millions"`
	Years         int     `json:"years"`
	Type          string  `json:"type"`
	StartSeason   string  `json:"start_season"`
}

// PerformanceStat is one player-season stat line.
type PerformanceStat struct {
	ID            int64   `json:"id"`
	PlayerID      int64   `json:"player_id"`
	Season        string  `json:"season"`
	PointsPerGame float64 `json:"points_per_game"`
	PER           float64 `json:"per"`
	WinShares     float64 `json:"win_shares"`
	FieldGoalPct  float64 `json:"field_goal_pct"`
	GamesPlayed   int     `json:"games_played"`
}

// Injury is one injury record belonging to a player, appended via form.
type Injury struct {
	ID          int64  `json:"id"`
	PlayerID    int64  `json:"player_id"`
	Type        string `json:"type"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	GamesMissed int    `json:"games_missed"`
	Recurring   bool   `json:"recurring"`
}

// Team holds payroll and cap metadata. Not foreign-keyed to players.
type Team struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	PayrollM   float64 `json:"payroll_millions"`
	CapSpaceM  float64 `json:"cap_space_millions"`
	LuxuryTax  bool    `json:"luxury_tax"`
	Conference string  `json:"conference"`
}

// PlayerSeason joins a player with their latest season stat line, when one
// exists. Duplicate season rows resolve latest-insert-wins.
type PlayerSeason struct {
	Player Player           `json:"player"`
	Latest *PerformanceStat `json:"latest_stats,omitempty"`
}

// Restaurant is one row of the externally managed business_location table.
type Restaurant struct {
	Name  string `json:"name"`
	Votes int    `json:"votes"`
	City  string `json:"city"`
}

// RestaurantLocation carries coordinates for map rendering. Rows with NULL
// coordinates are filtered out at the store.
type RestaurantLocation struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Entry is one ranked leaderboard row.
type Entry struct {
	Rank       int     `json:"rank"`
	PlayerID   int64   `json:"player_id"`
	Name       string  `json:"name"`
	Team       string  `json:"team"`
	Season     string  `json:"season"`
	ValueIndex float64 `json:"value_index"`
}

// QueryResult is a generic columnar result for translated queries and CSV
// export. Values are stringified at the store boundary.
type QueryResult struct {
	Intent  string     `json:"intent"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}
