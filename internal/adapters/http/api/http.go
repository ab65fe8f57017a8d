// Package api declares HTTP contracts and route registration helpers for
// the league analytics service.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/courtside-labs/courtside/internal/adapters/headshot"
	"github.com/courtside-labs/courtside/internal/app/league"
	"github.com/courtside-labs/courtside/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// FilterPlayers narrows the player listing.
	FilterPlayers(ctx context.Context, params league.FilterParams) ([]model.PlayerSeason, error)

	// PlayerCard assembles the per-player view with derived metrics.
	PlayerCard(ctx context.Context, playerID int64) (league.PlayerCard, error)

	// Leaderboard ranks players by value index.
	Leaderboard(ctx context.Context, limit int) ([]model.Entry, error)

	// AddContract and AddInjury append history rows.
	AddContract(ctx context.Context, c model.Contract) (int64, error)
	AddInjury(ctx context.Context, in model.Injury) (int64, error)

	// Teams returns the payroll table.
	Teams(ctx context.Context) ([]model.Team, error)

	// Ask translates and executes a free-text question.
	Ask(ctx context.Context, question string) (model.QueryResult, error)

	// Headshot fetches a player image from the upstream CDN.
	Headshot(ctx context.Context, playerID int64) (headshot.Image, error)
}

// Server wires HTTP routes for the league API.
type Server struct {
	healthHandler      *HealthHandler
	statsHandler       *StatsHandler
	playersHandler     *PlayersHandler
	leaderboardHandler *LeaderboardHandler
	contractsHandler   *ContractsHandler
	injuriesHandler    *InjuriesHandler
	teamsHandler       *TeamsHandler
	queryHandler       *QueryHandler
	dashboardHandler   *dashboardHandler
}

// NewServer creates a new API server with all handlers. maxLeaderboardLimit
// caps GET /leaderboard?limit=N.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxLeaderboardLimit int) *Server {
	return &Server{
		healthHandler:      NewHealthHandler(),
		statsHandler:       NewStatsHandler(statsProvider),
		playersHandler:     NewPlayersHandler(deps),
		leaderboardHandler: NewLeaderboardHandler(deps, maxLeaderboardLimit),
		contractsHandler:   NewContractsHandler(deps),
		injuriesHandler:    NewInjuriesHandler(deps),
		teamsHandler:       NewTeamsHandler(deps),
		queryHandler:       NewQueryHandler(deps),
		dashboardHandler:   newdashboardHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/dashboard", s.dashboardHandler.HandleDashboard)
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/players", MetricsMiddleware(s.playersHandler.HandleListPlayers, "players"))
	mux.HandleFunc("/players/", MetricsMiddleware(s.playersHandler.HandlePlayerSubtree, "player"))
	mux.HandleFunc("/leaderboard", MetricsMiddleware(s.leaderboardHandler.HandleGetLeaderboard, "leaderboard"))
	mux.HandleFunc("/contracts", MetricsMiddleware(s.contractsHandler.HandlePostContract, "contracts"))
	mux.HandleFunc("/injuries", MetricsMiddleware(s.injuriesHandler.HandlePostInjury, "injuries"))
	mux.HandleFunc("/teams", MetricsMiddleware(s.teamsHandler.HandleGetTeams, "teams"))
	mux.HandleFunc("/query", MetricsMiddleware(s.queryHandler.HandlePostQuery, "query"))
}

// contractRequest mirrors the OpenAPI schema for POST /contracts.
type contractRequest struct {
	PlayerID      int64   `json:"player_id"`
	AnnualSalaryM float64 `json:"annual_salary_millions"`
	Years         int     `json:"years"`
	Type          string  `json:"type"`
	StartSeason   string  `json:"start_season"`
}

func (c contractRequest) validate() error {
	switch {
	case c.PlayerID < 1:
		return errors.New("missing player_id")
	case c.AnnualSalaryM <= 0:
		return errors.New("annual_salary_millions must be positive")
	case c.Years < 1:
		return errors.New("years must be positive")
	case strings.TrimSpace(c.Type) == "":
		return errors.New("missing type")
	case strings.TrimSpace(c.StartSeason) == "":
		return errors.New("missing start_season")
	}
	return nil
}

// injuryRequest mirrors the OpenAPI schema for POST /injuries.
type injuryRequest struct {
	PlayerID    int64  `json:"player_id"`
	Type        string `json:"type"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	GamesMissed int    `json:"games_missed"`
	Recurring   bool   `json:"recurring"`
}

func (i injuryRequest) validate() error {
	switch {
	case i.PlayerID < 1:
		return errors.New("missing player_id")
	case strings.TrimSpace(i.Type) == "":
		return errors.New("missing type")
	case strings.TrimSpace(i.StartDate) == "":
		return errors.New("missing start_date")
	case i.GamesMissed < 0:
		return errors.New("games_missed must not be negative")
	}
	return nil
}

// queryRequest mirrors the OpenAPI schema for POST /query.
type queryRequest struct {
	Question string `json:"question"`
}

type createdResponse struct {
	ID int64 `json:"id"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
