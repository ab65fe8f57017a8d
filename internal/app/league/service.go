// Package league provides the analytics service that implements the
// dependencies required by the courtside HTTP API.
package league

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/courtside-labs/courtside/internal/adapters/headshot"
	leaguestore "github.com/courtside-labs/courtside/internal/adapters/repository/league"
	"github.com/courtside-labs/courtside/internal/domain/model"
	"github.com/courtside-labs/courtside/internal/domain/nlquery"
	"github.com/courtside-labs/courtside/internal/domain/valuation"
	"github.com/courtside-labs/courtside/pkg/logger"
	"github.com/courtside-labs/courtside/pkg/metrics"
)

// FilterParams narrows the player listing. Position and Team are exact,
// case-sensitive matches; Name is a case-insensitive substring. Empty
// fields do not restrict.
type FilterParams struct {
	Position string
	Team     string
	Name     string
}

// SeasonValuation is one stat line with its derived metrics. ValueIndex is
// nil when a stat was missing; Efficiency is nil when no usable contract
// salary exists for the player.
type SeasonValuation struct {
	Stat       model.PerformanceStat `json:"stat"`
	ValueIndex *float64              `json:"value_index,omitempty"`
	Efficiency *float64              `json:"efficiency,omitempty"`
}

// PlayerCard is the full per-player view: roster row, valued seasons, and
// the append-only contract and injury histories.
type PlayerCard struct {
	Player    model.Player      `json:"player"`
	Seasons   []SeasonValuation `json:"seasons"`
	Contracts []model.Contract  `json:"contracts"`
	Injuries  []model.Injury    `json:"injuries"`
}

// Service owns the league store and the derived-metric computations.
type Service struct {
	mu sync.RWMutex

	store     *leaguestore.Store
	headshots *headshot.Client

	// Configuration
	dbPath         string
	seedSampleData bool

	// State
	started bool

	// Logging
	log logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithDBPath sets the embedded database file path.
func WithDBPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.dbPath = path
		}
	}
}

// WithSeedSampleData controls sample seeding on first start.
func WithSeedSampleData(seed bool) Option {
	return func(s *Service) {
		s.seedSampleData = seed
	}
}

// WithHeadshotClient sets the headshot fetch client.
func WithHeadshotClient(c *headshot.Client) Option {
	return func(s *Service) {
		if c != nil {
			s.headshots = c
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		dbPath:         "courtside.db",
		seedSampleData: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start opens the league store, bootstraps its schema, and seeds sample
// data when configured. Safe to call once per process.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.log == nil {
		s.log = logger.Get()
	}

	store, err := leaguestore.Open(ctx, s.dbPath, leaguestore.WithLogger(s.log.Named("store")))
	if err != nil {
		return fmt.Errorf("failed to open league store: %w", err)
	}
	s.store = store

	if s.seedSampleData {
		if err := s.store.Seed(ctx); err != nil {
			_ = s.store.Close()
			return fmt.Errorf("failed to seed league store: %w", err)
		}
	}

	if n, err := s.store.CountPlayers(ctx); err == nil {
		metrics.UpdatePlayersTotal(n)
	}

	s.started = true
	s.log.Info(ctx, "league service started", logger.String("db_path", s.dbPath))
	return nil
}

// Stop closes the league store.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	if err := s.store.Close(); err != nil {
		s.log.Error(context.Background(), "failed to close league store", logger.Error(err))
	}
	s.started = false
	s.log.Info(context.Background(), "league service stopped")
}

// FilterPlayers returns the joined player listing narrowed by params. The
// predicates run in memory over the joined rows, not in the store.
func (s *Service) FilterPlayers(ctx context.Context, params FilterParams) ([]model.PlayerSeason, error) {
	players, err := s.store.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}

	nameNeedle := strings.ToLower(params.Name)
	out := make([]model.PlayerSeason, 0, len(players))
	for _, ps := range players {
		if params.Position != "" && ps.Player.Position != params.Position {
			continue
		}
		if params.Team != "" && ps.Player.Team != params.Team {
			continue
		}
		if nameNeedle != "" && !strings.Contains(strings.ToLower(ps.Player.Name), nameNeedle) {
			continue
		}
		out = append(out, ps)
	}
	return out, nil
}

// PlayerCard assembles the full per-player view with derived metrics.
func (s *Service) PlayerCard(ctx context.Context, playerID int64) (PlayerCard, error) {
	player, err := s.store.GetPlayer(ctx, playerID)
	if err != nil {
		return PlayerCard{}, err
	}

	stats, err := s.store.ListStats(ctx, playerID)
	if err != nil {
		return PlayerCard{}, err
	}
	contracts, err := s.store.ListContracts(ctx, playerID)
	if err != nil {
		return PlayerCard{}, err
	}
	injuries, err := s.store.ListInjuries(ctx, playerID)
	if err != nil {
		return PlayerCard{}, err
	}

	var salary float64
	if len(contracts) > 0 {
		salary = contracts[0].AnnualSalaryM
	}

	seasons := make([]SeasonValuation, 0, len(stats))
	for _, st := range stats {
		sv := SeasonValuation{Stat: st}
		vi, err := valueIndexFor(st)
		if err != nil {
			metrics.RecordValuationError()
			s.log.Warn(ctx, "value index unavailable",
				logger.Int64("player_id", playerID),
				logger.String("season", st.Season),
				logger.Error(err),
			)
		} else {
			sv.ValueIndex = &vi
			if eff, err := valuation.Efficiency(vi, salary); err == nil {
				sv.Efficiency = &eff
			} else {
				metrics.RecordValuationError()
			}
		}
		seasons = append(seasons, sv)
	}

	return PlayerCard{
		Player:    player,
		Seasons:   seasons,
		Contracts: contracts,
		Injuries:  injuries,
	}, nil
}

// Leaderboard ranks players by the value index of their latest season.
// Players without stats, or with unusable stats, are skipped.
func (s *Service) Leaderboard(ctx context.Context, limit int) ([]model.Entry, error) {
	players, err := s.store.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]model.Entry, 0, len(players))
	for _, ps := range players {
		if ps.Latest == nil {
			continue
		}
		vi, err := valueIndexFor(*ps.Latest)
		if err != nil {
			metrics.RecordValuationError()
			continue
		}
		entries = append(entries, model.Entry{
			PlayerID:   ps.Player.ID,
			Name:       ps.Player.Name,
			Team:       ps.Player.Team,
			Season:     ps.Latest.Season,
			ValueIndex: vi,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].ValueIndex > entries[j].ValueIndex
	})
	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}

// AddContract validates and appends a contract row.
func (s *Service) AddContract(ctx context.Context, c model.Contract) (int64, error) {
	if err := validateContract(c); err != nil {
		return 0, err
	}
	if _, err := s.store.GetPlayer(ctx, c.PlayerID); err != nil {
		return 0, err
	}
	id, err := s.store.InsertContract(ctx, c)
	if err != nil {
		return 0, err
	}
	metrics.RecordContractInsert()
	return id, nil
}

// AddInjury validates and appends an injury row.
func (s *Service) AddInjury(ctx context.Context, in model.Injury) (int64, error) {
	if err := validateInjury(in); err != nil {
		return 0, err
	}
	if _, err := s.store.GetPlayer(ctx, in.PlayerID); err != nil {
		return 0, err
	}
	id, err := s.store.InsertInjury(ctx, in)
	if err != nil {
		return 0, err
	}
	metrics.RecordInjuryInsert()
	return id, nil
}

// Teams returns the payroll table.
func (s *Service) Teams(ctx context.Context) ([]model.Team, error) {
	return s.store.ListTeams(ctx)
}

// Ask translates a free-text question and executes the resulting query.
func (s *Service) Ask(ctx context.Context, question string) (model.QueryResult, error) {
	q := nlquery.Translate(question)
	metrics.RecordTranslation(string(q.Intent))
	s.log.Debug(ctx, "translated question",
		logger.String("intent", string(q.Intent)),
		logger.Any("args", q.Args),
	)

	res, err := s.store.RunQuery(ctx, q.SQL, q.Args)
	if err != nil {
		return model.QueryResult{}, err
	}
	res.Intent = string(q.Intent)
	return res, nil
}

// Headshot fetches the player's headshot after confirming the player
// exists. Upstream failures stay non-fatal for the caller.
func (s *Service) Headshot(ctx context.Context, playerID int64) (headshot.Image, error) {
	if _, err := s.store.GetPlayer(ctx, playerID); err != nil {
		return headshot.Image{}, err
	}
	if s.headshots == nil {
		return headshot.Image{}, headshot.ErrFetchFailed
	}
	return s.headshots.Fetch(ctx, playerID)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started": s.started,
		"dbPath":  s.dbPath,
	}
	if s.started {
		if n, err := s.store.CountPlayers(context.Background()); err == nil {
			stats["totalPlayers"] = n
			metrics.UpdatePlayersTotal(n)
		}
	}
	return stats
}

// valueIndexFor adapts a stored stat line for the valuation package.
func valueIndexFor(st model.PerformanceStat) (float64, error) {
	vi, err := valuation.ValueIndex(valuation.StatLine{
		PointsPerGame: st.PointsPerGame,
		PER:           st.PER,
		WinShares:     st.WinShares,
		FieldGoalPct:  st.FieldGoalPct,
		GamesPlayed:   st.GamesPlayed,
	})
	if err != nil {
		return 0, err
	}
	metrics.RecordValueIndexComputation()
	return vi, nil
}

// validateContract rejects rows the store would happily append.
func validateContract(c model.Contract) error {
	switch {
	case c.PlayerID < 1:
		return fmt.Errorf("%w: missing player_id", ErrInvalidInput)
	case c.AnnualSalaryM <= 0:
		return fmt.Errorf("%w: %w", ErrInvalidInput, valuation.ErrZeroSalary)
	case c.Years < 1:
		return fmt.Errorf("%w: years must be positive", ErrInvalidInput)
	case strings.TrimSpace(c.Type) == "":
		return fmt.Errorf("%w: missing type", ErrInvalidInput)
	case strings.TrimSpace(c.StartSeason) == "":
		return fmt.Errorf("%w: missing start_season", ErrInvalidInput)
	}
	return nil
}

// validateInjury rejects rows the store would happily append.
func validateInjury(in model.Injury) error {
	switch {
	case in.PlayerID < 1:
		return fmt.Errorf("%w: missing player_id", ErrInvalidInput)
	case strings.TrimSpace(in.Type) == "":
		return fmt.Errorf("%w: missing type", ErrInvalidInput)
	case strings.TrimSpace(in.StartDate) == "":
		return fmt.Errorf("%w: missing start_date", ErrInvalidInput)
	case in.GamesMissed < 0:
		return fmt.Errorf("%w: games_missed must not be negative", ErrInvalidInput)
	}
	return nil
}

// IsNotFound reports whether err is the store's not-found condition.
func IsNotFound(err error) bool {
	return errors.Is(err, leaguestore.ErrNotFound)
}
