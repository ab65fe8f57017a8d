package league

import (
	"context"
	"fmt"

	"github.com/courtside-labs/courtside/internal/domain/model"
	"github.com/courtside-labs/courtside/pkg/logger"
)

// sampleRoster is inserted once, when the players table is empty.
type sampleEntry struct {
	player   model.Player
	stat     model.PerformanceStat
	contract model.Contract
	injuries []model.Injury
}

var sampleRoster = []sampleEntry{
	{
		player:   model.Player{Name: "LeBron James", Position: "SF", Team: "LAL", HeightCM: 206, WeightKG: 113, DraftYear: 2003, DraftPick: 1, DraftedTeam: "CLE"},
		stat:     model.PerformanceStat{Season: "2023-24", PointsPerGame: 25.7, PER: 23.9, WinShares: 8.4, FieldGoalPct: 54.0, GamesPlayed: 71},
		contract: model.Contract{AnnualSalaryM: 47.6, Years: 2, Type: "veteran", StartSeason: "2023-24"},
		injuries: []model.Injury{{Type: "ankle sprain", StartDate: "2024-01-05", EndDate: "2024-01-19", GamesMissed: 6, Recurring: true}},
	},
	{
		player:   model.Player{Name: "Stephen Curry", Position: "PG", Team: "GSW", HeightCM: 188, WeightKG: 84, DraftYear: 2009, DraftPick: 7, DraftedTeam: "GSW"},
		stat:     model.PerformanceStat{Season: "2023-24", PointsPerGame: 26.4, PER: 22.5, WinShares: 8.0, FieldGoalPct: 45.0, GamesPlayed: 74},
		contract: model.Contract{AnnualSalaryM: 51.9, Years: 3, Type: "max", StartSeason: "2022-23"},
	},
	{
		player:   model.Player{Name: "Nikola Jokic", Position: "C", Team: "DEN", HeightCM: 211, WeightKG: 129, DraftYear: 2014, DraftPick: 41, DraftedTeam: "DEN"},
		stat:     model.PerformanceStat{Season: "2023-24", PointsPerGame: 26.4, PER: 31.3, WinShares: 13.8, FieldGoalPct: 58.3, GamesPlayed: 79},
		contract: model.Contract{AnnualSalaryM: 47.6, Years: 5, Type: "supermax", StartSeason: "2023-24"},
	},
	{
		player:   model.Player{Name: "Giannis Antetokounmpo", Position: "PF", Team: "MIL", HeightCM: 211, WeightKG: 110, DraftYear: 2013, DraftPick: 15, DraftedTeam: "MIL"},
		stat:     model.PerformanceStat{Season: "2023-24", PointsPerGame: 30.4, PER: 30.1, WinShares: 11.2, FieldGoalPct: 61.1, GamesPlayed: 73},
		contract: model.Contract{AnnualSalaryM: 45.6, Years: 3, Type: "supermax", StartSeason: "2023-24"},
		injuries: []model.Injury{{Type: "calf strain", StartDate: "2024-04-09", EndDate: "2024-04-30", GamesMissed: 9, Recurring: false}},
	},
	{
		player:   model.Player{Name: "Kawhi Leonard", Position: "SF", Team: "LAC", HeightCM: 201, WeightKG: 102, DraftYear: 2011, DraftPick: 15, DraftedTeam: "IND"},
		stat:     model.PerformanceStat{Season: "2023-24", PointsPerGame: 23.7, PER: 24.8, WinShares: 8.6, FieldGoalPct: 52.5, GamesPlayed: 68},
		contract: model.Contract{AnnualSalaryM: 45.6, Years: 3, Type: "max", StartSeason: "2022-23"},
		injuries: []model.Injury{
			{Type: "knee inflammation", StartDate: "2024-03-31", EndDate: "", GamesMissed: 14, Recurring: true},
			{Type: "acl tear", StartDate: "2021-06-14", EndDate: "2022-10-20", GamesMissed: 82, Recurring: true},
		},
	},
	{
		player:   model.Player{Name: "Jalen Brunson", Position: "PG", Team: "NYK", HeightCM: 188, WeightKG: 86, DraftYear: 2018, DraftPick: 33, DraftedTeam: "DAL"},
		stat:     model.PerformanceStat{Season: "2023-24", PointsPerGame: 28.7, PER: 24.5, WinShares: 10.7, FieldGoalPct: 47.9, GamesPlayed: 77},
		contract: model.Contract{AnnualSalaryM: 26.3, Years: 4, Type: "standard", StartSeason: "2022-23"},
	},
	{
		player:   model.Player{Name: "Victor Wembanyama", Position: "C", Team: "SAS", HeightCM: 224, WeightKG: 95, DraftYear: 2023, DraftPick: 1, DraftedTeam: "SAS"},
		stat:     model.PerformanceStat{Season: "2023-24", PointsPerGame: 21.4, PER: 23.2, WinShares: 5.8, FieldGoalPct: 46.5, GamesPlayed: 71},
		contract: model.Contract{AnnualSalaryM: 12.2, Years: 4, Type: "rookie", StartSeason: "2023-24"},
	},
	{
		player:   model.Player{Name: "Zion Williamson", Position: "PF", Team: "NOP", HeightCM: 198, WeightKG: 129, DraftYear: 2019, DraftPick: 1, DraftedTeam: "NOP"},
		stat:     model.PerformanceStat{Season: "2023-24", PointsPerGame: 22.9, PER: 24.4, WinShares: 7.3, FieldGoalPct: 57.0, GamesPlayed: 70},
		contract: model.Contract{AnnualSalaryM: 34.0, Years: 5, Type: "max", StartSeason: "2023-24"},
		injuries: []model.Injury{{Type: "hamstring strain", StartDate: "2024-04-16", EndDate: "2024-05-01", GamesMissed: 5, Recurring: true}},
	},
}

var sampleTeams = []model.Team{
	{Name: "Los Angeles Lakers", PayrollM: 192.3, CapSpaceM: -51.7, LuxuryTax: true, Conference: "West"},
	{Name: "Golden State Warriors", PayrollM: 208.0, CapSpaceM: -67.4, LuxuryTax: true, Conference: "West"},
	{Name: "Denver Nuggets", PayrollM: 186.9, CapSpaceM: -46.3, LuxuryTax: true, Conference: "West"},
	{Name: "Milwaukee Bucks", PayrollM: 185.5, CapSpaceM: -44.9, LuxuryTax: true, Conference: "East"},
	{Name: "New York Knicks", PayrollM: 182.8, CapSpaceM: -42.2, LuxuryTax: false, Conference: "East"},
	{Name: "San Antonio Spurs", PayrollM: 153.1, CapSpaceM: -12.5, LuxuryTax: false, Conference: "West"},
	{Name: "New Orleans Pelicans", PayrollM: 176.4, CapSpaceM: -35.8, LuxuryTax: false, Conference: "West"},
}

// Seed inserts the sample roster and team payrolls when the players table
// is empty. Safe to call on every start.
func (s *Store) Seed(ctx context.Context) error {
	n, err := s.CountPlayers(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		s.log.Debug(ctx, "league store already populated, skipping seed", logger.Int("players", n))
		return nil
	}

	for _, entry := range sampleRoster {
		playerID, err := s.InsertPlayer(ctx, entry.player)
		if err != nil {
			return fmt.Errorf("failed to seed player %s: %w", entry.player.Name, err)
		}

		stat := entry.stat
		stat.PlayerID = playerID
		if _, err := s.InsertStat(ctx, stat); err != nil {
			return fmt.Errorf("failed to seed stats for %s: %w", entry.player.Name, err)
		}

		contract := entry.contract
		contract.PlayerID = playerID
		if _, err := s.InsertContract(ctx, contract); err != nil {
			return fmt.Errorf("failed to seed contract for %s: %w", entry.player.Name, err)
		}

		for _, injury := range entry.injuries {
			injury.PlayerID = playerID
			if _, err := s.InsertInjury(ctx, injury); err != nil {
				return fmt.Errorf("failed to seed injury for %s: %w", entry.player.Name, err)
			}
		}
	}

	for _, team := range sampleTeams {
		if _, err := s.InsertTeam(ctx, team); err != nil {
			return fmt.Errorf("failed to seed team %s: %w", team.Name, err)
		}
	}

	s.log.Info(ctx, "league store seeded",
		logger.Int("players", len(sampleRoster)),
		logger.Int("teams", len(sampleTeams)),
	)
	return nil
}
