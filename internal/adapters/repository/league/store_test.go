package league_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/courtside-labs/courtside/internal/adapters/repository/league"
	"github.com/courtside-labs/courtside/internal/domain/model"
	"github.com/courtside-labs/courtside/internal/domain/nlquery"
	"github.com/courtside-labs/courtside/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func openTestStore(t *testing.T) *league.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "league.db")
	store, err := league.Open(context.Background(), path)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStoreBootstrapAndSeed(t *testing.T) {
	Convey("Given a freshly opened league store", t, func() {
		ctx := context.Background()
		store := openTestStore(t)

		Convey("When seeding sample data", func() {
			err := store.Seed(ctx)

			Convey("Then players, stats, contracts, and teams exist", func() {
				So(err, ShouldBeNil)

				n, err := store.CountPlayers(ctx)
				So(err, ShouldBeNil)
				So(n, ShouldBeGreaterThan, 0)

				teams, err := store.ListTeams(ctx)
				So(err, ShouldBeNil)
				So(len(teams), ShouldBeGreaterThan, 0)
			})

			Convey("And seeding again is a no-op", func() {
				So(err, ShouldBeNil)
				before, _ := store.CountPlayers(ctx)
				So(store.Seed(ctx), ShouldBeNil)
				after, _ := store.CountPlayers(ctx)
				So(after, ShouldEqual, before)
			})
		})
	})
}

func TestStorePlayers(t *testing.T) {
	Convey("Given a seeded league store", t, func() {
		ctx := context.Background()
		store := openTestStore(t)
		So(store.Seed(ctx), ShouldBeNil)

		Convey("When listing players", func() {
			players, err := store.ListPlayers(ctx)

			Convey("Then every player carries their latest stat line", func() {
				So(err, ShouldBeNil)
				So(len(players), ShouldBeGreaterThan, 0)
				for _, ps := range players {
					So(ps.Latest, ShouldNotBeNil)
					So(ps.Latest.Season, ShouldEqual, "2023-24")
				}
			})
		})

		Convey("When fetching one player by id", func() {
			players, err := store.ListPlayers(ctx)
			So(err, ShouldBeNil)

			p, err := store.GetPlayer(ctx, players[0].Player.ID)

			Convey("Then the row round-trips", func() {
				So(err, ShouldBeNil)
				So(p.Name, ShouldEqual, players[0].Player.Name)
			})
		})

		Convey("When fetching a missing player", func() {
			_, err := store.GetPlayer(ctx, 999999)

			Convey("Then ErrNotFound is returned", func() {
				So(err, ShouldEqual, league.ErrNotFound)
			})
		})

		Convey("When a duplicate season stat row is inserted", func() {
			players, err := store.ListPlayers(ctx)
			So(err, ShouldBeNil)
			playerID := players[0].Player.ID

			_, err = store.InsertStat(ctx, model.PerformanceStat{
				PlayerID:      playerID,
				Season:        "2023-24",
				PointsPerGame: 31.5,
				PER:           27.0,
				WinShares:     9.9,
				FieldGoalPct:  50.1,
				GamesPlayed:   80,
			})
			So(err, ShouldBeNil)

			Convey("Then the newest insert wins on the joined listing", func() {
				refreshed, err := store.ListPlayers(ctx)
				So(err, ShouldBeNil)
				for _, ps := range refreshed {
					if ps.Player.ID == playerID {
						So(ps.Latest.PointsPerGame, ShouldEqual, 31.5)
					}
				}
			})
		})
	})
}

func TestStoreContractsAndInjuries(t *testing.T) {
	Convey("Given a seeded league store", t, func() {
		ctx := context.Background()
		store := openTestStore(t)
		So(store.Seed(ctx), ShouldBeNil)

		players, err := store.ListPlayers(ctx)
		So(err, ShouldBeNil)
		playerID := players[0].Player.ID

		Convey("When appending a second contract for the same player", func() {
			_, err := store.InsertContract(ctx, model.Contract{
				PlayerID:      playerID,
				AnnualSalaryM: 52.5,
				Years:         2,
				Type:          "extension",
				StartSeason:   "2024-25",
			})
			So(err, ShouldBeNil)

			Convey("Then both rows are kept and the latest is the new one", func() {
				contracts, err := store.ListContracts(ctx, playerID)
				So(err, ShouldBeNil)
				So(len(contracts), ShouldBeGreaterThanOrEqualTo, 2)

				latest, err := store.LatestContract(ctx, playerID)
				So(err, ShouldBeNil)
				So(latest.Type, ShouldEqual, "extension")
			})
		})

		Convey("When appending an injury", func() {
			_, err := store.InsertInjury(ctx, model.Injury{
				PlayerID:    playerID,
				Type:        "back spasms",
				StartDate:   "2024-02-01",
				EndDate:     "2024-02-12",
				GamesMissed: 5,
				Recurring:   true,
			})
			So(err, ShouldBeNil)

			Convey("Then the row reads back with the recurring flag intact", func() {
				injuries, err := store.ListInjuries(ctx, playerID)
				So(err, ShouldBeNil)
				So(len(injuries), ShouldBeGreaterThan, 0)
				So(injuries[0].Type, ShouldEqual, "back spasms")
				So(injuries[0].Recurring, ShouldBeTrue)
			})
		})
	})
}

func TestStoreRunQuery(t *testing.T) {
	Convey("Given a seeded league store", t, func() {
		ctx := context.Background()
		store := openTestStore(t)
		So(store.Seed(ctx), ShouldBeNil)

		Convey("When running the salary-threshold translation", func() {
			q := nlquery.Translate("players making over 40 million")
			res, err := store.RunQuery(ctx, q.SQL, q.Args)

			Convey("Then only contracts above the threshold come back", func() {
				So(err, ShouldBeNil)
				So(res.Columns, ShouldContain, "annual_salary_millions")
				So(len(res.Rows), ShouldBeGreaterThan, 0)
			})
		})

		Convey("When running the recurring-injury translation", func() {
			q := nlquery.Translate("show recurring injuries")
			res, err := store.RunQuery(ctx, q.SQL, q.Args)

			Convey("Then the joined injury rows come back", func() {
				So(err, ShouldBeNil)
				So(len(res.Rows), ShouldBeGreaterThan, 0)
			})
		})

		Convey("When running a non-SELECT statement", func() {
			_, err := store.RunQuery(ctx, "DELETE FROM players", nil)

			Convey("Then it is rejected", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}
