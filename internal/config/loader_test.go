package config_test

import (
	"context"
	"os"
	"testing"

	"github.com/courtside-labs/courtside/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8090")
				convey.So(cfg.EatsAddr, convey.ShouldEqual, ":8091")
				convey.So(cfg.LeagueDBPath, convey.ShouldEqual, "courtside.db")
				convey.So(cfg.SeedSampleData, convey.ShouldBeTrue)
				convey.So(cfg.MaxLeaderboardLimit, convey.ShouldEqual, 100)
				convey.So(cfg.HeadshotTimeoutMS, convey.ShouldEqual, 3000)
				convey.So(cfg.RestaurantDriver, convey.ShouldEqual, "postgres")
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("COURTSIDE_ADDR", ":7000")
			_ = os.Setenv("COURTSIDE_LEAGUE_DB_PATH", "/tmp/league.db")
			_ = os.Setenv("COURTSIDE_MAX_LEADERBOARD_LIMIT", "25")
			_ = os.Setenv("COURTSIDE_RESTAURANT_DRIVER", "mysql")
			_ = os.Setenv("COURTSIDE_RESTAURANT_DSN", "user:pass@tcp(localhost:3306)/restaurant")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7000")
				convey.So(cfg.LeagueDBPath, convey.ShouldEqual, "/tmp/league.db")
				convey.So(cfg.MaxLeaderboardLimit, convey.ShouldEqual, 25)
				convey.So(cfg.RestaurantDriver, convey.ShouldEqual, "mysql")
				convey.So(cfg.RestaurantDSN, convey.ShouldEqual, "user:pass@tcp(localhost:3306)/restaurant")
			})
		})

		convey.Convey("When the restaurant driver is unknown", func() {
			clearConfigEnvVars()
			_ = os.Setenv("COURTSIDE_RESTAURANT_DRIVER", "oracle")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then loading should fail with an invalid-config error", func() {
				convey.So(cfg, convey.ShouldBeNil)
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "restaurant_driver")
			})
		})

		convey.Convey("When the leaderboard limit is not positive", func() {
			clearConfigEnvVars()
			_ = os.Setenv("COURTSIDE_MAX_LEADERBOARD_LIMIT", "0")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then loading should fail", func() {
				convey.So(err, convey.ShouldNotBeNil)
			})
		})
	})
}

func clearConfigEnvVars() {
	for _, key := range []string{
		"COURTSIDE_CONFIG",
		"COURTSIDE_ADDR",
		"COURTSIDE_EATS_ADDR",
		"COURTSIDE_LEAGUE_DB_PATH",
		"COURTSIDE_SEED_SAMPLE_DATA",
		"COURTSIDE_MAX_LEADERBOARD_LIMIT",
		"COURTSIDE_HEADSHOT_BASE_URL",
		"COURTSIDE_HEADSHOT_TIMEOUT_MS",
		"COURTSIDE_RESTAURANT_DRIVER",
		"COURTSIDE_RESTAURANT_DSN",
	} {
		_ = os.Unsetenv(key)
	}
}
