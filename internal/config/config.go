// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults; Load layers file and env.
// - All future functions must accept context.Context as the first parameter.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration for both dashboard services.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the courtside HTTP listen address, e.g. ":8090".
	Addr string `koanf:"addr"`

	// EatsAddr configures the tastemap HTTP listen address.
	EatsAddr string `koanf:"eats_addr"`

	// LeagueDBPath is the path of the embedded league database file.
	LeagueDBPath string `koanf:"league_db_path"`

	// SeedSampleData inserts sample rows when the league store is empty.
	SeedSampleData bool `koanf:"seed_sample_data"`

	// MaxLeaderboardLimit caps GET /leaderboard?limit.
	MaxLeaderboardLimit int `koanf:"max_leaderboard_limit"`

	// HeadshotBaseURL is the base URL for per-player headshot images.
	HeadshotBaseURL string `koanf:"headshot_base_url"`

	// HeadshotTimeoutMS caps the outbound headshot fetch.
	HeadshotTimeoutMS int `koanf:"headshot_timeout_ms"`

	// RestaurantDriver selects the remote restaurant backend: postgres or mysql.
	RestaurantDriver string `koanf:"restaurant_driver"`

	// RestaurantDSN is the connection string for the restaurant database.
	// Credentials are never embedded in source; supply them here or via env.
	RestaurantDSN string `koanf:"restaurant_dsn"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:            "info",
		Addr:                ":8090",
		EatsAddr:            ":8091",
		LeagueDBPath:        "courtside.db",
		SeedSampleData:      true,
		MaxLeaderboardLimit: 100,
		HeadshotBaseURL:     "https://cdn.nba.com/headshots/nba/latest/1040x760",
		HeadshotTimeoutMS:   3000,
		RestaurantDriver:    "postgres",
		RestaurantDSN:       "",
	}
}
